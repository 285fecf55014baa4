package entities

import (
	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/world"
)

// Bomb is a planted, undetonated bomb
type Bomb struct {
	ID       arena.Handle
	Owner    arena.Handle
	Color    PlayerColor
	Radius   int
	Deadline float64 // simulated seconds
	Cell     world.Cell
	Armed    bool // solid once every player has left it
}
