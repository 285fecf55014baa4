package bombs

import (
	"errors"
	"fmt"

	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/world"
)

var (
	// ErrCapacityExhausted is returned when the owner has no bomb left
	ErrCapacityExhausted = errors.New("bomb capacity exhausted")
	// ErrCellOccupied is returned when a live bomb already holds the cell
	ErrCellOccupied = errors.New("cell already holds a bomb")
)

// PlantRejected explains why a plant request was dropped
type PlantRejected struct {
	Reason error
	Owner  arena.Handle
	Cell   world.Cell
}

func (e *PlantRejected) Error() string {
	return fmt.Sprintf("plant by %d at %v rejected: %v", e.Owner, e.Cell, e.Reason)
}

func (e *PlantRejected) Unwrap() error {
	return e.Reason
}
