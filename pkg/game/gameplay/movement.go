package gameplay

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/physics"
	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/bombs"
	"abtestbed/pkg/game/entities"
	"abtestbed/pkg/game/state"
)

// ErrNotInWorld is returned when a player without a body tries to plant
var ErrNotInWorld = errors.New("player is not in the world")

// PlantBomb drops a bomb on the cell nearest to the player. A rejected plant
// (no bomb left, cell taken) is returned as a *bombs.PlantRejected and
// changes nothing.
func PlantBomb(g *state.Game, p *entities.Player, now float64) (arena.Handle, error) {
	pos, ok := g.Physics.Position(p.ID)
	if !ok {
		return arena.NoHandle, ErrNotInWorld
	}
	cell, err := g.Grid.CellOf(pos)
	if err != nil {
		return arena.NoHandle, err
	}
	return plantAt(g, p, cell, now)
}

// plantAt plants one of p's bombs on a given cell
func plantAt(g *state.Game, p *entities.Player, cell world.Cell, now float64) (arena.Handle, error) {
	id, err := g.Bombs.Plant(bombs.PlantRequest{
		Owner:    p.ID,
		Color:    p.Color,
		Cell:     cell,
		Radius:   p.BlastRadius,
		Fuse:     p.Fuse,
		Capacity: g.Players.Capacity(p.ID),
	}, now)
	if err != nil {
		return arena.NoHandle, err
	}
	g.Players.OnPlant(p.ID)

	// Bombs start as sensors; they turn solid once nobody stands on them.
	g.Physics.Spawn(physics.Body{
		Handle: id,
		Kind:   arena.KindBomb,
		Pos:    g.Grid.CenterOf(cell),
		Half:   g.Settings.BombSize.Half(),
	})
	g.Occupants[id] = mapset.New[arena.Handle]()
	return id, nil
}

// armBomb makes a bomb solid once its last occupant left
func armBomb(g *state.Game, bomb arena.Handle) {
	if g.Bombs.ArmOnDeparture(bomb) {
		g.Physics.SetSolid(bomb, true)
	}
}
