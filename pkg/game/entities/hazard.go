package entities

import (
	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/world"
)

// Hazard is one cell of an explosion. It lives until ExtinguishAt
// unless the session removes it earlier.
type Hazard struct {
	ID           arena.Handle
	Cell         world.Cell
	Owner        arena.Handle
	Color        PlayerColor
	ExtinguishAt float64
}

// NewHazard creates a hazard for one affected cell
func NewHazard(id arena.Handle, cell world.Cell, owner arena.Handle, c PlayerColor, extinguishAt float64) *Hazard {
	return &Hazard{
		ID:           id,
		Cell:         cell,
		Owner:        owner,
		Color:        c,
		ExtinguishAt: extinguishAt,
	}
}

// IsExtinguished reports whether the hazard's time is up
func (h *Hazard) IsExtinguished(now float64) bool {
	return now >= h.ExtinguishAt
}
