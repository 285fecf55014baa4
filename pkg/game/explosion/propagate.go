// Package explosion computes which cells a detonation reaches.
package explosion

import (
	"github.com/zyedidia/generic/mapset"

	"abtestbed/pkg/engine/world"
)

// MaterialSource is read access to terrain
type MaterialSource interface {
	MaterialAt(c world.Cell) (world.Material, error)
}

// Propagate returns the cells hit by a blast of the given radius at center:
// the center itself, then one ray per direction in world.AllDirections order.
// Rays never influence each other.
func Propagate(center world.Cell, radius int, terrain MaterialSource) []world.Cell {
	cells := []world.Cell{center}
	for _, dir := range world.AllDirections() {
		cells = append(cells, Ray(center, dir, radius, terrain)...)
	}
	return cells
}

// Ray walks from center (exclusive) up to radius cells in one direction.
// A Block ends the ray before its cell, a Brick ends it after its cell, and
// the grid border ends it like a Block.
func Ray(center world.Cell, dir world.Direction, radius int, terrain MaterialSource) []world.Cell {
	var cells []world.Cell
	for step := 1; step <= radius; step++ {
		c := center.Step(dir, step)
		m, err := terrain.MaterialAt(c)
		if err != nil {
			break
		}
		if m == world.Block {
			break
		}
		cells = append(cells, c)
		if m == world.Brick {
			break
		}
	}
	return cells
}

// CellSet collects cells into a set
func CellSet(cells []world.Cell) mapset.Set[world.Cell] {
	set := mapset.New[world.Cell]()
	for _, c := range cells {
		set.Put(c)
	}
	return set
}
