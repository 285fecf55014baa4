// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Cell is a discrete grid coordinate. It is a plain value so it can be used
// as a map or set key; two cells are equal iff both coordinates match.
type Cell struct {
	Col int
	Row int
}

// At builds a cell from column and row.
func At(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

// String returns the cell as "(col,row)"
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Step returns the cell n steps away in the given direction.
// The result is not bounds checked.
func (c Cell) Step(dir Direction, n int) Cell {
	rowRel, colRel := dir.Delta()
	return Cell{Col: c.Col + colRel*n, Row: c.Row + rowRel*n}
}

// Neighbor returns the adjacent cell in the given direction
func (c Cell) Neighbor(dir Direction) Cell {
	return c.Step(dir, 1)
}

// Neighbors returns the four adjacent cells in AllDirections order
func (c Cell) Neighbors() []Cell {
	neighbors := make([]Cell, 0, 4)
	for _, dir := range AllDirections() {
		neighbors = append(neighbors, c.Neighbor(dir))
	}
	return neighbors
}
