package world

import "fmt"

// BoundsError reports a cell outside the grid.
type BoundsError struct {
	Cell Cell
	Cols int
	Rows int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell %v outside %dx%d grid", e.Cell, e.Cols, e.Rows)
}
