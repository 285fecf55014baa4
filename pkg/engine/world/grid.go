package world

import (
	"math"
)

// Geometry describes the dimensions of a grid and the world size of one cell.
type Geometry struct {
	Cols       int
	Rows       int
	CellWidth  float64
	CellHeight float64
}

// Grid maps discrete cells to continuous world positions.
//
// World space is centered on the arena with y growing upwards, while rows grow
// downwards, so cell (0,0) is the top-left corner. The mapping is a fixed affine
// transform; CellOf(CenterOf(c)) == c for every cell inside the grid.
type Grid struct {
	cols int
	rows int

	cellSize Vec2
	origin   Vec2 // center of cell (0,0)
}

// NewGrid creates a new grid with the given geometry
func NewGrid(geo Geometry) *Grid {
	if geo.Cols <= 0 || geo.Rows <= 0 {
		panic("Grid dimensions must be positive")
	}
	if geo.CellWidth <= 0 || geo.CellHeight <= 0 {
		panic("Grid cell size must be positive")
	}

	width := float64(geo.Cols) * geo.CellWidth
	height := float64(geo.Rows) * geo.CellHeight

	return &Grid{
		cols:     geo.Cols,
		rows:     geo.Rows,
		cellSize: V(geo.CellWidth, geo.CellHeight),
		origin:   V(-width/2+geo.CellWidth/2, height/2-geo.CellHeight/2),
	}
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// CellSize returns the world size of a single cell
func (g *Grid) CellSize() Vec2 {
	return g.cellSize
}

// Size returns the world size of the whole grid
func (g *Grid) Size() Vec2 {
	return V(float64(g.cols)*g.cellSize.X, float64(g.rows)*g.cellSize.Y)
}

// Contains checks if a cell is within grid bounds
func (g *Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// CheckBounds returns a *BoundsError if the cell is outside the grid
func (g *Grid) CheckBounds(c Cell) error {
	if !g.Contains(c) {
		return &BoundsError{Cell: c, Cols: g.cols, Rows: g.rows}
	}
	return nil
}

// CenterOf returns the world position of the center of a cell
func (g *Grid) CenterOf(c Cell) Vec2 {
	return V(
		g.origin.X+float64(c.Col)*g.cellSize.X,
		g.origin.Y-float64(c.Row)*g.cellSize.Y,
	)
}

// CellOf rounds a world position to the nearest cell.
// Positions that round outside the grid fail with a *BoundsError.
func (g *Grid) CellOf(pos Vec2) (Cell, error) {
	c := Cell{
		Col: int(math.Round((pos.X - g.origin.X) / g.cellSize.X)),
		Row: int(math.Round((g.origin.Y - pos.Y) / g.cellSize.Y)),
	}
	if err := g.CheckBounds(c); err != nil {
		return c, err
	}
	return c, nil
}

// CellsOverlapping returns every cell whose area strictly intersects the
// world-space box [min, max]. Cells outside the grid are included so callers
// can treat the border as solid.
func (g *Grid) CellsOverlapping(min, max Vec2) []Cell {
	left := g.origin.X - g.cellSize.X/2
	top := g.origin.Y + g.cellSize.Y/2

	firstCol := int(math.Floor((min.X - left) / g.cellSize.X))
	lastCol := int(math.Ceil((max.X-left)/g.cellSize.X)) - 1
	firstRow := int(math.Floor((top - max.Y) / g.cellSize.Y))
	lastRow := int(math.Ceil((top-min.Y)/g.cellSize.Y)) - 1

	var cells []Cell
	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			cells = append(cells, Cell{Col: col, Row: row})
		}
	}
	return cells
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(c Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(Cell{Col: col, Row: row})
		}
	}
}

// Index returns the row-major slice index for an in-bounds cell
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}
