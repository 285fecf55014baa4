package world

import (
	"fmt"
	"strings"
)

// Material is the per-cell terrain tag.
type Material uint8

// Material legend (values match the layout tables)
const (
	Empty Material = iota
	Block          // permanent, blocks blasts and movement
	Brick          // destructible, stops a blast after being hit
)

// MaterialSymbols maps materials to their layout/dump symbol
var MaterialSymbols = map[Material]rune{
	Empty: '.',
	Block: '#',
	Brick: '+',
}

// String returns the material name
func (m Material) String() string {
	switch m {
	case Empty:
		return "Empty"
	case Block:
		return "Block"
	case Brick:
		return "Brick"
	default:
		return "Unknown"
	}
}

// Symbol returns the single-character symbol for a material
func (m Material) Symbol() rune {
	if r, ok := MaterialSymbols[m]; ok {
		return r
	}
	return '?'
}

// IsSolid returns true for materials that block movement
func (m Material) IsSolid() bool {
	return m == Block || m == Brick
}

// Layout is a static terrain description, one slice per row.
type Layout [][]Material

// ParseLayout builds a layout from rows of material symbols.
func ParseLayout(lines ...string) (Layout, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("layout has no rows")
	}

	lookup := make(map[rune]Material, len(MaterialSymbols))
	for m, r := range MaterialSymbols {
		lookup[r] = m
	}

	layout := make(Layout, 0, len(lines))
	width := -1
	for row, line := range lines {
		runes := []rune(strings.TrimSpace(line))
		if width == -1 {
			width = len(runes)
		}
		if len(runes) != width || width == 0 {
			return nil, fmt.Errorf("layout row %d has %d cells, want %d", row, len(runes), width)
		}
		materials := make([]Material, len(runes))
		for col, r := range runes {
			m, ok := lookup[r]
			if !ok {
				return nil, fmt.Errorf("layout row %d col %d: unknown symbol %q", row, col, r)
			}
			materials[col] = m
		}
		layout = append(layout, materials)
	}
	return layout, nil
}

// MustParseLayout is ParseLayout for static tables; it panics on error.
func MustParseLayout(lines ...string) Layout {
	layout, err := ParseLayout(lines...)
	if err != nil {
		panic(err)
	}
	return layout
}

// Dims returns the layout dimensions
func (l Layout) Dims() (cols, rows int) {
	if len(l) == 0 {
		return 0, 0
	}
	return len(l[0]), len(l)
}

// At returns the material of a cell, Empty outside the layout
func (l Layout) At(c Cell) Material {
	if c.Row < 0 || c.Row >= len(l) || c.Col < 0 || c.Col >= len(l[c.Row]) {
		return Empty
	}
	return l[c.Row][c.Col]
}

// Strings renders the layout back into symbol rows
func (l Layout) Strings() []string {
	lines := make([]string, len(l))
	for row, materials := range l {
		var sb strings.Builder
		for _, m := range materials {
			sb.WriteRune(m.Symbol())
		}
		lines[row] = sb.String()
	}
	return lines
}

// Terrain holds the mutable material of every cell for one session.
// Bricks only ever turn into Empty; nothing else is mutated after creation.
type Terrain struct {
	grid  *Grid
	cells []Material
}

// NewTerrain initializes terrain from a layout matching the grid dimensions
func NewTerrain(grid *Grid, layout Layout) (*Terrain, error) {
	cols, rows := layout.Dims()
	if cols != grid.Cols() || rows != grid.Rows() {
		return nil, fmt.Errorf("layout is %dx%d, grid is %dx%d", cols, rows, grid.Cols(), grid.Rows())
	}

	t := &Terrain{
		grid:  grid,
		cells: make([]Material, cols*rows),
	}
	grid.ForEachCell(func(c Cell) {
		t.cells[grid.Index(c)] = layout[c.Row][c.Col]
	})
	return t, nil
}

// Grid returns the grid the terrain is laid on
func (t *Terrain) Grid() *Grid {
	return t.grid
}

// MaterialAt returns the material of a cell, or a *BoundsError
func (t *Terrain) MaterialAt(c Cell) (Material, error) {
	if err := t.grid.CheckBounds(c); err != nil {
		return Empty, err
	}
	return t.cells[t.grid.Index(c)], nil
}

// DestroyBrick turns a Brick cell into Empty and reports whether it did.
// Any other material, or a cell outside the grid, is left untouched.
func (t *Terrain) DestroyBrick(c Cell) bool {
	if !t.grid.Contains(c) {
		return false
	}
	idx := t.grid.Index(c)
	if t.cells[idx] != Brick {
		return false
	}
	t.cells[idx] = Empty
	return true
}

// IsSolid reports whether a cell blocks movement. Cells outside the grid do.
func (t *Terrain) IsSolid(c Cell) bool {
	m, err := t.MaterialAt(c)
	if err != nil {
		return true
	}
	return m.IsSolid()
}

// Count returns how many cells hold the given material
func (t *Terrain) Count(m Material) int {
	n := 0
	for _, cell := range t.cells {
		if cell == m {
			n++
		}
	}
	return n
}

// Rows returns a copy of the terrain as a layout
func (t *Terrain) Rows() Layout {
	layout := make(Layout, t.grid.Rows())
	for row := range layout {
		start := row * t.grid.Cols()
		layout[row] = append([]Material(nil), t.cells[start:start+t.grid.Cols()]...)
	}
	return layout
}
