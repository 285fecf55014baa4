package world

import (
	"errors"
	"testing"
)

func referenceGrid() *Grid {
	return NewGrid(Geometry{Cols: 15, Rows: 11, CellWidth: 40, CellHeight: 36})
}

func TestCellOfCenterOf_RoundTrip(t *testing.T) {
	for _, geo := range []Geometry{
		{Cols: 15, Rows: 11, CellWidth: 40, CellHeight: 36},
		{Cols: 5, Rows: 5, CellWidth: 1, CellHeight: 1},
		{Cols: 7, Rows: 3, CellWidth: 0.3, CellHeight: 0.7},
	} {
		g := NewGrid(geo)
		g.ForEachCell(func(c Cell) {
			got, err := g.CellOf(g.CenterOf(c))
			if err != nil {
				t.Fatalf("CellOf(CenterOf(%v)) error: %v", c, err)
			}
			if got != c {
				t.Errorf("CellOf(CenterOf(%v)) = %v, want %v (geometry %+v)", c, got, c, geo)
			}
		})
	}
}

func TestCenterOf_ReferenceLayout(t *testing.T) {
	g := referenceGrid()

	// Top-left cell center matches the original arena: (-280, 180).
	if got, want := g.CenterOf(At(0, 0)), V(-280, 180); got != want {
		t.Errorf("CenterOf((0,0)) = %v, want %v", got, want)
	}
	// Rows grow downwards in world space.
	if got, want := g.CenterOf(At(0, 1)), V(-280, 144); got != want {
		t.Errorf("CenterOf((0,1)) = %v, want %v", got, want)
	}
	// The middle cell sits on the world origin.
	if got, want := g.CenterOf(At(7, 5)), V(0, 0); got != want {
		t.Errorf("CenterOf((7,5)) = %v, want %v", got, want)
	}
}

func TestCellOf_RoundsToNearest(t *testing.T) {
	g := referenceGrid()
	center := g.CenterOf(At(3, 4))

	tests := []struct {
		name string
		pos  Vec2
		want Cell
	}{
		{"slightly east", center.Add(V(19, 0)), At(3, 4)},
		{"past half east", center.Add(V(21, 0)), At(4, 4)},
		{"slightly north", center.Add(V(0, 17)), At(3, 4)},
		{"past half north", center.Add(V(0, 19)), At(3, 3)},
		{"past half south", center.Add(V(0, -19)), At(3, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.CellOf(tt.pos)
			if err != nil {
				t.Fatalf("CellOf(%v) error: %v", tt.pos, err)
			}
			if got != tt.want {
				t.Errorf("CellOf(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestCellOf_OutOfBounds(t *testing.T) {
	g := referenceGrid()
	_, err := g.CellOf(g.CenterOf(At(-1, 0)))
	var be *BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("CellOf(outside) error = %v, want *BoundsError", err)
	}
	if be.Cell != At(-1, 0) {
		t.Errorf("BoundsError.Cell = %v, want (-1,0)", be.Cell)
	}
}

func TestCellsOverlapping(t *testing.T) {
	g := referenceGrid()
	center := g.CenterOf(At(2, 2))

	// A box smaller than a cell at its center touches one cell.
	half := V(10, 10)
	cells := g.CellsOverlapping(center.Sub(half), center.Add(half))
	if len(cells) != 1 || cells[0] != At(2, 2) {
		t.Errorf("CellsOverlapping(small box) = %v, want [(2,2)]", cells)
	}

	// Exactly one cell in size touches only that cell (strict overlap).
	half = g.CellSize().Half()
	cells = g.CellsOverlapping(center.Sub(half), center.Add(half))
	if len(cells) != 1 || cells[0] != At(2, 2) {
		t.Errorf("CellsOverlapping(cell-sized box) = %v, want [(2,2)]", cells)
	}

	// Shifted east by a few units it spans two columns.
	shifted := center.Add(V(5, 0))
	cells = g.CellsOverlapping(shifted.Sub(V(10, 10)), shifted.Add(V(20, 10)))
	if len(cells) != 2 || cells[0] != At(2, 2) || cells[1] != At(3, 2) {
		t.Errorf("CellsOverlapping(straddling box) = %v, want [(2,2) (3,2)]", cells)
	}

	// Boxes hanging over the border report out-of-range cells.
	corner := g.CenterOf(At(0, 0))
	cells = g.CellsOverlapping(corner.Sub(V(25, 5)), corner.Add(V(5, 5)))
	if len(cells) != 2 || cells[0] != At(-1, 0) {
		t.Errorf("CellsOverlapping(border box) = %v, want [(-1,0) (0,0)]", cells)
	}
}

func TestCellStep(t *testing.T) {
	c := At(2, 2)
	tests := []struct {
		dir  Direction
		want Cell
	}{
		{North, At(2, 0)},
		{South, At(2, 4)},
		{East, At(4, 2)},
		{West, At(0, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := c.Step(tt.dir, 2); got != tt.want {
				t.Errorf("%v.Step(%v, 2) = %v, want %v", c, tt.dir, got, tt.want)
			}
		})
	}
}

func TestDirection_Unknown(t *testing.T) {
	d := Direction(7)
	if dr, dc := d.Delta(); dr != 0 || dc != 0 {
		t.Errorf("Delta() = %d, %d, want no step", dr, dc)
	}
	if got := d.String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
}
