package explosion

import (
	"testing"

	"abtestbed/pkg/engine/world"
)

func makeTerrain(t *testing.T, lines ...string) *world.Terrain {
	t.Helper()
	layout := world.MustParseLayout(lines...)
	cols, rows := layout.Dims()
	grid := world.NewGrid(world.Geometry{Cols: cols, Rows: rows, CellWidth: 40, CellHeight: 36})
	terrain, err := world.NewTerrain(grid, layout)
	if err != nil {
		t.Fatalf("NewTerrain: %v", err)
	}
	return terrain
}

func assertCells(t *testing.T, got []world.Cell, want ...world.Cell) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("cells = %v, want %v", got, want)
	}
	gotSet := CellSet(got)
	for _, c := range want {
		if !gotSet.Has(c) {
			t.Errorf("cells = %v, missing %v", got, c)
		}
	}
}

func TestPropagate_OpenFieldFullCross(t *testing.T) {
	terrain := makeTerrain(t,
		".....",
		".....",
		".....",
		".....",
		".....",
	)
	got := Propagate(world.At(2, 2), 2, terrain)
	assertCells(t, got,
		world.At(2, 2),
		world.At(2, 0), world.At(2, 1), world.At(2, 3), world.At(2, 4),
		world.At(0, 2), world.At(1, 2), world.At(3, 2), world.At(4, 2),
	)
	if got[0] != world.At(2, 2) {
		t.Errorf("first cell = %v, want the center", got[0])
	}
}

func TestPropagate_BlockStopsRay(t *testing.T) {
	terrain := makeTerrain(t,
		".....",
		"..#..",
		".....",
		".....",
		".....",
	)
	if north := Ray(world.At(2, 2), world.North, 2, terrain); len(north) != 0 {
		t.Errorf("north ray = %v, want none", north)
	}

	got := CellSet(Propagate(world.At(2, 2), 2, terrain))
	if !got.Has(world.At(2, 2)) {
		t.Error("center missing when north is blocked")
	}
	for _, c := range []world.Cell{world.At(2, 1), world.At(2, 0)} {
		if got.Has(c) {
			t.Errorf("blast reached %v past a block", c)
		}
	}
	if got.Size() != 7 {
		t.Errorf("blast has %d cells, want 7", got.Size())
	}
}

func TestPropagate_BrickIncludedThenStops(t *testing.T) {
	terrain := makeTerrain(t,
		".....",
		".....",
		".....",
		"..+..",
		".....",
	)
	south := Ray(world.At(2, 2), world.South, 3, terrain)
	assertCells(t, south, world.At(2, 3))

	// Resolving the blast destroys the brick.
	for _, c := range Propagate(world.At(2, 2), 3, terrain) {
		terrain.DestroyBrick(c)
	}
	if m, _ := terrain.MaterialAt(world.At(2, 3)); m != world.Empty {
		t.Errorf("MaterialAt((2,3)) after blast = %v, want Empty", m)
	}
}

func TestRay_StopsAtGridBorder(t *testing.T) {
	terrain := makeTerrain(t, "...")
	assertCells(t, Ray(world.At(1, 0), world.East, 5, terrain), world.At(2, 0))
	assertCells(t, Ray(world.At(1, 0), world.North, 5, terrain))
}

func TestRay_ZeroRadius(t *testing.T) {
	terrain := makeTerrain(t, "...")
	assertCells(t, Propagate(world.At(1, 0), 0, terrain), world.At(1, 0))
}

func TestPropagate_NeverPassesBlockOrBrick(t *testing.T) {
	terrain := makeTerrain(t,
		".+.#.",
		"#.+..",
		"..+.+",
		"+#...",
		"..#+.",
	)
	cols, rows := 5, 5
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			center := world.At(col, row)
			for _, dir := range world.AllDirections() {
				ray := Ray(center, dir, 4, terrain)
				for i, c := range ray {
					m, err := terrain.MaterialAt(c)
					if err != nil {
						t.Fatalf("ray from %v %v yielded out of range cell %v", center, dir, c)
					}
					if m == world.Block {
						t.Errorf("ray from %v %v includes block %v", center, dir, c)
					}
					if m == world.Brick && i != len(ray)-1 {
						t.Errorf("ray from %v %v passes brick %v", center, dir, c)
					}
				}
			}
		}
	}
}
