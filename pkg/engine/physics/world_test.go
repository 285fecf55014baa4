package physics

import (
	"testing"

	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/world"
)

// makeWorld lays the given rows on a grid of 1x1 cells.
func makeWorld(t *testing.T, lines ...string) (*World, *world.Grid) {
	t.Helper()
	layout := world.MustParseLayout(lines...)
	cols, rows := layout.Dims()
	grid := world.NewGrid(world.Geometry{Cols: cols, Rows: rows, CellWidth: 1, CellHeight: 1})
	terrain, err := world.NewTerrain(grid, layout)
	if err != nil {
		t.Fatalf("NewTerrain: %v", err)
	}
	return NewWorld(grid, terrain), grid
}

func box(h arena.Handle, pos world.Vec2, half float64, solid bool) Body {
	return Body{Handle: h, Pos: pos, Half: world.V(half, half), Solid: solid}
}

func TestIntegrate_MovesFreely(t *testing.T) {
	w, grid := makeWorld(t, ".....")
	start := grid.CenterOf(world.At(0, 0))
	w.Spawn(box(1, start, 0.4, false))
	w.SetVelocity(1, world.V(1, 0))

	w.Integrate(0.5)

	got, _ := w.Position(1)
	if want := start.Add(world.V(0.5, 0)); got != want {
		t.Errorf("Position after Integrate = %v, want %v", got, want)
	}
}

func TestIntegrate_BlockedByTerrain(t *testing.T) {
	w, grid := makeWorld(t,
		".#...",
		".....",
	)
	start := grid.CenterOf(world.At(0, 0))
	w.Spawn(box(1, start, 0.4, false))

	// East is a block, north is outside the grid.
	w.SetVelocity(1, world.V(10, 10))
	w.Integrate(0.1)
	if got, _ := w.Position(1); got != start {
		t.Errorf("Position = %v, want unchanged %v", got, start)
	}

	// South is open: the blocked x axis does not stop the y axis.
	w.SetVelocity(1, world.V(10, -10))
	w.Integrate(0.1)
	if got, want := w.bodies[1].Pos, start.Add(world.V(0, -1)); got != want {
		t.Errorf("Position = %v, want %v", got, want)
	}
}

func TestIntegrate_SolidBodies(t *testing.T) {
	w, grid := makeWorld(t, ".....")
	mover := grid.CenterOf(world.At(0, 0))
	w.Spawn(box(1, mover, 0.4, false))
	w.Spawn(box(2, grid.CenterOf(world.At(1, 0)), 0.5, false))
	w.SetVelocity(1, world.V(5, 0))

	// A sensor never blocks.
	w.Integrate(0.1)
	if got, want := w.bodies[1].Pos, mover.Add(world.V(0.5, 0)); got != want {
		t.Fatalf("moving into a sensor: Position = %v, want %v", got, want)
	}

	// Turning it solid while the mover is inside must not trap the mover.
	w.SetSolid(2, true)
	w.Integrate(0.1)
	if got, want := w.bodies[1].Pos, mover.Add(world.V(1, 0)); got != want {
		t.Fatalf("moving while inside a solid: Position = %v, want %v", got, want)
	}

	// A solid body the mover is not already inside blocks it.
	w.Spawn(box(3, grid.CenterOf(world.At(3, 0)), 0.5, true))
	w.SetVelocity(1, world.V(0, 0))
	w.Despawn(2)
	w.SetVelocity(1, world.V(10, 0))
	before := w.bodies[1].Pos
	w.Integrate(0.2)
	if got := w.bodies[1].Pos; got != before {
		t.Errorf("moving into a solid: Position = %v, want unchanged %v", got, before)
	}
}

func TestDetectOverlaps_StartStop(t *testing.T) {
	w, grid := makeWorld(t, ".....")
	w.Spawn(box(1, grid.CenterOf(world.At(0, 0)), 0.4, false))
	w.Spawn(box(2, grid.CenterOf(world.At(0, 0)), 0.5, false))
	w.Spawn(box(3, grid.CenterOf(world.At(4, 0)), 0.5, false))

	events := w.DetectOverlaps()
	if len(events) != 1 || !events[0].Started || events[0].Pair != MakePair(2, 1) {
		t.Fatalf("first DetectOverlaps() = %+v, want one start for (1,2)", events)
	}

	// Nothing changed: no events.
	if events := w.DetectOverlaps(); len(events) != 0 {
		t.Errorf("repeated DetectOverlaps() = %+v, want none", events)
	}

	w.SetVelocity(1, world.V(10, 0))
	w.Integrate(0.1)
	events = w.DetectOverlaps()
	if len(events) != 1 || events[0].Started || events[0].Pair != MakePair(1, 2) {
		t.Errorf("after moving away DetectOverlaps() = %+v, want one stop for (1,2)", events)
	}
}

func TestDespawn_DropsPairsSilently(t *testing.T) {
	w, grid := makeWorld(t, "...")
	c := grid.CenterOf(world.At(1, 0))
	w.Spawn(box(1, c, 0.4, false))
	w.Spawn(box(2, c, 0.4, false))
	w.DetectOverlaps()

	if !w.Touching(1, 2) {
		t.Fatal("Touching(1, 2) = false after detection")
	}
	if !w.Despawn(2) {
		t.Fatal("Despawn(2) = false")
	}
	if w.Despawn(2) {
		t.Error("second Despawn(2) = true, want false")
	}
	if events := w.DetectOverlaps(); len(events) != 0 {
		t.Errorf("DetectOverlaps() after despawn = %+v, want none", events)
	}
}

func TestOverlaps_TouchingEdgesDoNotCount(t *testing.T) {
	if Overlaps(world.V(0, 0), world.V(0.5, 0.5), world.V(1, 0), world.V(0.5, 0.5)) {
		t.Error("Overlaps(edge-touching boxes) = true, want false")
	}
	if !Overlaps(world.V(0, 0), world.V(0.5, 0.5), world.V(0.9, 0.2), world.V(0.5, 0.5)) {
		t.Error("Overlaps(intersecting boxes) = false, want true")
	}
}
