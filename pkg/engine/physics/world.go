package physics

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/world"
)

// StaticBlocker answers whether a terrain cell blocks movement.
// Cells outside the grid are expected to report true.
type StaticBlocker interface {
	IsSolid(c world.Cell) bool
}

// World holds all bodies of one session.
type World struct {
	grid   *world.Grid
	static StaticBlocker
	bodies map[arena.Handle]*Body

	// pairs overlapping at the last DetectOverlaps call
	touching mapset.Set[Pair]
}

// NewWorld creates an empty world on a grid. static may be nil when nothing
// but bodies can block.
func NewWorld(grid *world.Grid, static StaticBlocker) *World {
	return &World{
		grid:     grid,
		static:   static,
		bodies:   make(map[arena.Handle]*Body),
		touching: mapset.New[Pair](),
	}
}

// Spawn adds a body. Spawning an existing handle replaces its body.
func (w *World) Spawn(b Body) {
	body := b
	w.bodies[b.Handle] = &body
}

// Despawn removes a body and forgets its overlapping pairs without
// producing stop events. Unknown handles are ignored.
func (w *World) Despawn(h arena.Handle) bool {
	if _, ok := w.bodies[h]; !ok {
		return false
	}
	delete(w.bodies, h)

	var stale []Pair
	w.touching.Each(func(p Pair) {
		if p.Has(h) {
			stale = append(stale, p)
		}
	})
	for _, p := range stale {
		w.touching.Remove(p)
	}
	return true
}

// Body returns a copy of a body
func (w *World) Body(h arena.Handle) (Body, bool) {
	b, ok := w.bodies[h]
	if !ok {
		return Body{}, false
	}
	return *b, true
}

// Position returns the center of a body
func (w *World) Position(h arena.Handle) (world.Vec2, bool) {
	b, ok := w.bodies[h]
	if !ok {
		return world.Vec2{}, false
	}
	return b.Pos, true
}

// SetSolid toggles a body between solid and sensor
func (w *World) SetSolid(h arena.Handle, solid bool) bool {
	b, ok := w.bodies[h]
	if !ok {
		return false
	}
	b.Solid = solid
	return true
}

// SetVelocity sets the velocity used by the next Integrate
func (w *World) SetVelocity(h arena.Handle, v world.Vec2) bool {
	b, ok := w.bodies[h]
	if !ok {
		return false
	}
	b.Vel = v
	return true
}

// Len returns the number of bodies
func (w *World) Len() int {
	return len(w.bodies)
}

// handles returns body handles in ascending order so every pass is deterministic
func (w *World) handles() []arena.Handle {
	hs := make([]arena.Handle, 0, len(w.bodies))
	for h := range w.bodies {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}

// Integrate advances every moving body by dt seconds. The x and y axes are
// resolved separately so a body slides along walls; a blocked axis keeps its
// old coordinate.
func (w *World) Integrate(dt float64) {
	for _, h := range w.handles() {
		b := w.bodies[h]
		if b.Vel.X == 0 && b.Vel.Y == 0 {
			continue
		}

		// Solid bodies already overlapping this one never block it, which
		// lets a body walk out of something that turned solid around it.
		ignore := w.overlappingSolids(b)

		if b.Vel.X != 0 {
			next := world.V(b.Pos.X+b.Vel.X*dt, b.Pos.Y)
			if !w.blocked(b, next, ignore) {
				b.Pos = next
			}
		}
		if b.Vel.Y != 0 {
			next := world.V(b.Pos.X, b.Pos.Y+b.Vel.Y*dt)
			if !w.blocked(b, next, ignore) {
				b.Pos = next
			}
		}
	}
}

func (w *World) overlappingSolids(b *Body) mapset.Set[arena.Handle] {
	set := mapset.New[arena.Handle]()
	for h, other := range w.bodies {
		if h == b.Handle || !other.Solid {
			continue
		}
		if Overlaps(b.Pos, b.Half, other.Pos, other.Half) {
			set.Put(h)
		}
	}
	return set
}

func (w *World) blocked(b *Body, pos world.Vec2, ignore mapset.Set[arena.Handle]) bool {
	if w.static != nil {
		for _, c := range w.grid.CellsOverlapping(pos.Sub(b.Half), pos.Add(b.Half)) {
			if w.static.IsSolid(c) {
				return true
			}
		}
	}
	for h, other := range w.bodies {
		if h == b.Handle || !other.Solid || ignore.Has(h) {
			continue
		}
		if Overlaps(pos, b.Half, other.Pos, other.Half) {
			return true
		}
	}
	return false
}

// DetectOverlaps compares the current overlapping pairs with those seen by
// the previous call and returns the difference as start/stop events, sorted
// by pair.
func (w *World) DetectOverlaps() []Event {
	current := w.overlappingPairs()

	var events []Event
	current.Each(func(p Pair) {
		if !w.touching.Has(p) {
			events = append(events, Event{Pair: p, Started: true})
		}
	})
	w.touching.Each(func(p Pair) {
		if !current.Has(p) {
			events = append(events, Event{Pair: p, Started: false})
		}
	})
	w.touching = current

	sort.Slice(events, func(i, j int) bool {
		if events[i].A != events[j].A {
			return events[i].A < events[j].A
		}
		return events[i].B < events[j].B
	})
	return events
}

// Touching reports whether a pair was overlapping at the last detection
func (w *World) Touching(x, y arena.Handle) bool {
	return w.touching.Has(MakePair(x, y))
}

// overlappingPairs buckets bodies by the grid cells their boxes cover and
// tests only bodies sharing a bucket.
func (w *World) overlappingPairs() mapset.Set[Pair] {
	buckets := make(map[world.Cell][]arena.Handle)
	for _, h := range w.handles() {
		b := w.bodies[h]
		for _, c := range w.grid.CellsOverlapping(b.Min(), b.Max()) {
			buckets[c] = append(buckets[c], h)
		}
	}

	pairs := mapset.New[Pair]()
	for _, bucket := range buckets {
		for i := 0; i < len(bucket); i++ {
			a := w.bodies[bucket[i]]
			for j := i + 1; j < len(bucket); j++ {
				b := w.bodies[bucket[j]]
				if Overlaps(a.Pos, a.Half, b.Pos, b.Half) {
					pairs.Put(MakePair(a.Handle, b.Handle))
				}
			}
		}
	}
	return pairs
}
