// Package physics is a small kinematic collision world for axis-aligned boxes
// on top of a world.Grid. It moves bodies by their velocity, blocks them on
// solid terrain and solid bodies, and reports overlap start/stop events.
package physics

import (
	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/world"
)

// Body is an axis-aligned box tracked by the physics world.
// A non-solid body is a sensor: it is detected but never blocks movement.
type Body struct {
	Handle arena.Handle
	Kind   arena.Kind
	Pos    world.Vec2 // center
	Half   world.Vec2 // half extents
	Vel    world.Vec2
	Solid  bool
}

// Min returns the lower-left corner
func (b *Body) Min() world.Vec2 {
	return b.Pos.Sub(b.Half)
}

// Max returns the upper-right corner
func (b *Body) Max() world.Vec2 {
	return b.Pos.Add(b.Half)
}

// Overlaps checks strict intersection of two boxes; touching edges do not count.
func Overlaps(posA, halfA, posB, halfB world.Vec2) bool {
	dx := posA.X - posB.X
	if dx < 0 {
		dx = -dx
	}
	dy := posA.Y - posB.Y
	if dy < 0 {
		dy = -dy
	}
	return dx < halfA.X+halfB.X && dy < halfA.Y+halfB.Y
}

// Pair is an unordered pair of bodies, stored with A < B
type Pair struct {
	A, B arena.Handle
}

// MakePair normalizes the handle order
func MakePair(x, y arena.Handle) Pair {
	if x > y {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

// Has reports whether h is one side of the pair
func (p Pair) Has(h arena.Handle) bool {
	return p.A == h || p.B == h
}

// Event is an overlap start or stop notification
type Event struct {
	Pair
	Started bool
}
