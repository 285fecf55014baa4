package input

import (
	"time"
)

// DefaultHoldWindow covers the gap between the first press and the terminal's
// key repeat.
const DefaultHoldWindow = 500 * time.Millisecond

// HoldTracker turns a stream of key presses into held states.
//
// Terminals only report presses, never releases, so a movement code counts as
// held while it was last seen within the hold window. Every other code is
// edge triggered and reported by exactly one Frame call.
type HoldTracker struct {
	window  time.Duration
	held    map[string]time.Time
	pending []string
}

// NewHoldTracker creates a tracker; a non-positive window uses DefaultHoldWindow
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		held:   make(map[string]time.Time),
	}
}

// Press records a raw input
func (h *HoldTracker) Press(raw RawInput) {
	b, ok := Lookup(raw.Code)
	if !ok {
		return
	}
	if b.Action.IsMovement() {
		h.held[raw.Code] = raw.Timestamp
		return
	}
	h.pending = append(h.pending, raw.Code)
}

// Frame builds the input for the tick at now and consumes pending presses
func (h *HoldTracker) Frame(now time.Time) Frame {
	var f Frame
	for code, seen := range h.held {
		if now.Sub(seen) > h.window {
			delete(h.held, code)
			continue
		}
		f.Apply(code)
	}
	for _, code := range h.pending {
		f.Apply(code)
	}
	h.pending = h.pending[:0]
	return f
}
