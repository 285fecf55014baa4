// Package clock paces a fixed-timestep simulation against wall time.
package clock

import "time"

// maxCatchUp bounds how many ticks a single Due call may report after a stall
const maxCatchUp = 5

// FixedStep accumulates wall time and releases it in fixed ticks.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep targets the given ticks per second. Non-positive rates fall
// back to 60.
func NewFixedStep(tps int) *FixedStep {
	f := &FixedStep{now: time.Now}
	f.SetTPS(tps)
	return f
}

// SetTPS changes the tick rate
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the tick length
func (f *FixedStep) Step() time.Duration {
	return f.step
}

// Seconds returns the tick length in seconds, the dt fed to the simulation
func (f *FixedStep) Seconds() float64 {
	return f.step.Seconds()
}

// Due returns how many ticks are owed since the previous call. The first call
// only starts the clock.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	ticks := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		ticks++
		if ticks == maxCatchUp {
			f.accumulator = 0
			break
		}
	}
	return ticks
}

// Reset drops accumulated time and restarts the clock
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
