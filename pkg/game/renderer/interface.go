package renderer

import (
	engineinput "abtestbed/pkg/engine/input"
	"abtestbed/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleFloor
	StyleBlock
	StyleBrick
	StyleBomb
	StyleBombArmed
	StyleHazard
	StylePlayerWhite
	StylePlayerBlack
	StyleSubtle
	StyleTitle
	StyleDenied
)

// Simulation is what a front-end drives: one Step per tick, one Snapshot per
// drawn frame.
type Simulation interface {
	// Step advances one tick with the given input. It returns false once the
	// session asked to quit.
	Step(frame engineinput.Frame) bool

	// Snapshot copies out everything needed to draw the current frame
	Snapshot() state.Snapshot

	// TickRate is the number of Step calls expected per second
	TickRate() int
}

// Renderer defines the interface for display backends (terminal, Ebiten)
type Renderer interface {
	// Init prepares colors, fonts and the window
	Init() error

	// Run owns the main loop until the simulation quits or the display
	// is closed
	Run(sim Simulation) error

	// StyleText applies a style to text and returns the styled string.
	// For the TUI this applies ANSI colors; graphical renderers may
	// return the text unchanged.
	StyleText(text string, style TextStyle) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Run initializes the current renderer and hands it the simulation
func Run(sim Simulation) error {
	if Current == nil {
		return ErrNoRenderer
	}
	if err := Current.Init(); err != nil {
		return err
	}
	return Current.Run(sim)
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}
