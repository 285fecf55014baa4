package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"abtestbed/pkg/game/renderer"
	"abtestbed/pkg/game/state"
)

// renderSnapshot holds a consistent snapshot of the arena for rendering
type renderSnapshot struct {
	valid bool
	state state.Snapshot
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Pixels per world unit
	scale float64

	// Window dimensions, derived from the arena size on Run
	windowWidth  int
	windowHeight int

	face text.Face

	sim renderer.Simulation

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	windowOpenedLogged bool
}
