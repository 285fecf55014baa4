package ebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/basicfont"

	"abtestbed/pkg/game/renderer"
)

// New creates a new Ebiten renderer drawing scale pixels per world unit
func New(scale float64) *EbitenRenderer {
	if scale <= 0 {
		scale = 1
	}
	return &EbitenRenderer{scale: scale}
}

// Init loads the HUD font
func (e *EbitenRenderer) Init() error {
	e.face = text.NewGoXFace(basicfont.Face7x13)
	return nil
}

// Run opens the window and hands the loop to Ebiten until the simulation
// quits or the window is closed
func (e *EbitenRenderer) Run(sim renderer.Simulation) error {
	e.sim = sim
	e.storeSnapshot()

	snap := e.currentSnapshot().state
	e.windowWidth = int(math.Ceil(float64(snap.Cols) * snap.CellSize.X * e.scale))
	e.windowHeight = int(math.Ceil(float64(snap.Rows)*snap.CellSize.Y*e.scale)) + hudHeight()

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("HUD_TITLE"))
	ebiten.SetTPS(sim.TickRate())
	return ebiten.RunGame(e)
}

// StyleText returns text unchanged; colors are applied when drawing
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// Layout keeps the logical screen at the arena size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}

func hudHeight() int {
	return hudPadding*2 + hudLines*hudLineHeight
}

func (e *EbitenRenderer) storeSnapshot() {
	snap := e.sim.Snapshot()
	e.snapshotMutex.Lock()
	e.snapshot = renderSnapshot{valid: true, state: snap}
	e.snapshotMutex.Unlock()
}

func (e *EbitenRenderer) currentSnapshot() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}
