package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "abtestbed/pkg/engine/input"
)

// keyCodes maps Ebiten keys onto the raw codes the binding table knows
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeySpace:      "space",
	ebiten.KeyW:          "w",
	ebiten.KeyS:          "s",
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeyV:          "v",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyR:          "r",
}

// Update polls the keyboard and advances the simulation by one tick
// (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	if !e.sim.Step(e.checkInput()) {
		return ebiten.Termination
	}
	e.storeSnapshot()
	return nil
}

// checkInput builds this tick's frame. Movement follows the held state of a
// key; planting, reset and quit fire once per press.
func (e *EbitenRenderer) checkInput() engineinput.Frame {
	var frame engineinput.Frame
	for key, code := range keyCodes {
		binding, ok := engineinput.Lookup(code)
		if !ok {
			continue
		}

		pressed := false
		if binding.Action.IsMovement() {
			pressed = ebiten.IsKeyPressed(key)
		} else {
			pressed = inpututil.IsKeyJustPressed(key)
		}
		if pressed {
			frame.Apply(code)
		}
	}
	return frame
}
