package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement (held)
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Edge triggered
	ActionPlantBomb
	ActionQuit
	ActionReset
)

// IsMovement reports whether an action is a held direction
func (a Action) IsMovement() bool {
	return a >= ActionMoveNorth && a <= ActionMoveEast
}

// MaxPlayers is the number of local player slots
const MaxPlayers = 2

// SlotGlobal marks a binding that belongs to no player (quit, reset)
const SlotGlobal = -1

// Binding ties a device code to an action for one player slot.
type Binding struct {
	Slot   int
	Action Action
}

// Intent is what one player wants during a tick.
// Directions are held states; Plant is true only on the tick it was pressed.
type Intent struct {
	North bool
	South bool
	West  bool
	East  bool
	Plant bool
}

// Axis returns the held direction as (east - west, north - south)
func (i Intent) Axis() (x, y int) {
	if i.East {
		x++
	}
	if i.West {
		x--
	}
	if i.North {
		y++
	}
	if i.South {
		y--
	}
	return x, y
}

// Frame is the input polled for a single tick.
type Frame struct {
	Players [MaxPlayers]Intent
	Quit    bool
	Reset   bool
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "space").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// bindings maps raw codes to per-player actions.
// Player 1 plays on the arrows and space, player 2 on WASD and V.
var bindings = map[string]Binding{
	"arrow_up":    {0, ActionMoveNorth},
	"arrow_down":  {0, ActionMoveSouth},
	"arrow_left":  {0, ActionMoveWest},
	"arrow_right": {0, ActionMoveEast},
	"space":       {0, ActionPlantBomb},

	"w": {1, ActionMoveNorth},
	"s": {1, ActionMoveSouth},
	"a": {1, ActionMoveWest},
	"d": {1, ActionMoveEast},
	"v": {1, ActionPlantBomb},

	"q":      {SlotGlobal, ActionQuit},
	"escape": {SlotGlobal, ActionQuit},
	"ctrl_c": {SlotGlobal, ActionQuit},
	"r":      {SlotGlobal, ActionReset},
}

// Lookup returns the binding for a code
func Lookup(code string) (Binding, bool) {
	b, ok := bindings[code]
	return b, ok
}

// Apply records a pressed code in the frame and reports whether it was bound
func (f *Frame) Apply(code string) bool {
	b, ok := bindings[code]
	if !ok {
		return false
	}

	switch b.Action {
	case ActionQuit:
		f.Quit = true
		return true
	case ActionReset:
		f.Reset = true
		return true
	}

	if b.Slot < 0 || b.Slot >= MaxPlayers {
		return false
	}
	intent := &f.Players[b.Slot]
	switch b.Action {
	case ActionMoveNorth:
		intent.North = true
	case ActionMoveSouth:
		intent.South = true
	case ActionMoveWest:
		intent.West = true
	case ActionMoveEast:
		intent.East = true
	case ActionPlantBomb:
		intent.Plant = true
	default:
		return false
	}
	return true
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionPlantBomb:
		return "Plant Bomb"
	case ActionQuit:
		return "Quit"
	case ActionReset:
		return "Reset"
	default:
		return "None"
	}
}

// Codes returns every bound code in a stable order
func Codes() []string {
	codes := make([]string, 0, len(bindings))
	for code := range bindings {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetBindingsBySlot returns the codes bound for one player slot, grouped by
// action.
func GetBindingsBySlot(slot int) map[Action][]string {
	result := make(map[Action][]string)
	for code, b := range bindings {
		if b.Slot == slot {
			result[b.Action] = append(result[b.Action], code)
		}
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
