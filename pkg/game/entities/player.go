package entities

import (
	"image/color"

	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/world"
)

// PlayerColor identifies a player's side; bombs and hazards inherit it
type PlayerColor int

const (
	ColorWhite PlayerColor = iota
	ColorBlack
)

// ColorInfo contains display information for each player color
type ColorInfo struct {
	Name       string
	Icon       string
	BombIcon   string
	HazardIcon string
	RGBA       color.RGBA
}

// PlayerColors maps player colors to their display information
var PlayerColors = map[PlayerColor]ColorInfo{
	ColorWhite: {
		Name:       "White",
		Icon:       "W",
		BombIcon:   "o",
		HazardIcon: "*",
		RGBA:       color.RGBA{R: 217, G: 217, B: 217, A: 255},
	},
	ColorBlack: {
		Name:       "Black",
		Icon:       "B",
		BombIcon:   "o",
		HazardIcon: "*",
		RGBA:       color.RGBA{R: 89, G: 89, B: 89, A: 255},
	},
}

// String returns the color name
func (c PlayerColor) String() string {
	if info, ok := PlayerColors[c]; ok {
		return info.Name
	}
	return "Unknown"
}

// Loadout is the per-player bomb configuration
type Loadout struct {
	Capacity    int     // bombs that may be live at once
	BlastRadius int     // cells
	Fuse        float64 // seconds
	Speed       float64 // world units per second
}

// Player is one of the two contestants
type Player struct {
	ID    arena.Handle
	Slot  int
	Name  string
	Color PlayerColor
	Spawn world.Cell

	Capacity    int
	MaxCapacity int
	BlastRadius int
	Fuse        float64
	Speed       float64

	Alive bool
}

// NewPlayer creates a living player with a full bomb capacity
func NewPlayer(id arena.Handle, slot int, c PlayerColor, spawn world.Cell, loadout Loadout) *Player {
	return &Player{
		ID:          id,
		Slot:        slot,
		Name:        c.String(),
		Color:       c,
		Spawn:       spawn,
		Capacity:    loadout.Capacity,
		MaxCapacity: loadout.Capacity,
		BlastRadius: loadout.BlastRadius,
		Fuse:        loadout.Fuse,
		Speed:       loadout.Speed,
		Alive:       true,
	}
}

// CanPlant returns true if the player is alive and has a bomb left
func (p *Player) CanPlant() bool {
	return p.Alive && p.Capacity > 0
}
