package state

import (
	"github.com/zyedidia/generic/mapset"

	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/physics"
	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/bombs"
	"abtestbed/pkg/game/hazards"
	"abtestbed/pkg/game/players"
)

// Status is the round state
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusDraw
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "Won"
	case StatusDraw:
		return "Draw"
	default:
		return "Running"
	}
}

// Settings are the per-session rules the tick pipeline needs
type Settings struct {
	HazardLifetime float64
	HazardPolicy   hazards.Policy
	PlayerSize     world.Vec2
	BombSize       world.Vec2
	HazardSize     world.Vec2
}

// Game represents one session of the arena. All of it is created at session
// start, mutated only by the tick pipeline and dropped at session end.
type Game struct {
	Settings Settings

	Grid    *world.Grid
	Layout  world.Layout // the layout the terrain started from
	Terrain *world.Terrain

	Arena   *arena.Arena
	Physics *physics.World
	Bombs   *bombs.Registry
	Hazards *hazards.Store
	Players *players.Tracker

	// Occupants maps a bomb to the players currently overlapping it
	Occupants map[arena.Handle]mapset.Set[arena.Handle]

	Elapsed   float64 // simulated seconds
	TickCount uint64

	Messages []string

	Status Status
	Winner arena.Handle
	Quit   bool
}

// NewGame creates the session state on top of an initialized terrain
func NewGame(settings Settings, layout world.Layout, terrain *world.Terrain) *Game {
	a := arena.New()
	return &Game{
		Settings:  settings,
		Grid:      terrain.Grid(),
		Layout:    layout,
		Terrain:   terrain,
		Arena:     a,
		Physics:   physics.NewWorld(terrain.Grid(), terrain),
		Bombs:     bombs.NewRegistry(a),
		Hazards:   hazards.NewStore(a, settings.HazardLifetime, settings.HazardPolicy),
		Players:   players.NewTracker(),
		Occupants: make(map[arena.Handle]mapset.Set[arena.Handle]),
		Messages:  make([]string, 0),
	}
}

// MaxMessages is the length of the message log
const MaxMessages = 5

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last MaxMessages
	if len(g.Messages) > MaxMessages {
		g.Messages = g.Messages[len(g.Messages)-MaxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Over reports whether the round has ended
func (g *Game) Over() bool {
	return g.Status != StatusRunning
}
