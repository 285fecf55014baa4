// Package gameplay runs the arena: intents, bombs, explosions and the round.
package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/physics"
	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/config"
	"abtestbed/pkg/game/entities"
	"abtestbed/pkg/game/levelgen"
	"abtestbed/pkg/game/state"
)

// Body sizes of the reference arena, relative to its 40x36 cell
const (
	refCellWidth  = 40.0
	refCellHeight = 36.0
	refPlayerSize = 27.0
	refHazardSize = 28.0
)

// playerColors assigns colors by slot
var playerColors = []entities.PlayerColor{entities.ColorWhite, entities.ColorBlack}

// SettingsFor derives the per-session rules from the configuration
func SettingsFor(cfg *config.Config) state.Settings {
	sx := cfg.CellWidth / refCellWidth
	sy := cfg.CellHeight / refCellHeight
	return state.Settings{
		HazardLifetime: cfg.HazardLifetime,
		HazardPolicy:   cfg.Policy(),
		PlayerSize:     world.V(refPlayerSize*sx, refPlayerSize*sy),
		BombSize:       world.V(cfg.CellWidth, cfg.CellHeight),
		HazardSize:     world.V(refHazardSize*sx, refHazardSize*sy),
	}
}

// GenerateLayout builds the terrain layout named in the configuration
func GenerateLayout(cfg *config.Config) (world.Layout, error) {
	return levelgen.Generate(cfg.Layout, cfg.Cols, cfg.Rows, levelgen.DefaultSpawns, cfg.BrickDensity, cfg.Seed)
}

// BuildGame creates a new session from the configuration
func BuildGame(cfg *config.Config) (*state.Game, error) {
	layout, err := GenerateLayout(cfg)
	if err != nil {
		return nil, err
	}
	return BuildGameFromLayout(cfg, layout, levelgen.DefaultSpawns)
}

// BuildGameFromLayout creates a new session on a given layout with one player
// per spawn cell
func BuildGameFromLayout(cfg *config.Config, layout world.Layout, spawns []world.Cell) (*state.Game, error) {
	grid := world.NewGrid(cfg.Geometry())
	terrain, err := world.NewTerrain(grid, layout)
	if err != nil {
		return nil, err
	}

	g := state.NewGame(SettingsFor(cfg), layout, terrain)
	for slot, spawn := range spawns {
		if slot >= len(playerColors) {
			break
		}
		SpawnPlayer(g, slot, playerColors[slot], spawn, cfg.Loadout())
	}

	g.ClearMessages()
	names := make([]any, 0, 2)
	for _, p := range g.Players.Players() {
		names = append(names, p.Name)
	}
	if len(names) == 2 {
		logMessage(g, gotext.Get(msgSessionStarted), names...)
	}
	return g, nil
}

// SpawnPlayer adds a living player standing on the center of a cell
func SpawnPlayer(g *state.Game, slot int, c entities.PlayerColor, spawn world.Cell, loadout entities.Loadout) *entities.Player {
	id := g.Arena.Spawn(arena.KindPlayer)
	p := entities.NewPlayer(id, slot, c, spawn, loadout)
	g.Players.Add(p)
	g.Physics.Spawn(physics.Body{
		Handle: id,
		Kind:   arena.KindPlayer,
		Pos:    g.Grid.CenterOf(spawn),
		Half:   g.Settings.PlayerSize.Half(),
	})
	return p
}

// ResetGame starts a fresh round on the layout the given session started from.
// The old round is ended only once the new one is built.
func ResetGame(cfg *config.Config, g *state.Game) (*state.Game, error) {
	spawns := make([]world.Cell, 0, 2)
	for _, p := range g.Players.Players() {
		spawns = append(spawns, p.Spawn)
	}

	next, err := BuildGameFromLayout(cfg, g.Layout, spawns)
	if err != nil {
		return nil, err
	}
	EndGame(g)
	logMessage(next, "%s", gotext.Get(msgRoundReset))
	return next, nil
}

// EndGame tears a session down: every entity leaves the physics world and
// the arena, and the session stops accepting ticks.
func EndGame(g *state.Game) {
	for _, kind := range []arena.Kind{arena.KindPlayer, arena.KindBomb, arena.KindHazard} {
		for _, h := range g.Arena.Handles(kind) {
			g.Physics.Despawn(h)
			g.Arena.Despawn(h)
		}
	}
	for bomb := range g.Occupants {
		delete(g.Occupants, bomb)
	}
	g.Quit = true
}
