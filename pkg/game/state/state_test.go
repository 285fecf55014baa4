package state

import (
	"fmt"
	"testing"

	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/physics"
	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/bombs"
	"abtestbed/pkg/game/entities"
	"abtestbed/pkg/game/hazards"
)

func makeGame(t *testing.T) *Game {
	t.Helper()
	layout := world.MustParseLayout(
		"...",
		".#+",
	)
	grid := world.NewGrid(world.Geometry{Cols: 3, Rows: 2, CellWidth: 40, CellHeight: 36})
	terrain, err := world.NewTerrain(grid, layout)
	if err != nil {
		t.Fatalf("NewTerrain: %v", err)
	}
	return NewGame(Settings{HazardLifetime: 4, HazardPolicy: hazards.PolicyTimerOnly}, layout, terrain)
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := makeGame(t)
	for i := 0; i < 7; i++ {
		g.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(g.Messages) != 5 || g.Messages[0] != "m2" || g.Messages[4] != "m6" {
		t.Errorf("Messages = %v, want m2..m6", g.Messages)
	}
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("Messages after ClearMessages = %v", g.Messages)
	}
}

func TestSnapshot_CopiesState(t *testing.T) {
	g := makeGame(t)

	id := g.Arena.Spawn(arena.KindPlayer)
	p := entities.NewPlayer(id, 0, entities.ColorWhite, world.At(0, 0), entities.Loadout{Capacity: 1, BlastRadius: 1, Fuse: 2})
	g.Players.Add(p)
	g.Physics.Spawn(physics.Body{Handle: id, Kind: arena.KindPlayer, Pos: g.Grid.CenterOf(world.At(0, 0)), Half: world.V(13.5, 13.5)})

	bomb, err := g.Bombs.Plant(bombs.PlantRequest{Owner: id, Cell: world.At(2, 0), Radius: 1, Fuse: 2, Capacity: 1}, 0)
	if err != nil {
		t.Fatalf("Plant: %v", err)
	}
	g.Elapsed = 0.5
	g.AddMessage("hello")

	s := g.Snapshot()
	if s.Cols != 3 || s.Rows != 2 {
		t.Errorf("Snapshot dims = %dx%d, want 3x2", s.Cols, s.Rows)
	}
	if len(s.Bombs) != 1 || s.Bombs[0].ID != bomb || s.Bombs[0].Remaining != 1.5 {
		t.Errorf("Snapshot bombs = %+v", s.Bombs)
	}
	if pv, ok := s.PlayerAt(world.At(0, 0)); !ok || pv.ID != id {
		t.Errorf("PlayerAt((0,0)) = %+v, %v", pv, ok)
	}
	if got := s.CellAt(world.At(2, 1)); got != g.Grid.CenterOf(world.At(2, 1)) {
		t.Errorf("CellAt((2,1)) = %v, want %v", got, g.Grid.CenterOf(world.At(2, 1)))
	}

	// Mutating the snapshot must not reach the game.
	s.Terrain[1][2] = world.Empty
	s.Messages[0] = "changed"
	if m, _ := g.Terrain.MaterialAt(world.At(2, 1)); m != world.Brick {
		t.Errorf("terrain changed through snapshot: %v", m)
	}
	if g.Messages[0] != "hello" {
		t.Errorf("messages changed through snapshot: %v", g.Messages)
	}
}
