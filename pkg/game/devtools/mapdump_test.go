package devtools

import (
	"bytes"
	"strings"
	"testing"

	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/entities"
	"abtestbed/pkg/game/state"
)

func TestCellSymbol_Priority(t *testing.T) {
	snap := &state.Snapshot{
		Cols:    4,
		Rows:    1,
		Terrain: world.MustParseLayout("#+.."),
		Players: []state.PlayerView{{ID: 1, Color: entities.ColorBlack, Cell: world.At(3, 0), Alive: true}},
		Bombs:   []state.BombView{{ID: 2, Cell: world.At(3, 0)}, {ID: 3, Cell: world.At(2, 0), Armed: true}},
		Hazards: []state.HazardView{{ID: 4, Cell: world.At(2, 0)}},
	}

	tests := []struct {
		cell world.Cell
		want rune
	}{
		{world.At(0, 0), '#'},
		{world.At(1, 0), '+'},
		{world.At(2, 0), 'O'},
		{world.At(3, 0), 'B'},
	}
	for _, tt := range tests {
		if got := cellSymbol(snap, tt.cell); got != tt.want {
			t.Errorf("cellSymbol(%v) = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestDumpSnapshot_Sections(t *testing.T) {
	snap := &state.Snapshot{
		Cols:    3,
		Rows:    2,
		Terrain: world.MustParseLayout("#+.", "..."),
		Hazards: []state.HazardView{{ID: 7, Cell: world.At(2, 1)}},
	}

	var buf bytes.Buffer
	DumpSnapshot(&buf, snap)
	out := buf.String()

	for _, want := range []string{
		"=== ARENA DUMP ===",
		"grid_cols: 3",
		"--- Terrain ---\n#+.\n...\n",
		"--- Arena ---\n#+.\n..*\n",
		"  id: 7 col: 2 row: 1",
		"  (none)",
		"=== END ARENA DUMP ===",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump is missing %q:\n%s", want, out)
		}
	}
}
