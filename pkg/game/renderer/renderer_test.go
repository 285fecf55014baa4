package renderer

import (
	"os"
	"testing"

	"github.com/leonelquinteros/gotext"

	"abtestbed/pkg/game/entities"
	"abtestbed/pkg/game/state"
)

func TestMain(m *testing.M) {
	gotext.Configure("../../../locales", "en_US", "default")
	os.Exit(m.Run())
}

func TestPlayerLine(t *testing.T) {
	alive := state.PlayerView{Name: "White", Color: entities.ColorWhite, Capacity: 1, Alive: true}
	if got, want := PlayerLine(alive), "White [W] bombs: 1"; got != want {
		t.Errorf("PlayerLine(alive) = %q, want %q", got, want)
	}

	dead := state.PlayerView{Name: "Black", Color: entities.ColorBlack}
	if got, want := PlayerLine(dead), "Black [out]"; got != want {
		t.Errorf("PlayerLine(dead) = %q, want %q", got, want)
	}
}

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name   string
		snap   state.Snapshot
		result string
	}{
		{"running", state.Snapshot{Status: state.StatusRunning}, ""},
		{"won", state.Snapshot{Status: state.StatusWon, Winner: "Black"}, "Black wins!"},
		{"draw", state.Snapshot{Status: state.StatusDraw}, "Draw!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := tt.snap
			snap.Elapsed = 1.5
			snap.Tick = 50
			lines := StatusLines(&snap)

			if got, want := lines[0], "Time 1.5s   Tick 50"; got != want {
				t.Errorf("time line = %q, want %q", got, want)
			}
			if tt.result == "" {
				if len(lines) != 2 {
					t.Errorf("running round has %d lines, want 2", len(lines))
				}
				return
			}
			if len(lines) != 4 || lines[2] != tt.result || lines[3] != RestartLine() {
				t.Errorf("lines = %q, want result %q then restart hint", lines, tt.result)
			}
		})
	}
}

func TestRun_NoRenderer(t *testing.T) {
	SetRenderer(nil)
	if err := Run(nil); err != ErrNoRenderer {
		t.Errorf("Run without renderer = %v, want ErrNoRenderer", err)
	}
}
