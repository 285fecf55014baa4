package levelgen

import (
	"testing"

	"abtestbed/pkg/engine/world"
)

// classicRows is the reference 15x11 arena
var classicRows = []string{
	"...++++++++++++",
	".#.#+#+#+#+#+#+",
	"....+++++++++++",
	"+#.#+#+#+#+#+#+",
	"+++++++++++++++",
	"+#+#+#+#+#+#+#+",
	"+++++++++++++++",
	"+#+#+#+#+#+#+#+",
	"+++++++++++++++",
	"+#+#+#+#+#+#+#+",
	"+++++++++++++++",
}

func TestClassic_MatchesReferenceArena(t *testing.T) {
	got := Classic(15, 11, DefaultSpawns).Strings()
	for row, want := range classicRows {
		if got[row] != want {
			t.Errorf("row %d = %q, want %q", row, got[row], want)
		}
	}
}

func TestRandom_IsDeterministicPerSeed(t *testing.T) {
	a := Random(15, 11, DefaultSpawns, 0.5, 7).Strings()
	b := Random(15, 11, DefaultSpawns, 0.5, 7).Strings()
	for row := range a {
		if a[row] != b[row] {
			t.Fatalf("row %d differs for the same seed: %q vs %q", row, a[row], b[row])
		}
	}
}

func TestRandom_KeepsPillarsAndSpawnsClear(t *testing.T) {
	layout := Random(9, 7, DefaultSpawns, 1.0, 3)
	for row, materials := range layout {
		for col, m := range materials {
			c := world.At(col, row)
			if isPillar(c) && m != world.Block {
				t.Errorf("pillar %v = %v, want Block", c, m)
			}
		}
	}
	for _, s := range DefaultSpawns {
		cells := append([]world.Cell{s}, s.Neighbors()...)
		for _, c := range cells {
			if c.Col < 0 || c.Row < 0 || isPillar(c) {
				continue
			}
			if m := layout[c.Row][c.Col]; m != world.Empty {
				t.Errorf("cell %v next to spawn %v = %v, want Empty", c, s, m)
			}
		}
	}
}

func TestGenerate(t *testing.T) {
	if _, err := Generate("classic", 15, 11, DefaultSpawns, 0, 0); err != nil {
		t.Errorf("Generate(classic) error: %v", err)
	}
	if _, err := Generate("maze", 15, 11, DefaultSpawns, 0, 0); err == nil {
		t.Error("Generate(maze) error = nil, want error")
	}
	if _, err := Generate("classic", 15, 11, []world.Cell{world.At(1, 1)}, 0, 0); err == nil {
		t.Error("Generate with a spawn on a pillar error = nil, want error")
	}
}
