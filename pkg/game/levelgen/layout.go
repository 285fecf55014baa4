// Package levelgen builds the static terrain layouts a session starts from.
package levelgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"

	"abtestbed/pkg/engine/world"
)

// DefaultSpawns are the start cells of player 1 and player 2
var DefaultSpawns = []world.Cell{world.At(0, 0), world.At(2, 2)}

// isPillar reports whether a cell holds one of the fixed blocks laid out on
// every odd column of every odd row
func isPillar(c world.Cell) bool {
	return c.Col%2 == 1 && c.Row%2 == 1
}

// spawnPocket returns the cells kept free around the spawns: the box spanned
// by all spawns plus the direct neighbours of each one
func spawnPocket(spawns []world.Cell) mapset.Set[world.Cell] {
	pocket := mapset.New[world.Cell]()
	if len(spawns) == 0 {
		return pocket
	}

	minC, maxC := spawns[0], spawns[0]
	for _, s := range spawns {
		minC.Col, maxC.Col = min(minC.Col, s.Col), max(maxC.Col, s.Col)
		minC.Row, maxC.Row = min(minC.Row, s.Row), max(maxC.Row, s.Row)
	}
	for row := minC.Row; row <= maxC.Row; row++ {
		for col := minC.Col; col <= maxC.Col; col++ {
			pocket.Put(world.At(col, row))
		}
	}
	for _, s := range spawns {
		pocket.Put(s)
		for _, n := range s.Neighbors() {
			pocket.Put(n)
		}
	}
	return pocket
}

// build fills a layout: pillars first, then the spawn pocket stays empty, and
// every other cell asks brick for its material
func build(cols, rows int, spawns []world.Cell, brick func(c world.Cell) bool) world.Layout {
	pocket := spawnPocket(spawns)
	layout := make(world.Layout, rows)
	for row := range layout {
		layout[row] = make([]world.Material, cols)
		for col := range layout[row] {
			c := world.At(col, row)
			switch {
			case isPillar(c):
				layout[row][col] = world.Block
			case pocket.Has(c):
				layout[row][col] = world.Empty
			case brick(c):
				layout[row][col] = world.Brick
			default:
				layout[row][col] = world.Empty
			}
		}
	}
	return layout
}

// Classic returns the classic arena: pillars on odd/odd cells, bricks on
// everything else except the spawn pocket.
func Classic(cols, rows int, spawns []world.Cell) world.Layout {
	return build(cols, rows, spawns, func(world.Cell) bool { return true })
}

// Random scatters bricks with the given density. The same seed always
// produces the same layout.
func Random(cols, rows int, spawns []world.Cell, density float64, seed int64) world.Layout {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	return build(cols, rows, spawns, func(world.Cell) bool {
		return rng.Float64() < density
	})
}

// Generate builds the named layout
func Generate(name string, cols, rows int, spawns []world.Cell, density float64, seed int64) (world.Layout, error) {
	for _, s := range spawns {
		if s.Col < 0 || s.Col >= cols || s.Row < 0 || s.Row >= rows || isPillar(s) {
			return nil, fmt.Errorf("spawn %v is not a free cell of a %dx%d arena", s, cols, rows)
		}
	}
	switch name {
	case "classic":
		return Classic(cols, rows, spawns), nil
	case "random":
		return Random(cols, rows, spawns, density, seed), nil
	}
	return nil, fmt.Errorf("unknown layout %q", name)
}
