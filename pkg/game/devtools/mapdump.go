// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"

	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/entities"
	"abtestbed/pkg/game/state"
)

// cellSymbol returns the single-character symbol for a cell: players over
// bombs over hazards over terrain.
func cellSymbol(snap *state.Snapshot, c world.Cell) rune {
	if p, ok := snap.PlayerAt(c); ok {
		return []rune(entities.PlayerColors[p.Color].Icon)[0]
	}
	if b, ok := snap.BombAt(c); ok {
		if b.Armed {
			return 'O'
		}
		return 'o'
	}
	if _, ok := snap.HazardAt(c); ok {
		return '*'
	}
	return snap.Terrain.At(c).Symbol()
}

// writeMapGrid writes the arena, one row per line
func writeMapGrid(w io.Writer, snap *state.Snapshot) {
	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			fmt.Fprintf(w, "%c", cellSymbol(snap, world.At(col, row)))
		}
		fmt.Fprintln(w)
	}
}

// DumpSnapshot writes a full debug dump: metadata, legend, the terrain alone,
// the arena with entities, and entity lists. Format is line-oriented
// key: value so it diffs well.
func DumpSnapshot(w io.Writer, snap *state.Snapshot) {
	fmt.Fprintln(w, "=== ARENA DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_cols: %d\n", snap.Cols)
	fmt.Fprintf(w, "grid_rows: %d\n", snap.Rows)
	fmt.Fprintf(w, "cell_size: %gx%g\n", snap.CellSize.X, snap.CellSize.Y)
	fmt.Fprintf(w, "coordinate_system: col,row (0-based, row 0 at the top)\n")
	fmt.Fprintf(w, "tick: %d\n", snap.Tick)
	fmt.Fprintf(w, "elapsed: %.3f\n", snap.Elapsed)
	fmt.Fprintf(w, "status: %s\n", snap.Status)
	if snap.Winner != "" {
		fmt.Fprintf(w, "winner: %q\n", snap.Winner)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = empty  # = block  + = brick  o = bomb  O = armed bomb  * = hazard  W/B = player")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Terrain ---")
	for _, line := range snap.Terrain.Strings() {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Arena ---")
	writeMapGrid(w, snap)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Players:")
	for _, p := range snap.Players {
		fmt.Fprintf(w, "  id: %d slot: %d name: %q col: %d row: %d x: %.2f y: %.2f capacity: %d alive: %v\n",
			p.ID, p.Slot, p.Name, p.Cell.Col, p.Cell.Row, p.Pos.X, p.Pos.Y, p.Capacity, p.Alive)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Bombs:")
	for _, b := range snap.Bombs {
		fmt.Fprintf(w, "  id: %d col: %d row: %d color: %s armed: %v remaining: %.3f\n",
			b.ID, b.Cell.Col, b.Cell.Row, b.Color, b.Armed, b.Remaining)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Hazards:")
	for _, h := range snap.Hazards {
		fmt.Fprintf(w, "  id: %d col: %d row: %d color: %s\n", h.ID, h.Cell.Col, h.Cell.Row, h.Color)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Messages:")
	if len(snap.Messages) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, msg := range snap.Messages {
		fmt.Fprintf(w, "  %s\n", msg)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END ARENA DUMP ===")
}
