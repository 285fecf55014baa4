package state

import (
	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/entities"
)

// PlayerView is a read-only copy of a player for drawing
type PlayerView struct {
	ID       arena.Handle
	Slot     int
	Name     string
	Color    entities.PlayerColor
	Pos      world.Vec2
	Cell     world.Cell
	Capacity int
	Alive    bool
}

// BombView is a read-only copy of a bomb for drawing
type BombView struct {
	ID        arena.Handle
	Cell      world.Cell
	Pos       world.Vec2
	Color     entities.PlayerColor
	Armed     bool
	Remaining float64 // seconds until the fuse runs out
}

// HazardView is a read-only copy of a hazard for drawing
type HazardView struct {
	ID    arena.Handle
	Cell  world.Cell
	Pos   world.Vec2
	Color entities.PlayerColor
}

// Snapshot is everything a renderer needs for one frame. It shares no
// memory with the game.
type Snapshot struct {
	Cols, Rows int
	CellSize   world.Vec2
	Origin     world.Vec2 // center of cell (0,0)
	PlayerSize world.Vec2
	HazardSize world.Vec2

	Terrain world.Layout
	Bombs   []BombView
	Hazards []HazardView
	Players []PlayerView

	Messages []string
	Elapsed  float64
	Tick     uint64
	Status   Status
	Winner   string
}

// Snapshot copies the current frame out of the game
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Cols:       g.Grid.Cols(),
		Rows:       g.Grid.Rows(),
		CellSize:   g.Grid.CellSize(),
		Origin:     g.Grid.CenterOf(world.At(0, 0)),
		PlayerSize: g.Settings.PlayerSize,
		HazardSize: g.Settings.HazardSize,
		Terrain:    g.Terrain.Rows(),
		Messages:   append([]string(nil), g.Messages...),
		Elapsed:    g.Elapsed,
		Tick:       g.TickCount,
		Status:     g.Status,
	}

	for _, b := range g.Bombs.Bombs() {
		s.Bombs = append(s.Bombs, BombView{
			ID:        b.ID,
			Cell:      b.Cell,
			Pos:       g.Grid.CenterOf(b.Cell),
			Color:     b.Color,
			Armed:     b.Armed,
			Remaining: max(0, b.Deadline-g.Elapsed),
		})
	}

	for _, h := range g.Hazards.All() {
		s.Hazards = append(s.Hazards, HazardView{
			ID:    h.ID,
			Cell:  h.Cell,
			Pos:   g.Grid.CenterOf(h.Cell),
			Color: h.Color,
		})
	}

	for _, p := range g.Players.Players() {
		view := PlayerView{
			ID:       p.ID,
			Slot:     p.Slot,
			Name:     p.Name,
			Color:    p.Color,
			Capacity: p.Capacity,
			Alive:    p.Alive,
		}
		if pos, ok := g.Physics.Position(p.ID); ok {
			view.Pos = pos
			if c, err := g.Grid.CellOf(pos); err == nil {
				view.Cell = c
			}
		}
		s.Players = append(s.Players, view)
	}

	if g.Status == StatusWon {
		if p, ok := g.Players.Get(g.Winner); ok {
			s.Winner = p.Name
		}
	}
	return s
}

// CellAt converts a cell of the snapshot to its world center
func (s *Snapshot) CellAt(c world.Cell) world.Vec2 {
	return world.V(s.Origin.X+float64(c.Col)*s.CellSize.X, s.Origin.Y-float64(c.Row)*s.CellSize.Y)
}

// PlayerAt returns the living player standing on a cell, if any
func (s *Snapshot) PlayerAt(c world.Cell) (PlayerView, bool) {
	for _, p := range s.Players {
		if p.Alive && p.Cell == c {
			return p, true
		}
	}
	return PlayerView{}, false
}

// BombAt returns the bomb on a cell, if any
func (s *Snapshot) BombAt(c world.Cell) (BombView, bool) {
	for _, b := range s.Bombs {
		if b.Cell == c {
			return b, true
		}
	}
	return BombView{}, false
}

// HazardAt returns the most recent hazard on a cell, if any
func (s *Snapshot) HazardAt(c world.Cell) (HazardView, bool) {
	for i := len(s.Hazards) - 1; i >= 0; i-- {
		if s.Hazards[i].Cell == c {
			return s.Hazards[i], true
		}
	}
	return HazardView{}, false
}
