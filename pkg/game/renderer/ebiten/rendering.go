package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/entities"
	"abtestbed/pkg/game/renderer"
	"abtestbed/pkg/game/state"
)

// Draw renders the arena and HUD to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := e.currentSnapshot()
	if !snap.valid {
		return
	}
	s := &snap.state

	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			e.drawTerrain(screen, s, world.At(col, row))
		}
	}
	for _, h := range s.Hazards {
		e.drawHazard(screen, s, h)
	}
	for _, b := range s.Bombs {
		e.drawBomb(screen, s, b)
	}
	for _, p := range s.Players {
		e.drawPlayer(screen, s, p)
	}

	if e.face != nil {
		e.drawHUD(screen, s)
	}
}

// toScreen converts a world position into window pixels. World y grows up,
// screen y grows down.
func (e *EbitenRenderer) toScreen(s *state.Snapshot, pos world.Vec2) (float32, float32) {
	left := s.Origin.X - s.CellSize.X/2
	top := s.Origin.Y + s.CellSize.Y/2
	return float32((pos.X - left) * e.scale), float32((top - pos.Y) * e.scale)
}

// boxRect returns the top-left corner and size of a box centered on pos
func (e *EbitenRenderer) boxRect(s *state.Snapshot, pos, size world.Vec2) (x, y, w, h float32) {
	cx, cy := e.toScreen(s, pos)
	w = float32(size.X * e.scale)
	h = float32(size.Y * e.scale)
	return cx - w/2, cy - h/2, w, h
}

func (e *EbitenRenderer) drawTerrain(screen *ebiten.Image, s *state.Snapshot, c world.Cell) {
	x, y, w, h := e.boxRect(s, s.CellAt(c), s.CellSize)

	switch s.Terrain.At(c) {
	case world.Block:
		vector.DrawFilledRect(screen, x, y, w, h, colorBlockEdge, false)
		vector.DrawFilledRect(screen, x+2, y+2, w-4, h-4, colorBlock, false)
	case world.Brick:
		vector.DrawFilledRect(screen, x, y, w, h, colorBrick, false)
		// Two courses of bricks
		vector.DrawFilledRect(screen, x, y+h/2-1, w, 2, colorBrickMortar, false)
		vector.DrawFilledRect(screen, x+w/2-1, y, 2, h/2, colorBrickMortar, false)
		vector.DrawFilledRect(screen, x+w/4-1, y+h/2, 2, h/2, colorBrickMortar, false)
	default:
		vector.DrawFilledRect(screen, x, y, w, h, colorFloor, false)
	}
}

func (e *EbitenRenderer) drawHazard(screen *ebiten.Image, s *state.Snapshot, h state.HazardView) {
	x, y, w, hh := e.boxRect(s, h.Pos, s.HazardSize)
	vector.DrawFilledRect(screen, x, y, w, hh, colorHazard, true)
	vector.DrawFilledRect(screen, x+w/4, y+hh/4, w/2, hh/2, colorHazardCore, true)
}

func (e *EbitenRenderer) drawBomb(screen *ebiten.Image, s *state.Snapshot, b state.BombView) {
	cx, cy := e.toScreen(s, b.Pos)
	radius := float32(min(s.CellSize.X, s.CellSize.Y) * e.scale * 0.35)

	vector.DrawFilledCircle(screen, cx, cy, radius, entities.PlayerColors[b.Color].RGBA, true)
	if b.Armed {
		vector.StrokeCircle(screen, cx, cy, radius, 2, colorBombArmed, true)
	}
}

func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image, s *state.Snapshot, p state.PlayerView) {
	if !p.Alive {
		return
	}
	x, y, w, h := e.boxRect(s, p.Pos, s.PlayerSize)
	vector.DrawFilledRect(screen, x, y, w, h, entities.PlayerColors[p.Color].RGBA, true)
	vector.StrokeRect(screen, x, y, w, h, 1, colorBackground, true)
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, s *state.Snapshot) {
	arenaBottom := float32(float64(s.Rows) * s.CellSize.Y * e.scale)
	vector.DrawFilledRect(screen, 0, arenaBottom, float32(e.windowWidth), float32(e.windowHeight)-arenaBottom, colorPanel, false)

	result := renderer.ResultLine(s)
	y := float64(arenaBottom) + hudPadding
	for _, line := range renderer.StatusLines(s) {
		clr := colorText
		if result != "" && line == result {
			clr = colorResult
		}
		e.drawText(screen, line, hudPadding, y, clr)
		y += hudLineHeight
	}

	for _, msg := range s.Messages {
		e.drawText(screen, msg, hudPadding, y, colorSubtle)
		y += hudLineHeight
	}
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, e.face, op)
}
