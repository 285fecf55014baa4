package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"

	"abtestbed/pkg/engine/clock"
	engineinput "abtestbed/pkg/engine/input"
	"abtestbed/pkg/engine/terminal"
	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/entities"
	"abtestbed/pkg/game/renderer"
	"abtestbed/pkg/game/state"
)

// Icons, two columns per cell so the board keeps its aspect ratio
const (
	IconFloor      = " ·"
	IconBlock      = "██"
	IconBrick      = "▒▒"
	IconBombArmed  = "@"
)

// ErrNotTerminal is returned by Run when stdin is not a terminal
var ErrNotTerminal = errors.New("tui: stdin is not a terminal, try -renderer ebiten or -dump")

// cellWidth is the number of terminal columns per grid cell
const cellWidth = 2

// hudLines is the space reserved around the board: title, blank, status
// (up to four lines), blank, controls, message pane (header + 5)
const hudLines = 15

// ANSI sequences used for redraws
const (
	seqHome       = "\x1b[H"
	seqClear      = "\x1b[2J"
	seqClearLine  = "\x1b[K"
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorFloor       color.Style
	colorBlock       color.Style
	colorBrick       color.Style
	colorBomb        color.Style
	colorBombArmed   color.Style
	colorHazard      color.Style
	colorPlayerWhite color.Style
	colorPlayerBlack color.Style
	colorSubtle      color.Style
	colorTitle       color.Style
	colorDenied      color.Style

	in   io.Reader
	out  io.Writer
	hold *engineinput.HoldTracker
}

// New creates a new TUI renderer reading stdin and drawing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{
		in:   os.Stdin,
		out:  os.Stdout,
		hold: engineinput.NewHoldTracker(engineinput.DefaultHoldWindow),
	}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() error {
	t.colorFloor = color.Style{color.FgGray}
	t.colorBlock = color.Style{color.FgWhite, color.BgGray}
	t.colorBrick = color.Style{color.FgYellow}
	t.colorBomb = color.Style{color.FgMagenta, color.OpBold}
	t.colorBombArmed = color.Style{color.FgRed, color.OpBold}
	t.colorHazard = color.Style{color.FgLightRed, color.BgRed}
	t.colorPlayerWhite = color.Style{color.FgWhite, color.BgBlack, color.OpBold}
	t.colorPlayerBlack = color.Style{color.FgBlack, color.BgWhite, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	return nil
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleBlock:
		return t.colorBlock.Sprint(text)
	case renderer.StyleBrick:
		return t.colorBrick.Sprint(text)
	case renderer.StyleBomb:
		return t.colorBomb.Sprint(text)
	case renderer.StyleBombArmed:
		return t.colorBombArmed.Sprint(text)
	case renderer.StyleHazard:
		return t.colorHazard.Sprint(text)
	case renderer.StylePlayerWhite:
		return t.colorPlayerWhite.Sprint(text)
	case renderer.StylePlayerBlack:
		return t.colorPlayerBlack.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// Run puts the terminal into raw mode and drives the simulation at its tick
// rate, redrawing after every batch of ticks.
func (t *TUIRenderer) Run(sim renderer.Simulation) error {
	if !terminal.IsTerminal() {
		return ErrNotTerminal
	}
	snap := sim.Snapshot()

	width, height := terminal.GetSize()
	if err := terminal.CheckFits(width, height, snap.Cols*cellWidth, snap.Rows, hudLines); err != nil {
		return err
	}

	restore, err := engineinput.EnableRawMode()
	if err != nil {
		return err
	}
	defer restore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys := make(chan engineinput.RawInput, 64)
	go engineinput.ReadKeys(ctx, t.in, keys)

	fixed := clock.NewFixedStep(sim.TickRate())
	ticker := time.NewTicker(fixed.Step())
	defer ticker.Stop()

	fmt.Fprint(t.out, seqClear+seqHideCursor)
	defer fmt.Fprint(t.out, seqShowCursor+"\r\n")

	t.draw(&snap)
	fixed.Due()
	for {
		select {
		case raw, ok := <-keys:
			if !ok {
				return nil
			}
			t.hold.Press(raw)
		case <-ticker.C:
			for range fixed.Due() {
				if !sim.Step(t.hold.Frame(time.Now())) {
					return nil
				}
			}
			snap = sim.Snapshot()
			t.draw(&snap)
		}
	}
}

func (t *TUIRenderer) draw(snap *state.Snapshot) {
	var b strings.Builder
	b.WriteString(seqHome)
	for _, line := range t.Frame(snap) {
		b.WriteString(line)
		b.WriteString(seqClearLine)
		// Raw mode does not translate \n.
		b.WriteString("\r\n")
	}
	fmt.Fprint(t.out, b.String())
}

// Frame renders a whole screen as lines: title, board, HUD and messages
func (t *TUIRenderer) Frame(snap *state.Snapshot) []string {
	lines := []string{t.StyleText(renderer.TitleLine(), renderer.StyleTitle), ""}
	lines = append(lines, t.Board(snap)...)
	lines = append(lines, "")

	lines = append(lines, renderer.StatusLines(snap)...)
	lines = append(lines, t.StyleText(renderer.ControlsLine(), renderer.StyleSubtle))

	lines = append(lines, t.StyleText(strings.Repeat("─", snap.Cols*cellWidth), renderer.StyleSubtle))
	for i := 0; i < state.MaxMessages; i++ {
		if i < len(snap.Messages) {
			lines = append(lines, snap.Messages[i])
		} else {
			lines = append(lines, "")
		}
	}
	return lines
}

// Board renders the arena, one string per row
func (t *TUIRenderer) Board(snap *state.Snapshot) []string {
	rows := make([]string, 0, snap.Rows)
	for row := 0; row < snap.Rows; row++ {
		var b strings.Builder
		for col := 0; col < snap.Cols; col++ {
			b.WriteString(t.renderCell(snap, world.At(col, row)))
		}
		rows = append(rows, b.String())
	}
	return rows
}

// renderCell picks what to show for a cell: players over bombs over hazards
// over terrain
func (t *TUIRenderer) renderCell(snap *state.Snapshot, c world.Cell) string {
	if p, ok := snap.PlayerAt(c); ok {
		info := entities.PlayerColors[p.Color]
		return t.StyleText(pad(info.Icon), playerStyle(p.Color))
	}

	if b, ok := snap.BombAt(c); ok {
		if b.Armed {
			return t.StyleText(pad(IconBombArmed), renderer.StyleBombArmed)
		}
		return t.StyleText(pad(entities.PlayerColors[b.Color].BombIcon), renderer.StyleBomb)
	}

	if h, ok := snap.HazardAt(c); ok {
		icon := entities.PlayerColors[h.Color].HazardIcon
		return t.StyleText(strings.Repeat(icon, cellWidth), renderer.StyleHazard)
	}

	switch snap.Terrain.At(c) {
	case world.Block:
		return t.StyleText(IconBlock, renderer.StyleBlock)
	case world.Brick:
		return t.StyleText(IconBrick, renderer.StyleBrick)
	default:
		return t.StyleText(IconFloor, renderer.StyleFloor)
	}
}

func playerStyle(c entities.PlayerColor) renderer.TextStyle {
	if c == entities.ColorBlack {
		return renderer.StylePlayerBlack
	}
	return renderer.StylePlayerWhite
}

func pad(icon string) string {
	return icon + strings.Repeat(" ", cellWidth-1)
}
