package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"abtestbed/pkg/game/entities"
	"abtestbed/pkg/game/state"
)

// ErrNoRenderer is returned by Run when no renderer was selected
var ErrNoRenderer = errors.New("renderer: no renderer selected")

// HUD catalog keys shared by every front-end
const (
	hudTitle    = "HUD_TITLE"
	hudTime     = "HUD_TIME"
	hudPlayer   = "HUD_PLAYER"
	hudDead     = "HUD_DEAD"
	hudWinner   = "HUD_WINNER"
	hudDraw     = "HUD_DRAW"
	hudControls = "HUD_CONTROLS"
	hudRestart  = "HUD_RESTART"
)

// TitleLine is the heading shown above the arena
func TitleLine() string {
	return gotext.Get(hudTitle)
}

// TimeLine shows the elapsed simulation time and tick count
func TimeLine(snap *state.Snapshot) string {
	return fmt.Sprintf(gotext.Get(hudTime), snap.Elapsed, snap.Tick)
}

// PlayerLine describes one player's bomb stock, or that they are out
func PlayerLine(p state.PlayerView) string {
	info := entities.PlayerColors[p.Color]
	if !p.Alive {
		return fmt.Sprintf(gotext.Get(hudDead), p.Name)
	}
	return fmt.Sprintf(gotext.Get(hudPlayer), p.Name, info.Icon, p.Capacity)
}

// ResultLine reports the end of a round. It is empty while the round runs.
func ResultLine(snap *state.Snapshot) string {
	switch snap.Status {
	case state.StatusWon:
		return fmt.Sprintf(gotext.Get(hudWinner), snap.Winner)
	case state.StatusDraw:
		return gotext.Get(hudDraw)
	}
	return ""
}

// ControlsLine lists the key bindings
func ControlsLine() string {
	return gotext.Get(hudControls)
}

// RestartLine is shown under the result once the round is over
func RestartLine() string {
	return gotext.Get(hudRestart)
}

// StatusLines assembles the HUD shown below the arena
func StatusLines(snap *state.Snapshot) []string {
	lines := []string{TimeLine(snap)}

	parts := make([]string, 0, len(snap.Players))
	for _, p := range snap.Players {
		parts = append(parts, PlayerLine(p))
	}
	lines = append(lines, strings.Join(parts, "   "))

	if result := ResultLine(snap); result != "" {
		lines = append(lines, result, RestartLine())
	}
	return lines
}
