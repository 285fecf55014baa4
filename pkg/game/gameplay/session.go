package gameplay

import (
	"log"

	engineinput "abtestbed/pkg/engine/input"
	"abtestbed/pkg/game/config"
	"abtestbed/pkg/game/state"
)

// Session drives one game at the configured tick rate and handles resets.
// It is what the front-ends run.
type Session struct {
	cfg  *config.Config
	game *state.Game
	dt   float64
}

// NewSession builds the first round from the configuration
func NewSession(cfg *config.Config) (*Session, error) {
	g, err := BuildGame(cfg)
	if err != nil {
		return nil, err
	}
	return &Session{cfg: cfg, game: g, dt: cfg.Step()}, nil
}

// Step runs one tick with the given input. It returns false once the player
// asked to quit.
func (s *Session) Step(frame engineinput.Frame) bool {
	if frame.Reset {
		next, err := ResetGame(s.cfg, s.game)
		if err != nil {
			// The running round is left untouched.
			log.Printf("reset failed: %v", err)
			return true
		}
		s.game = next
		return true
	}
	Tick(s.game, frame, s.dt)
	return !s.game.Quit
}

// Snapshot returns the current frame for drawing
func (s *Session) Snapshot() state.Snapshot {
	return s.game.Snapshot()
}

// TickRate returns the ticks per second the session expects
func (s *Session) TickRate() int {
	return s.cfg.TPS
}

// Game exposes the running round
func (s *Session) Game() *state.Game {
	return s.game
}

// Close ends the running round
func (s *Session) Close() {
	EndGame(s.game)
}
