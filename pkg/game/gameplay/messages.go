package gameplay

import (
	"fmt"

	"abtestbed/pkg/game/state"
)

// Message catalog keys
const (
	msgSessionStarted = "SESSION_STARTED"
	msgRoundReset     = "ROUND_RESET"
	msgPlayerDied     = "PLAYER_DIED"
	msgChainReaction  = "CHAIN_REACTION"
	msgBricksCleared  = "BRICKS_CLEARED"
	msgPlayerWins     = "PLAYER_WINS"
	msgDraw           = "DRAW"
)

// logMessage formats a message and adds it to the game's message log.
// Callers pass catalog text, e.g. logMessage(g, gotext.Get(msgPlayerDied), name).
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(fmt.Sprintf(msg, a...))
}
