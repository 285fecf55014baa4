package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "abtestbed/pkg/engine/input"
	"abtestbed/pkg/game/state"
)

// Tick advances the session by dt seconds. The passes run in a fixed order:
//
//  1. intents become velocities and plant requests
//  2. bombs are planted, then bodies move
//  3. expired fuses detonate
//  4. overlaps are resolved until quiet (arming, deaths, chain reactions)
//  5. expired hazards are removed
//
// and finally the round is checked for a winner. Once the round is decided
// passes 1 and 2 are skipped; bombs and hazards already in play still run
// out, and the result stays as decided.
func Tick(g *state.Game, frame engineinput.Frame, dt float64) {
	if g.Quit {
		return
	}
	g.TickCount++
	g.Elapsed += dt
	now := g.Elapsed

	if g.Over() {
		if frame.Quit {
			g.Quit = true
			return
		}
	} else {
		planting := ApplyIntents(g, frame)
		if g.Quit {
			return
		}

		for _, p := range planting {
			// Rejected plants are dropped; the bomb just does not appear.
			_, _ = PlantBomb(g, p, now)
		}
		g.Physics.Integrate(dt)
	}

	for _, det := range g.Bombs.Tick(now) {
		resolveDetonation(g, det, now)
	}

	resolveOverlaps(g, now)

	for _, id := range g.Hazards.Expired(now) {
		removeHazard(g, id)
	}

	if !g.Over() {
		checkRoundOver(g)
	}
}

// checkRoundOver ends the round when at most one player is left standing
func checkRoundOver(g *state.Game) {
	total := len(g.Players.Players())
	alive := g.Players.AliveCount()

	switch {
	case alive == 0 && total > 0:
		g.Status = state.StatusDraw
		logMessage(g, "%s", gotext.Get(msgDraw))
	case alive == 1 && total > 1:
		winner := g.Players.Survivors()[0]
		g.Status = state.StatusWon
		g.Winner = winner.ID
		logMessage(g, gotext.Get(msgPlayerWins), winner.Name)
	}
}
