package gameplay

import (
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/physics"
	"abtestbed/pkg/game/bombs"
	"abtestbed/pkg/game/explosion"
	"abtestbed/pkg/game/state"
)

// resolveDetonation applies one detonation: the bomb leaves the world, its
// owner gets the bomb back and one hazard is spawned per affected cell.
// Bricks under a new hazard are destroyed right away.
func resolveDetonation(g *state.Game, det bombs.Detonation, now float64) {
	g.Physics.Despawn(det.Bomb)
	delete(g.Occupants, det.Bomb)
	g.Players.OnOwnBombResolved(det.Owner)

	cells := explosion.Propagate(det.Cell, det.Radius, g.Terrain)
	bricks := 0
	for _, h := range g.Hazards.Spawn(det, cells, now) {
		g.Physics.Spawn(physics.Body{
			Handle: h.ID,
			Kind:   arena.KindHazard,
			Pos:    g.Grid.CenterOf(h.Cell),
			Half:   g.Settings.HazardSize.Half(),
		})
		if g.Terrain.DestroyBrick(h.Cell) {
			bricks++
			if g.Hazards.Terminates() {
				removeHazard(g, h.ID)
			}
		}
	}

	if det.Chained {
		if p, ok := g.Players.Get(det.Owner); ok {
			logMessage(g, gotext.Get(msgChainReaction), p.Name)
		}
	}
	if bricks > 1 {
		logMessage(g, gotext.Get(msgBricksCleared), bricks)
	}
}

// resolveOverlaps handles overlap events until a detection pass reports
// nothing new. Only spawns can start new overlaps here, and every bomb spawns
// hazards once, so the loop ends. Under a collision policy a hazard applies
// every effect it has in a batch before it is removed.
func resolveOverlaps(g *state.Game, now float64) {
	for {
		events := g.Physics.DetectOverlaps()
		if len(events) == 0 {
			return
		}
		spent := mapset.New[arena.Handle]()
		for _, ev := range events {
			if hazard, ok := handleOverlap(g, ev, now); ok {
				spent.Put(hazard)
			}
		}
		if g.Hazards.Terminates() {
			spent.Each(func(h arena.Handle) {
				removeHazard(g, h)
			})
		}
	}
}

// handleOverlap applies one start/stop notification and reports the hazard
// that took effect, if any. Pairs involving an entity removed earlier in the
// same pass are ignored, as are kinds with no interaction (hazard-hazard,
// player-player, bomb-bomb).
func handleOverlap(g *state.Game, ev physics.Event, now float64) (arena.Handle, bool) {
	if !g.Arena.Alive(ev.A) || !g.Arena.Alive(ev.B) {
		return arena.NoHandle, false
	}

	if bomb, player, ok := g.Arena.ClassifyPair(ev.A, ev.B, arena.KindBomb, arena.KindPlayer); ok {
		if ev.Started {
			enterBomb(g, bomb, player)
		} else {
			leaveBomb(g, bomb, player)
		}
		return arena.NoHandle, false
	}

	if !ev.Started {
		return arena.NoHandle, false
	}

	if hazard, player, ok := g.Arena.ClassifyPair(ev.A, ev.B, arena.KindHazard, arena.KindPlayer); ok {
		killPlayer(g, player)
		return hazard, true
	}

	if hazard, bomb, ok := g.Arena.ClassifyPair(ev.A, ev.B, arena.KindHazard, arena.KindBomb); ok {
		if det, ok := g.Bombs.ForceDetonate(bomb, now); ok {
			resolveDetonation(g, det, now)
		}
		return hazard, true
	}
	return arena.NoHandle, false
}

func enterBomb(g *state.Game, bomb, player arena.Handle) {
	if occupants, ok := g.Occupants[bomb]; ok {
		occupants.Put(player)
	}
}

// leaveBomb records a player stepping off a bomb; a stop for a player that
// was never recorded is a no-op
func leaveBomb(g *state.Game, bomb, player arena.Handle) {
	occupants, ok := g.Occupants[bomb]
	if !ok || !occupants.Has(player) {
		return
	}
	occupants.Remove(player)
	if occupants.Size() == 0 {
		armBomb(g, bomb)
	}
}

// killPlayer removes a player hit by a hazard from the simulation
func killPlayer(g *state.Game, player arena.Handle) {
	if !g.Players.OnHazardContact(player) {
		return
	}
	g.Physics.Despawn(player)
	g.Arena.Despawn(player)

	// Removal drops the player's overlaps silently, so the bombs it stood on
	// have to be told here.
	for bomb, occupants := range g.Occupants {
		if occupants.Has(player) {
			leaveBomb(g, bomb, player)
		}
	}

	if p, ok := g.Players.Get(player); ok {
		logMessage(g, gotext.Get(msgPlayerDied), p.Name)
	}
}

func removeHazard(g *state.Game, id arena.Handle) {
	if g.Hazards.Remove(id) {
		g.Physics.Despawn(id)
	}
}
