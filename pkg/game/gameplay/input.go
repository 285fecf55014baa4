package gameplay

import (
	engineinput "abtestbed/pkg/engine/input"
	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/entities"
	"abtestbed/pkg/game/state"
)

// ApplyIntents turns the frame into player velocities and returns the players
// asking to plant, in join order. Dead players are ignored.
func ApplyIntents(g *state.Game, frame engineinput.Frame) []*entities.Player {
	if frame.Quit {
		g.Quit = true
	}

	var planting []*entities.Player
	for _, p := range g.Players.Players() {
		if !g.Players.AcceptsIntents(p.ID) {
			continue
		}
		if p.Slot < 0 || p.Slot >= engineinput.MaxPlayers {
			continue
		}
		intent := frame.Players[p.Slot]

		x, y := intent.Axis()
		g.Physics.SetVelocity(p.ID, world.V(float64(x)*p.Speed, float64(y)*p.Speed))

		if intent.Plant && p.CanPlant() {
			planting = append(planting, p)
		}
	}
	return planting
}
