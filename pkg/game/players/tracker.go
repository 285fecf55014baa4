// Package players keeps bomb capacity and life state for each contestant.
package players

import (
	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/game/entities"
)

// Tracker owns the players of one session
type Tracker struct {
	players map[arena.Handle]*entities.Player
	order   []arena.Handle
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{players: make(map[arena.Handle]*entities.Player)}
}

// Add registers a player; join order is kept
func (t *Tracker) Add(p *entities.Player) {
	if _, ok := t.players[p.ID]; !ok {
		t.order = append(t.order, p.ID)
	}
	t.players[p.ID] = p
}

// Get returns a player by handle
func (t *Tracker) Get(id arena.Handle) (*entities.Player, bool) {
	p, ok := t.players[id]
	return p, ok
}

// BySlot returns the player controlled from an input slot
func (t *Tracker) BySlot(slot int) (*entities.Player, bool) {
	for _, id := range t.order {
		if p := t.players[id]; p.Slot == slot {
			return p, true
		}
	}
	return nil, false
}

// Capacity returns how many bombs a player may still plant
func (t *Tracker) Capacity(id arena.Handle) int {
	if p, ok := t.players[id]; ok {
		return p.Capacity
	}
	return 0
}

// OnPlant spends one bomb. Capacity never drops below zero.
func (t *Tracker) OnPlant(id arena.Handle) {
	p, ok := t.players[id]
	if !ok || p.Capacity == 0 {
		return
	}
	p.Capacity--
}

// OnOwnBombResolved returns one bomb to its owner, up to the maximum.
// Owners that died keep being credited so the books balance.
func (t *Tracker) OnOwnBombResolved(id arena.Handle) {
	p, ok := t.players[id]
	if !ok || p.Capacity >= p.MaxCapacity {
		return
	}
	p.Capacity++
}

// OnHazardContact kills a player and reports whether it was alive
func (t *Tracker) OnHazardContact(id arena.Handle) bool {
	p, ok := t.players[id]
	if !ok || !p.Alive {
		return false
	}
	p.Alive = false
	return true
}

// Alive reports whether a player is alive
func (t *Tracker) Alive(id arena.Handle) bool {
	p, ok := t.players[id]
	return ok && p.Alive
}

// AcceptsIntents reports whether input for the player should be applied
func (t *Tracker) AcceptsIntents(id arena.Handle) bool {
	return t.Alive(id)
}

// AliveCount returns the number of living players
func (t *Tracker) AliveCount() int {
	n := 0
	for _, p := range t.players {
		if p.Alive {
			n++
		}
	}
	return n
}

// Survivors returns the living players in join order
func (t *Tracker) Survivors() []*entities.Player {
	var out []*entities.Player
	for _, id := range t.order {
		if p := t.players[id]; p.Alive {
			out = append(out, p)
		}
	}
	return out
}

// Players returns all players in join order
func (t *Tracker) Players() []*entities.Player {
	out := make([]*entities.Player, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.players[id])
	}
	return out
}
