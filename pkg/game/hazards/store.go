// Package hazards keeps the explosion markers left behind by detonations.
package hazards

import (
	"fmt"
	"sort"
	"strings"

	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/bombs"
	"abtestbed/pkg/game/entities"
)

// Policy decides when a hazard goes away
type Policy int

const (
	// PolicyTimerOnly removes hazards only when their lifetime ends
	PolicyTimerOnly Policy = iota
	// PolicyCollisionTerminated also removes a hazard right after it first
	// hits a brick, a player or a bomb
	PolicyCollisionTerminated
)

// String returns the flag spelling of a policy
func (p Policy) String() string {
	switch p {
	case PolicyCollisionTerminated:
		return "collision"
	default:
		return "timer"
	}
}

// ParsePolicy reads a policy name
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "timer":
		return PolicyTimerOnly, nil
	case "collision":
		return PolicyCollisionTerminated, nil
	}
	return PolicyTimerOnly, fmt.Errorf("unknown hazard policy %q (want timer or collision)", s)
}

// Store owns the live hazards of a session
type Store struct {
	arena    *arena.Arena
	lifetime float64
	policy   Policy
	hazards  map[arena.Handle]*entities.Hazard
}

// NewStore creates an empty store; lifetime is in seconds
func NewStore(a *arena.Arena, lifetime float64, policy Policy) *Store {
	return &Store{
		arena:    a,
		lifetime: lifetime,
		policy:   policy,
		hazards:  make(map[arena.Handle]*entities.Hazard),
	}
}

// Spawn creates one hazard per cell for a detonation and returns them in
// cell order
func (s *Store) Spawn(det bombs.Detonation, cells []world.Cell, now float64) []*entities.Hazard {
	out := make([]*entities.Hazard, 0, len(cells))
	for _, c := range cells {
		id := s.arena.Spawn(arena.KindHazard)
		h := entities.NewHazard(id, c, det.Owner, det.Color, now+s.lifetime)
		s.hazards[id] = h
		out = append(out, h)
	}
	return out
}

// Expired returns the hazards whose lifetime ended at or before now, in
// creation order. They stay in the store until removed.
func (s *Store) Expired(now float64) []arena.Handle {
	var out []arena.Handle
	for id, h := range s.hazards {
		if h.IsExtinguished(now) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Remove deletes a hazard; unknown handles are a no-op returning false
func (s *Store) Remove(id arena.Handle) bool {
	if _, ok := s.hazards[id]; !ok {
		return false
	}
	delete(s.hazards, id)
	s.arena.Despawn(id)
	return true
}

// Get returns a live hazard
func (s *Store) Get(id arena.Handle) (*entities.Hazard, bool) {
	h, ok := s.hazards[id]
	return h, ok
}

// All returns copies of the live hazards in creation order
func (s *Store) All() []entities.Hazard {
	out := make([]entities.Hazard, 0, len(s.hazards))
	for _, h := range s.hazards {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of live hazards
func (s *Store) Len() int {
	return len(s.hazards)
}

// Policy returns the store's lifecycle policy
func (s *Store) Policy() Policy {
	return s.policy
}

// Terminates reports whether hazards end on their first effect
func (s *Store) Terminates() bool {
	return s.policy == PolicyCollisionTerminated
}
