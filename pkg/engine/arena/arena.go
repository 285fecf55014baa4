// Package arena allocates entity handles tagged with a kind discriminant.
//
// Game packages keep their own component data keyed by Handle; the arena only
// answers "does this handle exist and what is it", which is all overlap
// handling needs to classify a pair without the packages owning each other.
package arena

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Handle identifies an entity for the lifetime of a session.
// Handles are never reused and grow with creation order.
type Handle uint32

// NoHandle is the zero handle; it never refers to a live entity
const NoHandle Handle = 0

// Kind is the entity discriminant
type Kind uint8

// Entity kinds
const (
	KindNone Kind = iota
	KindPlayer
	KindBomb
	KindHazard
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindBomb:
		return "Bomb"
	case KindHazard:
		return "Hazard"
	default:
		return "None"
	}
}

// Arena tracks live entities and their kinds.
type Arena struct {
	next   Handle
	kinds  map[Handle]Kind
	byKind map[Kind]mapset.Set[Handle]
}

// New creates an empty arena
func New() *Arena {
	return &Arena{
		kinds:  make(map[Handle]Kind),
		byKind: make(map[Kind]mapset.Set[Handle]),
	}
}

// Spawn allocates a new handle of the given kind
func (a *Arena) Spawn(k Kind) Handle {
	a.next++
	h := a.next
	a.kinds[h] = k

	set, ok := a.byKind[k]
	if !ok {
		set = mapset.New[Handle]()
		a.byKind[k] = set
	}
	set.Put(h)
	return h
}

// Despawn removes a handle. Unknown handles are ignored; returns whether the
// handle was live.
func (a *Arena) Despawn(h Handle) bool {
	k, ok := a.kinds[h]
	if !ok {
		return false
	}
	delete(a.kinds, h)
	if set, ok := a.byKind[k]; ok {
		set.Remove(h)
	}
	return true
}

// KindOf returns the kind of a live handle, or KindNone
func (a *Arena) KindOf(h Handle) Kind {
	return a.kinds[h]
}

// Is reports whether h is a live entity of kind k
func (a *Arena) Is(h Handle, k Kind) bool {
	return k != KindNone && a.KindOf(h) == k
}

// Alive reports whether h refers to a live entity
func (a *Arena) Alive(h Handle) bool {
	_, ok := a.kinds[h]
	return ok
}

// Count returns the number of live entities of a kind
func (a *Arena) Count(k Kind) int {
	set, ok := a.byKind[k]
	if !ok {
		return 0
	}
	return set.Size()
}

// Len returns the number of live entities
func (a *Arena) Len() int {
	return len(a.kinds)
}

// Handles returns the live handles of a kind in creation order
func (a *Arena) Handles(k Kind) []Handle {
	set, ok := a.byKind[k]
	if !ok {
		return nil
	}
	handles := make([]Handle, 0, set.Size())
	set.Each(func(h Handle) {
		handles = append(handles, h)
	})
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}

// Classify checks whether one side of the pair (x, y) is a live entity of
// kind k. It returns that entity first and the other side second.
func (a *Arena) Classify(x, y Handle, k Kind) (match, other Handle, ok bool) {
	if a.Is(x, k) {
		return x, y, true
	}
	if a.Is(y, k) {
		return y, x, true
	}
	return NoHandle, NoHandle, false
}

// ClassifyPair matches an unordered pair against two kinds and returns the
// handles in (first, second) order.
func (a *Arena) ClassifyPair(x, y Handle, first, second Kind) (Handle, Handle, bool) {
	match, other, ok := a.Classify(x, y, first)
	if !ok || !a.Is(other, second) {
		return NoHandle, NoHandle, false
	}
	return match, other, true
}
