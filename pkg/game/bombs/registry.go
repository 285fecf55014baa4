// Package bombs tracks planted bombs, the cells they hold and their fuses.
package bombs

import (
	"sort"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"abtestbed/pkg/engine/arena"
	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/entities"
)

// PlantRequest describes a bomb a player wants to plant
type PlantRequest struct {
	Owner    arena.Handle
	Color    entities.PlayerColor
	Cell     world.Cell
	Radius   int
	Fuse     float64 // seconds
	Capacity int     // owner's bombs left, checked before occupancy
}

// Detonation is emitted once for every bomb that goes off
type Detonation struct {
	Bomb    arena.Handle
	Owner   arena.Handle
	Color   entities.PlayerColor
	Cell    world.Cell
	Radius  int
	Chained bool // forced by a hazard rather than the fuse
	At      float64
}

type fuse struct {
	deadline float64
	seq      uint64
	bomb     arena.Handle
}

// Registry owns every live bomb and the planted-cell set.
// The planted set always equals the cells of the bombs in the registry.
type Registry struct {
	arena   *arena.Arena
	bombs   map[arena.Handle]*entities.Bomb
	seqs    map[arena.Handle]uint64
	byCell  map[world.Cell]arena.Handle
	planted mapset.Set[world.Cell]
	fuses   *heap.Heap[fuse]
	nextSeq uint64
}

// NewRegistry creates an empty registry allocating handles from a
func NewRegistry(a *arena.Arena) *Registry {
	return &Registry{
		arena:   a,
		bombs:   make(map[arena.Handle]*entities.Bomb),
		seqs:    make(map[arena.Handle]uint64),
		byCell:  make(map[world.Cell]arena.Handle),
		planted: mapset.New[world.Cell](),
		fuses: heap.New[fuse](func(x, y fuse) bool {
			if x.deadline != y.deadline {
				return x.deadline < y.deadline
			}
			return x.seq < y.seq
		}),
	}
}

// Plant creates an unarmed bomb with deadline now + Fuse.
// It fails with a *PlantRejected when the owner has no capacity left or the
// cell already holds a bomb; nothing changes in that case.
func (r *Registry) Plant(req PlantRequest, now float64) (arena.Handle, error) {
	if req.Capacity <= 0 {
		return arena.NoHandle, &PlantRejected{Reason: ErrCapacityExhausted, Owner: req.Owner, Cell: req.Cell}
	}
	if r.planted.Has(req.Cell) {
		return arena.NoHandle, &PlantRejected{Reason: ErrCellOccupied, Owner: req.Owner, Cell: req.Cell}
	}

	id := r.arena.Spawn(arena.KindBomb)
	bomb := &entities.Bomb{
		ID:       id,
		Owner:    req.Owner,
		Color:    req.Color,
		Radius:   req.Radius,
		Deadline: now + req.Fuse,
		Cell:     req.Cell,
	}

	r.nextSeq++
	r.bombs[id] = bomb
	r.seqs[id] = r.nextSeq
	r.byCell[req.Cell] = id
	r.planted.Put(req.Cell)
	r.fuses.Push(fuse{deadline: bomb.Deadline, seq: r.nextSeq, bomb: id})
	return id, nil
}

// Tick removes and returns every bomb whose deadline is at or before now,
// ordered by deadline and then by plant order.
func (r *Registry) Tick(now float64) []Detonation {
	var out []Detonation
	for {
		next, ok := r.fuses.Peek()
		if !ok || next.deadline > now {
			break
		}
		r.fuses.Pop()

		// Entries of force-detonated bombs are left in the heap and skipped here.
		if seq, live := r.seqs[next.bomb]; !live || seq != next.seq {
			continue
		}
		out = append(out, r.remove(next.bomb, false, now))
	}
	return out
}

// ArmOnDeparture marks a bomb as armed once nobody stands on it.
// It reports whether the bomb changed; unknown or armed bombs are a no-op.
func (r *Registry) ArmOnDeparture(id arena.Handle) bool {
	b, ok := r.bombs[id]
	if !ok || b.Armed {
		return false
	}
	b.Armed = true
	return true
}

// ForceDetonate removes a bomb regardless of its deadline. A bomb that is
// unknown or already gone yields false, so a bomb detonates at most once.
func (r *Registry) ForceDetonate(id arena.Handle, now float64) (Detonation, bool) {
	if _, ok := r.bombs[id]; !ok {
		return Detonation{}, false
	}
	return r.remove(id, true, now), true
}

func (r *Registry) remove(id arena.Handle, chained bool, now float64) Detonation {
	b := r.bombs[id]
	delete(r.bombs, id)
	delete(r.seqs, id)
	delete(r.byCell, b.Cell)
	r.planted.Remove(b.Cell)
	r.arena.Despawn(id)

	return Detonation{
		Bomb:    id,
		Owner:   b.Owner,
		Color:   b.Color,
		Cell:    b.Cell,
		Radius:  b.Radius,
		Chained: chained,
		At:      now,
	}
}

// Get returns a live bomb
func (r *Registry) Get(id arena.Handle) (*entities.Bomb, bool) {
	b, ok := r.bombs[id]
	return b, ok
}

// BombAt returns the bomb occupying a cell
func (r *Registry) BombAt(c world.Cell) (arena.Handle, bool) {
	id, ok := r.byCell[c]
	return id, ok
}

// IsPlanted reports whether a cell is in the planted set
func (r *Registry) IsPlanted(c world.Cell) bool {
	return r.planted.Has(c)
}

// Len returns the number of live bombs
func (r *Registry) Len() int {
	return len(r.bombs)
}

// Bombs returns copies of the live bombs in plant order
func (r *Registry) Bombs() []entities.Bomb {
	out := make([]entities.Bomb, 0, len(r.bombs))
	for _, b := range r.bombs {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return r.seqs[out[i].ID] < r.seqs[out[j].ID] })
	return out
}
