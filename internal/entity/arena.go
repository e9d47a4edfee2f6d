// internal/entity/arena.go
package entity

import "go-spline-defense/internal/types"

// Allocator hands out generational ids and reuses freed slots. An id freed with Free
// never equals a later id for the same slot.
type Allocator struct {
	gens  []uint32
	alive []bool
	free  []uint32
}

// New returns a fresh id.
func (a *Allocator) New() types.EntityID {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.alive[idx] = true
		return types.NewEntityID(idx, a.gens[idx])
	}
	idx := uint32(len(a.gens))
	a.gens = append(a.gens, 1)
	a.alive = append(a.alive, true)
	return types.NewEntityID(idx, 1)
}

// Alive reports whether the id is current.
func (a *Allocator) Alive(id types.EntityID) bool {
	idx := id.Index()
	return !id.IsNone() && int(idx) < len(a.gens) && a.alive[idx] && a.gens[idx] == id.Generation()
}

// Free invalidates the id. Stale or unknown ids are ignored.
func (a *Allocator) Free(id types.EntityID) bool {
	if !a.Alive(id) {
		return false
	}
	idx := id.Index()
	a.alive[idx] = false
	a.gens[idx]++
	if a.gens[idx] == 0 {
		// поколение переполнилось: слот больше не используется
		return true
	}
	a.free = append(a.free, idx)
	return true
}

type row[T any] struct {
	id  types.EntityID
	val *T
}

// Arena is a dense table indexed by the slot of an id. A lookup only succeeds when the
// stored id matches exactly, so stale ids resolve to nothing.
type Arena[T any] struct {
	rows []row[T]
	n    int
}

func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Set stores v under id, replacing what the slot held.
func (a *Arena[T]) Set(id types.EntityID, v *T) {
	idx := int(id.Index())
	if idx >= len(a.rows) {
		a.rows = append(a.rows, make([]row[T], idx+1-len(a.rows))...)
	}
	if a.rows[idx].val == nil {
		a.n++
	}
	a.rows[idx] = row[T]{id: id, val: v}
}

// Get returns the value stored under id.
func (a *Arena[T]) Get(id types.EntityID) (*T, bool) {
	idx := int(id.Index())
	if id.IsNone() || idx >= len(a.rows) {
		return nil, false
	}
	r := a.rows[idx]
	if r.val == nil || r.id != id {
		return nil, false
	}
	return r.val, true
}

// Has reports whether id is stored.
func (a *Arena[T]) Has(id types.EntityID) bool {
	_, ok := a.Get(id)
	return ok
}

// Delete removes id. It reports whether something was removed.
func (a *Arena[T]) Delete(id types.EntityID) bool {
	if !a.Has(id) {
		return false
	}
	a.rows[id.Index()] = row[T]{}
	a.n--
	return true
}

// Len returns the number of stored values.
func (a *Arena[T]) Len() int {
	return a.n
}

// IDs returns the stored ids in slot order. The slice is a snapshot, so the arena may be
// mutated while iterating it.
func (a *Arena[T]) IDs() []types.EntityID {
	ids := make([]types.EntityID, 0, a.n)
	for _, r := range a.rows {
		if r.val != nil {
			ids = append(ids, r.id)
		}
	}
	return ids
}

// Each calls fn for every stored value in slot order.
func (a *Arena[T]) Each(fn func(id types.EntityID, v *T)) {
	for _, id := range a.IDs() {
		if v, ok := a.Get(id); ok {
			fn(id, v)
		}
	}
}
