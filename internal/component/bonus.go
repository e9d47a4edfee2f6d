// internal/component/bonus.go
package component

import (
	"sort"

	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/types"
)

// BonusEntry is one multiplier together with the booster that contributed it.
// The baseline entry has Source == NoEntity.
type BonusEntry struct {
	Value  float64
	Source types.EntityID
}

// BonusTable keeps, per bonus kind, the ascending list of contributed multipliers.
// The effective multiplier is the largest entry; a 1.0 baseline is always present.
type BonusTable struct {
	lists map[defs.BonusKind][]BonusEntry
}

func NewBonusTable() *BonusTable {
	b := &BonusTable{lists: make(map[defs.BonusKind][]BonusEntry, len(defs.BonusKinds))}
	for _, k := range defs.BonusKinds {
		b.lists[k] = []BonusEntry{{Value: 1}}
	}
	return b
}

// Add inserts the multiplier keeping the list sorted by value, then by source.
func (b *BonusTable) Add(source types.EntityID, kind defs.BonusKind, value float64) {
	list := b.lists[kind]
	if list == nil {
		list = []BonusEntry{{Value: 1}}
	}
	e := BonusEntry{Value: value, Source: source}
	i := sort.Search(len(list), func(i int) bool {
		return list[i].Value > value || (list[i].Value == value && list[i].Source > source)
	})
	list = append(list, BonusEntry{})
	copy(list[i+1:], list[i:])
	list[i] = e
	b.lists[kind] = list
}

// RemoveSource drops exactly the entries contributed by the booster.
// It reports whether anything was removed.
func (b *BonusTable) RemoveSource(source types.EntityID) bool {
	if source.IsNone() {
		return false
	}
	removed := false
	for k, list := range b.lists {
		kept := list[:0]
		for _, e := range list {
			if e.Source == source {
				removed = true
				continue
			}
			kept = append(kept, e)
		}
		b.lists[k] = kept
	}
	return removed
}

// HasSource reports whether the booster currently contributes to this table.
func (b *BonusTable) HasSource(source types.EntityID) bool {
	for _, list := range b.lists {
		for _, e := range list {
			if e.Source == source {
				return true
			}
		}
	}
	return false
}

// Sources returns the boosters contributing to this table in ascending order.
func (b *BonusTable) Sources() []types.EntityID {
	seen := make(map[types.EntityID]struct{})
	var out []types.EntityID
	for _, k := range defs.BonusKinds {
		for _, e := range b.lists[k] {
			if e.Source.IsNone() {
				continue
			}
			if _, dup := seen[e.Source]; !dup {
				seen[e.Source] = struct{}{}
				out = append(out, e.Source)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Multiplier returns the effective multiplier for the kind.
func (b *BonusTable) Multiplier(kind defs.BonusKind) float64 {
	list := b.lists[kind]
	if len(list) == 0 {
		return 1
	}
	return list[len(list)-1].Value
}

// Values returns the multipliers of a kind in ascending order.
func (b *BonusTable) Values(kind defs.BonusKind) []float64 {
	list := b.lists[kind]
	out := make([]float64, len(list))
	for i, e := range list {
		out[i] = e.Value
	}
	return out
}
