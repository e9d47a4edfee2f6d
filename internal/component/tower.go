// internal/component/tower.go
package component

import (
	"sort"

	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/types"
	"go-spline-defense/pkg/hexmap"
	"go-spline-defense/pkg/spline"
)

type Tower struct {
	Type        defs.TowerType
	Def         *defs.TowerDefinition
	Cell        hexmap.Hex
	Position    spline.Point
	AttackStyle defs.AttackStyle
	Paid        int     // цена, уплаченная за текущий тип
	Radius      float64 // эффективный радиус: базовый × бонус Range
	Members     map[types.EntityID]struct{}
	Bonus       *BonusTable
	Combat      *Combat // nil у бустеров
	Turret      Turret
}

// NewTower builds a tower of the given definition standing at pos.
func NewTower(def *defs.TowerDefinition, cell hexmap.Hex, pos spline.Point) *Tower {
	t := &Tower{
		Type:     def.Type,
		Def:      def,
		Cell:     cell,
		Position: pos,
		Paid:     def.Price,
		Radius:   def.Range,
		Members:  make(map[types.EntityID]struct{}),
		Bonus:    NewBonusTable(),
	}
	if def.Combat != nil {
		t.Combat = &Combat{Stats: *def.Combat}
		t.AttackStyle = def.Combat.AttackStyle
	} else {
		t.AttackStyle = defs.AttackNone
	}
	return t
}

// IsBooster reports whether the tower grants bonuses instead of attacking.
func (t *Tower) IsBooster() bool {
	return t.Def.IsBooster()
}

// MemberIDs returns the enemies in range in ascending id order.
func (t *Tower) MemberIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(t.Members))
	for id := range t.Members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
