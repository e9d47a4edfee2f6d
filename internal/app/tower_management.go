// internal/app/tower_management.go
package app

import (
	"fmt"

	"go-spline-defense/internal/component"
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/event"
	"go-spline-defense/internal/system"
	"go-spline-defense/internal/types"
	"go-spline-defense/pkg/hexmap"

	"github.com/sirupsen/logrus"
)

// TowerStats holds the effective tower figures shown by the info panel.
type TowerStats struct {
	Type          defs.TowerType
	Name          string
	Damage        int
	DamageType    defs.DamageType
	FireRate      float64
	RotationSpeed float64
	Range         float64
	AttackStyle   defs.AttackStyle
	SellPrice     int
	Upgrades      []defs.TowerType
	Booster       bool
}

// PlaceTower buys a tower of the given type on the hex.
func (g *Game) PlaceTower(hex hexmap.Hex, t defs.TowerType) (types.EntityID, error) {
	if g.ECS.State.GameOver {
		return types.NoEntity, ErrGameOver
	}
	def, ok := g.Library.Tower(t)
	if !ok {
		return types.NoEntity, fmt.Errorf("%w: %q", ErrUnknownTowerType, t)
	}
	if !g.CanPlaceTower(hex) {
		return types.NoEntity, ErrInvalidPlacement
	}
	if err := g.EconomySystem.Spend(def.Price); err != nil {
		return types.NoEntity, err
	}
	return g.buildTower(t, hex)
}

// CanPlaceTower reports whether the hex is a free buildable cell.
func (g *Game) CanPlaceTower(hex hexmap.Hex) bool {
	if !g.Grid.Buildable(hex) {
		return false
	}
	_, occupied := g.TowerAt(hex)
	return !occupied
}

// UpgradeTower replaces a tower by one of its upgrades, paying the full price of the new
// type. The attack style is carried over.
func (g *Game) UpgradeTower(id types.EntityID, to defs.TowerType) (types.EntityID, error) {
	if g.ECS.State.GameOver {
		return types.NoEntity, ErrGameOver
	}
	old, ok := g.ECS.Towers.Get(id)
	if !ok {
		return types.NoEntity, ErrUnknownTower
	}
	if !old.Def.CanUpgradeTo(to) {
		return types.NoEntity, fmt.Errorf("%w: %s -> %s", ErrInvalidUpgrade, old.Type, to)
	}
	def, ok := g.Library.Tower(to)
	if !ok {
		return types.NoEntity, fmt.Errorf("%w: %q", ErrUnknownTowerType, to)
	}
	if err := g.EconomySystem.Spend(def.Price); err != nil {
		return types.NoEntity, err
	}

	from, cell, style, hadCombat := old.Type, old.Cell, old.AttackStyle, old.Combat != nil
	g.removeTower(id)
	newID := g.createTower(&def, cell)
	if tower, _ := g.ECS.Towers.Get(newID); hadCombat && tower.Combat != nil {
		tower.AttackStyle = style
	}

	g.EventDispatcher.Dispatch(event.Event{
		Type:   event.TowerUpgraded,
		Entity: newID,
		Data:   event.TowerData{Type: to, From: from, Cost: def.Price},
	})
	g.Log.WithFields(logrus.Fields{"from": from, "to": to}).Info("tower upgraded")
	return newID, nil
}

// SellTower removes a tower and refunds part of its price.
func (g *Game) SellTower(id types.EntityID) (int, error) {
	tower, ok := g.ECS.Towers.Get(id)
	if !ok {
		return 0, ErrUnknownTower
	}
	refund := g.EconomySystem.SellPrice(tower.Paid)
	typ := tower.Type
	g.removeTower(id)
	g.EconomySystem.Earn(refund)
	g.EventDispatcher.Dispatch(event.Event{
		Type:   event.TowerSold,
		Entity: id,
		Data:   event.TowerData{Type: typ, Cost: refund},
	})
	g.Log.WithFields(logrus.Fields{"tower": typ, "refund": refund}).Info("tower sold")
	return refund, nil
}

// SwitchAttackStyle cycles the attack style of an attacking tower.
func (g *Game) SwitchAttackStyle(id types.EntityID) (defs.AttackStyle, error) {
	tower, ok := g.ECS.Towers.Get(id)
	if !ok {
		return "", ErrUnknownTower
	}
	if tower.Combat == nil {
		return tower.AttackStyle, nil
	}
	return g.CombatSystem.SwitchAttackStyle(id), nil
}

// TowerAt returns the tower standing on the hex, if any.
func (g *Game) TowerAt(hex hexmap.Hex) (types.EntityID, bool) {
	for _, id := range g.ECS.Towers.IDs() {
		if t, _ := g.ECS.Towers.Get(id); t.Cell == hex {
			return id, true
		}
	}
	return types.NoEntity, false
}

// TowerStats returns the effective stats of a tower.
func (g *Game) TowerStats(id types.EntityID) (TowerStats, bool) {
	t, ok := g.ECS.Towers.Get(id)
	if !ok {
		return TowerStats{}, false
	}
	s := TowerStats{
		Type:        t.Type,
		Name:        t.Def.Name,
		Range:       t.Radius,
		AttackStyle: t.AttackStyle,
		SellPrice:   g.EconomySystem.SellPrice(t.Paid),
		Upgrades:    t.Def.Upgrades,
		Booster:     t.IsBooster(),
	}
	if t.Combat != nil {
		s.Damage = system.EffectiveDamage(t)
		s.DamageType = t.Combat.Stats.DamageType
		s.FireRate = system.EffectiveFireRate(t)
		s.RotationSpeed = t.Combat.Stats.RotationSpeed * t.Bonus.Multiplier(defs.BonusRotationSpeed)
	}
	return s, true
}

// buildTower places a tower without paying for it.
func (g *Game) buildTower(t defs.TowerType, hex hexmap.Hex) (types.EntityID, error) {
	def, ok := g.Library.Tower(t)
	if !ok {
		return types.NoEntity, fmt.Errorf("%w: %q", ErrUnknownTowerType, t)
	}
	if !g.CanPlaceTower(hex) {
		return types.NoEntity, ErrInvalidPlacement
	}
	id := g.createTower(&def, hex)
	g.EventDispatcher.Dispatch(event.Event{
		Type:   event.TowerPlaced,
		Entity: id,
		Data:   event.TowerData{Type: t, Cost: def.Price},
	})
	g.Log.WithFields(logrus.Fields{"tower": t, "q": hex.Q, "r": hex.R}).Debug("tower placed")
	return id, nil
}

func (g *Game) createTower(def *defs.TowerDefinition, hex hexmap.Hex) types.EntityID {
	id := g.ECS.NewEntity()
	pos := g.Grid.Center(hex)
	g.ECS.Towers.Set(id, component.NewTower(def, hex, pos))
	g.ECS.BindHandle(id, g.Engine.Spawn(string(def.Type), pos))
	return id
}

func (g *Game) removeTower(id types.EntityID) {
	g.SensorSystem.DropTower(id)
	g.Scheduler.CancelOwner(id)
	g.EventDispatcher.DropEntity(id)
	if h, ok := g.ECS.Handle(id); ok {
		g.Engine.Despawn(h)
	}
	g.ECS.Destroy(id)
}
