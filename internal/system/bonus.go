// internal/system/bonus.go
package system

import (
	"go-spline-defense/internal/component"
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/entity"
	"go-spline-defense/internal/event"
	"go-spline-defense/internal/types"
)

// BonusSystem обрабатывает логику башен-бустеров.
type BonusSystem struct {
	ecs *entity.ECS
}

func NewBonusSystem(ecs *entity.ECS, events *event.Dispatcher) *BonusSystem {
	s := &BonusSystem{ecs: ecs}
	events.Subscribe(event.BoosterChanged, s)
	events.Subscribe(event.TowerPlaced, s)
	events.Subscribe(event.TowerSold, s)
	events.Subscribe(event.TowerUpgraded, s)
	return s
}

func (s *BonusSystem) OnEvent(event.Event) {
	s.Recalculate()
}

// Recalculate синхронизирует вклады всех бустеров с текущей расстановкой.
// Вклады отслеживаются по паре (бустер, башня): бустер в радиусе, который ещё не дал
// бонус, добавляет его; исчезнувший или вышедший из радиуса убирает ровно свои записи.
// Этот метод следует вызывать только при изменении расположения башен.
func (s *BonusSystem) Recalculate() {
	var boosters []types.EntityID
	for _, id := range s.ecs.Towers.IDs() {
		if t, _ := s.ecs.Towers.Get(id); t.IsBooster() {
			boosters = append(boosters, id)
		}
	}

	for _, targetID := range s.ecs.Towers.IDs() {
		target, _ := s.ecs.Towers.Get(targetID)
		if target.IsBooster() {
			continue
		}
		for _, src := range target.Bonus.Sources() {
			if !s.ecs.Towers.Has(src) {
				target.Bonus.RemoveSource(src)
			}
		}
		for _, boosterID := range boosters {
			booster, _ := s.ecs.Towers.Get(boosterID)
			inRange := booster.Position.Dist(target.Position) <= booster.Radius
			has := target.Bonus.HasSource(boosterID)
			switch {
			case inRange && !has:
				for _, k := range defs.BonusKinds {
					if v, ok := booster.Def.Bonus[k]; ok {
						target.Bonus.Add(boosterID, k, v)
					}
				}
			case !inRange && has:
				target.Bonus.RemoveSource(boosterID)
			}
		}
		UpdateRadius(target)
	}
}

// UpdateRadius применяет бонус дальности к радиусу башни.
func UpdateRadius(t *component.Tower) {
	t.Radius = t.Def.Range * t.Bonus.Multiplier(defs.BonusRange)
}
