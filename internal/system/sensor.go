// internal/system/sensor.go
package system

import (
	"go-spline-defense/internal/entity"
	"go-spline-defense/internal/types"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SensorSystem заменяет физические триггеры радиуса: каждый шаг сравнивает расстояние
// до врагов с радиусом башни и сообщает о входе и выходе по хэндлу движка.
type SensorSystem struct {
	ecs      *entity.ECS
	combat   *CombatSystem
	contacts map[types.EntityID]map[uuid.UUID]struct{}
	log      *logrus.Entry
}

func NewSensorSystem(ecs *entity.ECS, combat *CombatSystem, log *logrus.Entry) *SensorSystem {
	return &SensorSystem{
		ecs:      ecs,
		combat:   combat,
		contacts: make(map[types.EntityID]map[uuid.UUID]struct{}),
		log:      log,
	}
}

// Update пересчитывает контакты всех атакующих башен.
func (s *SensorSystem) Update() {
	enemyIDs := s.ecs.Enemies.IDs()
	for _, towerID := range s.ecs.Towers.IDs() {
		tower, ok := s.ecs.Towers.Get(towerID)
		if !ok || tower.Combat == nil {
			continue
		}
		set := s.contacts[towerID]
		if set == nil {
			set = make(map[uuid.UUID]struct{})
			s.contacts[towerID] = set
		}

		for h := range set {
			if _, ok := s.ecs.Resolve(h); !ok {
				// объект движка уже удалён, выход обработан событиями врага
				delete(set, h)
			}
		}

		for _, enemyID := range enemyIDs {
			e, ok := s.ecs.Enemies.Get(enemyID)
			if !ok || !e.IsAlive() {
				continue
			}
			h, ok := s.ecs.Handle(enemyID)
			if !ok {
				continue
			}
			_, had := set[h]
			inside := tower.Position.Dist(e.Position) <= tower.Radius
			switch {
			case inside && !had:
				set[h] = struct{}{}
				s.TriggerEnter(towerID, h)
			case !inside && had:
				delete(set, h)
				s.TriggerExit(towerID, h)
			}
		}
	}
}

// TriggerEnter сообщает о входе объекта движка в радиус башни.
func (s *SensorSystem) TriggerEnter(towerID types.EntityID, h uuid.UUID) {
	enemyID, ok := s.ecs.Resolve(h)
	if !ok {
		s.log.WithFields(logrus.Fields{"tower": towerID, "handle": h}).Warn("enter: no enemy for handle")
		return
	}
	s.combat.OnEnter(towerID, enemyID)
}

// TriggerExit сообщает о выходе объекта движка из радиуса башни.
func (s *SensorSystem) TriggerExit(towerID types.EntityID, h uuid.UUID) {
	enemyID, ok := s.ecs.Resolve(h)
	if !ok {
		s.log.WithFields(logrus.Fields{"tower": towerID, "handle": h}).Warn("exit: no enemy for handle")
		return
	}
	s.combat.OnExit(towerID, enemyID)
}

// DropTower забывает контакты удалённой башни.
func (s *SensorSystem) DropTower(towerID types.EntityID) {
	delete(s.contacts, towerID)
}

// Clear забывает все контакты.
func (s *SensorSystem) Clear() {
	s.contacts = make(map[types.EntityID]map[uuid.UUID]struct{})
}
