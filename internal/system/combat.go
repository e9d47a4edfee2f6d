// internal/system/combat.go
package system

import (
	"math"

	"go-spline-defense/internal/component"
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/entity"
	"go-spline-defense/internal/event"
	"go-spline-defense/internal/interfaces"
	"go-spline-defense/internal/types"
	"go-spline-defense/internal/utils"

	"github.com/sirupsen/logrus"
)

// CombatSystem управляет атакой башен: множество врагов в радиусе, выбор цели,
// поворот, перезарядка и выстрел.
type CombatSystem struct {
	ecs          *entity.ECS
	engine       interfaces.Engine
	enemies      *EnemySystem
	projectiles  *ProjectileSystem
	aimTolerance float64
	log          *logrus.Entry
}

func NewCombatSystem(ecs *entity.ECS, events *event.Dispatcher, engine interfaces.Engine, enemies *EnemySystem,
	projectiles *ProjectileSystem, aimTolerance float64, log *logrus.Entry) *CombatSystem {
	s := &CombatSystem{
		ecs:          ecs,
		engine:       engine,
		enemies:      enemies,
		projectiles:  projectiles,
		aimTolerance: aimTolerance,
		log:          log,
	}
	events.Subscribe(event.EnemyDied, s)
	events.Subscribe(event.EnemyFinished, s)
	events.Subscribe(event.EnemyRemoved, s)
	return s
}

// OnEvent убирает погибшего, прошедшего или удалённого врага из всех зон и
// перенацеливает башни, которые в него целились.
func (s *CombatSystem) OnEvent(e event.Event) {
	for _, id := range s.ecs.Towers.IDs() {
		tower, _ := s.ecs.Towers.Get(id)
		if _, member := tower.Members[e.Entity]; !member && tower.Turret.Target != e.Entity {
			continue
		}
		delete(tower.Members, e.Entity)
		s.Retarget(id)
	}
}

// OnEnter регистрирует врага, вошедшего в радиус башни.
func (s *CombatSystem) OnEnter(towerID, enemyID types.EntityID) {
	tower, ok := s.ecs.Towers.Get(towerID)
	if !ok || tower.Combat == nil {
		return
	}
	if _, dup := tower.Members[enemyID]; dup {
		return
	}
	tower.Members[enemyID] = struct{}{}
	s.Retarget(towerID)
}

// OnExit регистрирует врага, покинувшего радиус башни.
func (s *CombatSystem) OnExit(towerID, enemyID types.EntityID) {
	tower, ok := s.ecs.Towers.Get(towerID)
	if !ok {
		return
	}
	delete(tower.Members, enemyID)
	s.Retarget(towerID)
}

// Retarget отбрасывает исчезнувших и обречённых врагов и выбирает новую цель.
func (s *CombatSystem) Retarget(towerID types.EntityID) types.EntityID {
	tower, ok := s.ecs.Towers.Get(towerID)
	if !ok {
		return types.NoEntity
	}
	cands := make([]Candidate, 0, len(tower.Members))
	for _, id := range tower.MemberIDs() {
		e, ok := s.ecs.Enemies.Get(id)
		if !ok || e.WillDie() {
			delete(tower.Members, id)
			continue
		}
		cands = append(cands, Candidate{ID: id, Progress: e.Progress, Life: e.Life, Spawner: e.IsSpawner()})
	}
	tower.Turret.Target = SelectTarget(cands, tower.AttackStyle)
	return tower.Turret.Target
}

// SwitchAttackStyle переключает стиль атаки башни по кругу и перенацеливает её.
func (s *CombatSystem) SwitchAttackStyle(towerID types.EntityID) defs.AttackStyle {
	tower, ok := s.ecs.Towers.Get(towerID)
	if !ok || tower.Combat == nil {
		return defs.AttackNone
	}
	tower.AttackStyle = tower.AttackStyle.Next()
	s.Retarget(towerID)
	return tower.AttackStyle
}

// Update выполняет один фиксированный шаг для каждой атакующей башни.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.Towers.IDs() {
		tower, ok := s.ecs.Towers.Get(id)
		if !ok || tower.Combat == nil {
			continue
		}
		tower.Combat.Reload -= deltaTime

		if tower.Turret.Target.IsNone() {
			continue
		}
		target, ok := s.ecs.Enemies.Get(tower.Turret.Target)
		if !ok || target.WillDie() {
			delete(tower.Members, tower.Turret.Target)
			if s.Retarget(id).IsNone() {
				continue
			}
			target, _ = s.ecs.Enemies.Get(tower.Turret.Target)
		}

		s.lookAt(tower, target, deltaTime)
		if !s.ready(tower, target) {
			continue
		}
		s.attack(id, tower, target)
	}
}

func (s *CombatSystem) lookAt(tower *component.Tower, target *component.Enemy, deltaTime float64) {
	bearing := tower.Position.Angle(target.Position)
	speed := tower.Combat.Stats.RotationSpeed * tower.Bonus.Multiplier(defs.BonusRotationSpeed)
	tower.Turret.Facing = utils.LerpAngle(tower.Turret.Facing, bearing, speed*deltaTime)
}

func (s *CombatSystem) ready(tower *component.Tower, target *component.Enemy) bool {
	if tower.Combat.Reload > 0 || tower.AttackStyle == defs.AttackNone {
		return false
	}
	bearing := tower.Position.Angle(target.Position)
	return math.Abs(utils.DeltaAngle(tower.Turret.Facing, bearing)) < s.aimTolerance
}

// EffectiveDamage возвращает базовый урон башни с учётом бонуса урона.
func EffectiveDamage(tower *component.Tower) int {
	if tower.Combat == nil {
		return 0
	}
	return int(float64(tower.Combat.Stats.Damage) * tower.Bonus.Multiplier(defs.BonusDamage))
}

// EffectiveFireRate возвращает число выстрелов в секунду с учётом бонуса.
func EffectiveFireRate(tower *component.Tower) float64 {
	if tower.Combat == nil {
		return 0
	}
	return tower.Combat.Stats.FireRate * tower.Bonus.Multiplier(defs.BonusFireRate)
}

func (s *CombatSystem) attack(id types.EntityID, tower *component.Tower, target *component.Enemy) {
	dmg := Damage{Amount: EffectiveDamage(tower), Type: tower.Combat.Stats.DamageType}
	targetID := tower.Turret.Target

	if h, ok := s.ecs.Handle(id); ok {
		s.engine.Play(h, defs.ClipAttack)
	}
	if speed := tower.Combat.Stats.ProjectileSpeed; speed > 0 {
		s.projectiles.Launch(id, targetID, dmg, tower.Position, target.Position, speed)
	} else {
		s.enemies.TakeDamage(targetID, dmg, id)
	}
	tower.Combat.Reload = 1 / EffectiveFireRate(tower)
	s.log.WithFields(logrus.Fields{"tower": id, "target": targetID, "damage": dmg.Amount}).Debug("tower fired")
}
