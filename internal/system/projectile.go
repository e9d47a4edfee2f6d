// internal/system/projectile.go
package system

import (
	"go-spline-defense/internal/component"
	"go-spline-defense/internal/entity"
	"go-spline-defense/internal/timer"
	"go-spline-defense/internal/types"
	"go-spline-defense/pkg/spline"
)

// ProjectileSystem ведёт снаряды в полёте: урон резервируется на цели при выстреле
// и применяется по истечении времени полёта, если цель ещё жива.
type ProjectileSystem struct {
	ecs     *entity.ECS
	sched   *timer.Scheduler
	enemies *EnemySystem
}

func NewProjectileSystem(ecs *entity.ECS, sched *timer.Scheduler, enemies *EnemySystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:     ecs,
		sched:   sched,
		enemies: enemies,
	}
}

// Launch выпускает снаряд из from в текущую позицию цели. Время полёта равно
// расстоянию, делённому на скорость, в масштабированных секундах.
func (s *ProjectileSystem) Launch(tower, target types.EntityID, dmg Damage, from, to spline.Point, speed float64) types.EntityID {
	reserved := s.enemies.Preview(target, dmg)
	flight := 0.0
	if speed > 0 {
		flight = from.Dist(to) / speed
	}

	id := s.ecs.NewEntity()
	s.ecs.Projectiles.Set(id, &component.Projectile{
		Tower:      tower,
		Target:     target,
		Amount:     reserved,
		Base:       dmg.Amount,
		DamageType: dmg.Type,
		From:       from,
		Flight:     flight,
	})
	s.sched.After(flight, id, func() { s.resolve(id) })
	return id
}

// resolve снимает резерв и применяет попадание. Погибшая или исчезнувшая цель
// урон не получает.
func (s *ProjectileSystem) resolve(id types.EntityID) {
	p, ok := s.ecs.Projectiles.Get(id)
	if !ok {
		return
	}
	s.enemies.Release(p.Target, p.Amount)
	s.enemies.TakeDamage(p.Target, Damage{Amount: p.Base, Type: p.DamageType}, p.Tower)
	s.ecs.Destroy(id)
}

// Update продвигает видимый полёт всех снарядов.
func (s *ProjectileSystem) Update(deltaTime float64) {
	s.ecs.Projectiles.Each(func(_ types.EntityID, p *component.Projectile) {
		p.Elapsed += deltaTime
	})
}

// Clear убирает все снаряды без попадания.
func (s *ProjectileSystem) Clear() {
	for _, id := range s.ecs.Projectiles.IDs() {
		if p, ok := s.ecs.Projectiles.Get(id); ok {
			s.enemies.Release(p.Target, p.Amount)
		}
		s.sched.CancelOwner(id)
		s.ecs.Destroy(id)
	}
}
