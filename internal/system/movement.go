// internal/system/movement.go
package system

import (
	"go-spline-defense/internal/entity"
)

// MovementSystem двигает живых врагов по их траекториям.
type MovementSystem struct {
	ecs     *entity.ECS
	enemies *EnemySystem
}

func NewMovementSystem(ecs *entity.ECS, enemies *EnemySystem) *MovementSystem {
	return &MovementSystem{ecs: ecs, enemies: enemies}
}

// Update advances every alive enemy by speed / length × deltaTime of progress.
// Дошедшие до конца враги завершаются.
func (s *MovementSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	paths := s.enemies.Paths()
	for _, id := range s.ecs.Enemies.IDs() {
		e, ok := s.ecs.Enemies.Get(id)
		if !ok || !e.IsAlive() {
			continue
		}
		path := paths[e.Trajectory]
		if length := path.Length(); length > 0 {
			e.Progress += e.Speed / length * deltaTime
		} else {
			e.Progress = 1
		}
		if e.Progress >= 1 {
			s.enemies.Finish(id)
			continue
		}
		e.Position = path.Evaluate(e.Progress)
	}
}
