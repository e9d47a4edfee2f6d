// internal/system/state.go
package system

import (
	"go-spline-defense/internal/component"
	"go-spline-defense/internal/entity"
	"go-spline-defense/internal/event"
	"go-spline-defense/internal/interfaces"
)

// StateSystem переключает фазу сессии по событиям волн. Проигрыш ставит сессию на паузу.
type StateSystem struct {
	ecs         *entity.ECS
	gameContext interfaces.GameContext
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:         ecs,
		gameContext: gameContext,
	}
	eventDispatcher.Subscribe(event.WaveStarted, ss)
	eventDispatcher.Subscribe(event.WaveCompleted, ss)
	eventDispatcher.Subscribe(event.GameOver, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		s.ecs.State.Phase = component.WavePhase
	case event.WaveCompleted:
		if !s.ecs.State.GameOver {
			s.ecs.State.Phase = component.BuildPhase
		}
	case event.GameOver:
		s.ecs.State.Phase = component.GameOverPhase
		s.gameContext.Pause()
	}
}

func (s *StateSystem) Current() component.GamePhase {
	return s.ecs.State.Phase
}
