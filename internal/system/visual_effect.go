// internal/system/visual_effect.go
package system

import (
	"go-spline-defense/internal/component"
	"go-spline-defense/internal/event"
	"go-spline-defense/internal/utils"
	"go-spline-defense/pkg/spline"
)

// Параметры всплывающих чисел урона, в масштабированных секундах.
const (
	DamageNumberDuration = 0.6
	DamageNumberFade     = 0.4
	DamageNumberSpeed    = 30.0
)

// VisualEffectSystem управляет всплывающими числами урона.
type VisualEffectSystem struct {
	rng     *utils.PRNGService
	Numbers []*component.DamageNumber
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(events *event.Dispatcher, rng *utils.PRNGService) *VisualEffectSystem {
	s := &VisualEffectSystem{rng: rng}
	events.Subscribe(event.DamageDealt, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	d, ok := e.Data.(event.DamageDealtData)
	if !ok {
		return
	}
	dx, dy := s.rng.UnitVector()
	s.Numbers = append(s.Numbers, &component.DamageNumber{
		Text:     d.Text,
		Rank:     d.Rank,
		Position: d.Position,
		Velocity: spline.Point{X: dx, Y: dy}.Scale(DamageNumberSpeed),
	})
}

// Update обновляет все активные числа: сдвиг, затухание, удаление.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	kept := s.Numbers[:0]
	for _, n := range s.Numbers {
		n.Age += deltaTime
		n.Position = n.Position.Add(n.Velocity.Scale(deltaTime))
		if n.Age < DamageNumberDuration+DamageNumberFade {
			kept = append(kept, n)
		}
	}
	for i := len(kept); i < len(s.Numbers); i++ {
		s.Numbers[i] = nil
	}
	s.Numbers = kept
}

// Alpha возвращает непрозрачность числа в [0, 1].
func Alpha(n *component.DamageNumber) float64 {
	if n.Age <= DamageNumberDuration {
		return 1
	}
	return max(0, 1-(n.Age-DamageNumberDuration)/DamageNumberFade)
}

func (s *VisualEffectSystem) Clear() {
	s.Numbers = nil
}
