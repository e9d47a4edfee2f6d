// internal/system/economy.go
package system

import (
	"go-spline-defense/internal/config"
	"go-spline-defense/internal/entity"
	"go-spline-defense/internal/event"

	"github.com/sirupsen/logrus"
)

// moneyEpsilon гасит ошибку представления: int(180 × 0.7) должно давать 126, а не 125.
const moneyEpsilon = 1e-9

// EconomySystem меняет деньги, жизни и номер волны в ответ на события боя.
type EconomySystem struct {
	ecs    *entity.ECS
	events *event.Dispatcher
	cfg    config.GameConfig
	log    *logrus.Entry
}

func NewEconomySystem(ecs *entity.ECS, events *event.Dispatcher, cfg config.GameConfig, log *logrus.Entry) *EconomySystem {
	s := &EconomySystem{ecs: ecs, events: events, cfg: cfg, log: log}
	events.Subscribe(event.EnemyDied, s)
	events.Subscribe(event.EnemyFinished, s)
	events.Subscribe(event.WaveCompleted, s)
	events.Subscribe(event.SubWaveStarted, s)
	return s
}

func (s *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDied:
		if d, ok := e.Data.(event.EnemyDiedData); ok {
			s.Earn(d.Reward)
		}
	case event.EnemyFinished:
		if d, ok := e.Data.(event.EnemyFinishedData); ok {
			s.LoseLife(d.Damage)
		}
	case event.WaveCompleted:
		if s.ecs.State.GameOver {
			return
		}
		s.ecs.State.Wave++
		s.Earn(s.WaveReward(s.ecs.State.Wave))
	case event.SubWaveStarted:
		s.ecs.State.Wave++
	}
}

// WaveReward возвращает награду за переход на волну n.
func (s *EconomySystem) WaveReward(n int) int {
	return int(s.cfg.WaveReward*(s.cfg.WaveRewardFactor*float64(n)+1) + moneyEpsilon)
}

// SellPrice возвращает сумму возврата за башню, купленную за price.
func (s *EconomySystem) SellPrice(price int) int {
	return int(float64(price)*s.cfg.SellRatio + moneyEpsilon)
}

// Spend списывает деньги. Отказ, если денег мало или игра окончена.
func (s *EconomySystem) Spend(amount int) error {
	st := s.ecs.State
	if st.GameOver {
		return ErrGameOver
	}
	if st.Money < amount {
		return ErrNotEnoughMoney
	}
	st.Money -= amount
	s.events.Dispatch(event.Event{Type: event.MoneyChanged, Data: event.AmountData{Value: st.Money, Delta: -amount}})
	return nil
}

// Earn начисляет деньги. После поражения ничего не начисляется.
func (s *EconomySystem) Earn(amount int) {
	if amount == 0 || s.ecs.State.GameOver {
		return
	}
	s.ecs.State.Money += amount
	s.events.Dispatch(event.Event{Type: event.MoneyChanged, Data: event.AmountData{Value: s.ecs.State.Money, Delta: amount}})
}

// LoseLife отнимает жизни, не опускаясь ниже нуля. Ноль завершает игру ровно один раз.
func (s *EconomySystem) LoseLife(damage int) {
	st := s.ecs.State
	if st.GameOver || damage <= 0 {
		return
	}
	before := st.Life
	st.Life = max(st.Life-damage, 0)
	s.events.Dispatch(event.Event{Type: event.LifeChanged, Data: event.AmountData{Value: st.Life, Delta: st.Life - before}})
	if st.Life == 0 {
		st.GameOver = true
		s.log.WithField("wave", st.Wave).Info("game over")
		s.events.Dispatch(event.Event{Type: event.GameOver, Data: event.WaveData{Wave: st.Wave}})
	}
}
