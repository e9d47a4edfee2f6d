// internal/system/wave.go
package system

import (
	"context"
	"errors"

	"go-spline-defense/internal/config"
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/entity"
	"go-spline-defense/internal/event"
	"go-spline-defense/internal/timer"
	"go-spline-defense/internal/types"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
)

// Состояния планировщика волн.
const (
	WaveIdle     = "idle"
	WaveSpawning = "spawning"
	WaveDraining = "draining"
	WaveComplete = "complete"
)

const (
	waveEventStart   = "start"
	waveEventSpawned = "spawned"
	waveEventDrained = "drained"
)

// WavePolicy сопоставляет номеру волны (с 1) волну, которую нужно сыграть.
type WavePolicy interface {
	Resolve(waves []defs.WaveDefinition, n int) defs.WaveDefinition
}

// StandardPolicy играет n-ю волну из определений. Номера за концом повторяют последнюю.
type StandardPolicy struct{}

func (StandardPolicy) Resolve(waves []defs.WaveDefinition, n int) defs.WaveDefinition {
	return waves[clampIndex(n-1, len(waves))]
}

// ProjectedPolicy растягивает определения на вдвое большее число волн: волна n играет
// определение n/2+1, а нечётные волны после первой повторяют его с удвоенным числом
// врагов и задержками, умноженными на Factor.
type ProjectedPolicy struct {
	Factor float64
}

func (p ProjectedPolicy) Resolve(waves []defs.WaveDefinition, n int) defs.WaveDefinition {
	base := waves[clampIndex(n/2, len(waves))]
	if n <= 1 || n%2 == 0 {
		return base
	}
	projected := defs.WaveDefinition{Infinite: base.Infinite, Parts: make([]defs.WavePart, len(base.Parts))}
	for i, part := range base.Parts {
		part.Count *= 2
		part.Delay *= p.Factor
		projected.Parts[i] = part
	}
	return projected
}

// NewWavePolicy возвращает политику по имени из конфигурации.
func NewWavePolicy(cfg config.WavesConfig) WavePolicy {
	if cfg.Policy == config.PolicyProjected {
		return ProjectedPolicy{Factor: cfg.ProjectedFactor}
	}
	return StandardPolicy{}
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}

// WaveSystem последовательно выпускает врагов волны и решает, когда волна пройдена:
// подпрограмма появления закончилась и все добавленные враги умерли или дошли до конца.
type WaveSystem struct {
	ecs          *entity.ECS
	events       *event.Dispatcher
	sched        *timer.Scheduler
	enemies      *EnemySystem
	waves        []defs.WaveDefinition
	policy       WavePolicy
	trajectories int
	log          *logrus.Entry

	fsm        *fsm.FSM
	population map[types.EntityID]struct{}
	spawnTask  timer.TaskID
	current    int
}

func NewWaveSystem(ecs *entity.ECS, events *event.Dispatcher, sched *timer.Scheduler, enemies *EnemySystem,
	waves []defs.WaveDefinition, policy WavePolicy, log *logrus.Entry) *WaveSystem {
	s := &WaveSystem{
		ecs:          ecs,
		events:       events,
		sched:        sched,
		enemies:      enemies,
		waves:        waves,
		policy:       policy,
		trajectories: len(enemies.Paths()),
		log:          log,
		population:   make(map[types.EntityID]struct{}),
		fsm: fsm.NewFSM(
			WaveIdle,
			fsm.Events{
				{Name: waveEventStart, Src: []string{WaveIdle, WaveComplete}, Dst: WaveSpawning},
				{Name: waveEventSpawned, Src: []string{WaveSpawning}, Dst: WaveDraining},
				{Name: waveEventDrained, Src: []string{WaveDraining}, Dst: WaveComplete},
			},
			fsm.Callbacks{},
		),
	}
	events.Subscribe(event.EnemySpawned, s)
	events.Subscribe(event.GameOver, s)
	return s
}

// State возвращает состояние планировщика волн.
func (s *WaveSystem) State() string {
	return s.fsm.Current()
}

// IsIdle сообщает, можно ли начать новую волну.
func (s *WaveSystem) IsIdle() bool {
	return s.fsm.Is(WaveIdle) || s.fsm.Is(WaveComplete)
}

// Population возвращает число ещё живых врагов волны.
func (s *WaveSystem) Population() int {
	return len(s.population)
}

// Current возвращает номер текущей (или последней сыгранной) волны.
func (s *WaveSystem) Current() int {
	return s.current
}

// StartWave начинает волну с номером из состояния сессии.
func (s *WaveSystem) StartWave() error {
	if s.ecs.State.GameOver {
		return ErrGameOver
	}
	if !s.IsIdle() {
		return ErrWaveInProgress
	}
	if len(s.waves) == 0 || s.trajectories == 0 {
		return errors.New("level has no waves or no trajectories")
	}
	if err := s.fsm.Event(context.Background(), waveEventStart); err != nil {
		return err
	}

	s.current = s.ecs.State.Wave
	def := s.policy.Resolve(s.waves, s.current)
	s.events.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: s.current}})
	s.log.WithField("wave", s.current).Info("wave started")
	s.spawn(def)
	return nil
}

func (s *WaveSystem) spawn(def defs.WaveDefinition) {
	parts := make([]defs.WavePart, 0, len(def.Parts))
	var pause float64
	for _, p := range def.Parts {
		if p.Count > 0 {
			parts = append(parts, p)
			pause += p.Delay * float64(p.Count)
		}
	}
	if len(parts) == 0 {
		s.endSpawning()
		return
	}
	infinite := def.Infinite
	if infinite && pause <= 0 {
		s.log.WithField("wave", s.current).Warn("infinite wave without delays played once")
		infinite = false
	}

	part, round := 0, 0
	s.spawnTask = s.sched.Loop(parts[0].Delay, types.NoEntity, nil, func() float64 {
		for {
			p := parts[part]
			if _, err := s.enemies.Spawn(p.Enemy, round%s.trajectories, 0); err != nil {
				s.log.WithError(err).WithField("wave", s.current).Warn("spawn skipped")
			}
			round++
			if round >= p.Count {
				part, round = part+1, 0
			}
			if part >= len(parts) {
				if !infinite || s.ecs.State.Life <= 0 || s.ecs.State.GameOver {
					s.spawnTask = 0
					s.endSpawning()
					return 0
				}
				part = 0
				s.current++
				s.events.Dispatch(event.Event{Type: event.SubWaveStarted, Data: event.WaveData{Wave: s.current}})
				s.log.WithField("wave", s.current).Info("sub-wave started")
			}
			if d := parts[part].Delay; d > 0 {
				return d
			}
		}
	})
}

func (s *WaveSystem) endSpawning() {
	if err := s.fsm.Event(context.Background(), waveEventSpawned); err != nil {
		return
	}
	s.CheckCompletion()
}

// CheckCompletion отправляет WaveCompleted, когда спавн закончен и популяция пуста.
// Вызывать можно в любой момент.
func (s *WaveSystem) CheckCompletion() {
	if !s.fsm.Is(WaveDraining) || len(s.population) > 0 {
		return
	}
	if err := s.fsm.Event(context.Background(), waveEventDrained); err != nil {
		return
	}
	s.events.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WaveData{Wave: s.current}})
	s.log.WithField("wave", s.current).Info("wave completed")
}

// AddMonster учитывает врага в популяции волны, пока он не погибнет или не дойдёт.
func (s *WaveSystem) AddMonster(id types.EntityID) {
	if _, dup := s.population[id]; dup {
		return
	}
	s.population[id] = struct{}{}
	gone := event.ListenerFunc(func(e event.Event) { s.monsterGone(e.Entity) })
	s.events.SubscribeEntity(event.EnemyDied, id, gone)
	s.events.SubscribeEntity(event.EnemyFinished, id, gone)
}

func (s *WaveSystem) monsterGone(id types.EntityID) {
	if _, ok := s.population[id]; !ok {
		return
	}
	delete(s.population, id)
	s.CheckCompletion()
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		s.AddMonster(e.Entity)
	case event.GameOver:
		if s.spawnTask != 0 {
			s.sched.Cancel(s.spawnTask)
			s.spawnTask = 0
			s.endSpawning()
		}
	}
}

// Reset отменяет спавн и забывает популяцию.
func (s *WaveSystem) Reset() {
	if s.spawnTask != 0 {
		s.sched.Cancel(s.spawnTask)
		s.spawnTask = 0
	}
	s.population = make(map[types.EntityID]struct{})
	s.fsm.SetState(WaveIdle)
}
