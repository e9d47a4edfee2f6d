// internal/system/enemy.go
package system

import (
	"context"
	"fmt"

	"go-spline-defense/internal/component"
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/entity"
	"go-spline-defense/internal/event"
	"go-spline-defense/internal/interfaces"
	"go-spline-defense/internal/timer"
	"go-spline-defense/internal/types"
	"go-spline-defense/pkg/spline"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
)

// EnemySystem владеет жизненным циклом врагов: появление, урон, смерть с потомками,
// призыв у спавнеров и удаление из мира.
type EnemySystem struct {
	ecs         *entity.ECS
	events      *event.Dispatcher
	sched       *timer.Scheduler
	engine      interfaces.Engine
	lib         *defs.Library
	paths       []*spline.Polyline
	childOffset float64
	log         *logrus.Entry
}

func NewEnemySystem(ecs *entity.ECS, events *event.Dispatcher, sched *timer.Scheduler, engine interfaces.Engine,
	lib *defs.Library, paths []*spline.Polyline, childOffset float64, log *logrus.Entry) *EnemySystem {
	return &EnemySystem{
		ecs:         ecs,
		events:      events,
		sched:       sched,
		engine:      engine,
		lib:         lib,
		paths:       paths,
		childOffset: childOffset,
		log:         log,
	}
}

func newEnemyFSM() *fsm.FSM {
	return fsm.NewFSM(
		component.EnemyAlive,
		fsm.Events{
			{Name: component.EnemyEventDie, Src: []string{component.EnemyAlive}, Dst: component.EnemyDying},
			{Name: component.EnemyEventFinish, Src: []string{component.EnemyAlive}, Dst: component.EnemyFinished},
			{Name: component.EnemyEventRemove, Src: []string{component.EnemyDying, component.EnemyFinished}, Dst: component.EnemyRemoved},
		},
		fsm.Callbacks{},
	)
}

// Paths возвращает траектории уровня.
func (s *EnemySystem) Paths() []*spline.Polyline {
	return s.paths
}

// Spawn ставит нового врага на траекторию в заданную точку прогресса.
func (s *EnemySystem) Spawn(t defs.EnemyType, trajectory int, progress float64) (types.EntityID, error) {
	def, ok := s.lib.Enemy(t)
	if !ok {
		return types.NoEntity, fmt.Errorf("%w: %q", ErrUnknownEnemy, t)
	}
	if trajectory < 0 || trajectory >= len(s.paths) {
		return types.NoEntity, fmt.Errorf("trajectory %d out of range [0, %d)", trajectory, len(s.paths))
	}
	progress = min(max(progress, 0), 1)

	id := s.ecs.NewEntity()
	pos := s.paths[trajectory].Evaluate(progress)
	e := &component.Enemy{
		Type:    t,
		Def:     &def,
		FSM:     newEnemyFSM(),
		MaxLife: def.Life,
		Life:    def.Life,
		PathFollower: component.PathFollower{
			Trajectory: trajectory,
			Progress:   progress,
			Speed:      def.Speed,
			Position:   pos,
		},
	}
	s.ecs.Enemies.Set(id, e)
	s.ecs.BindHandle(id, s.engine.Spawn(string(t), pos))

	s.events.Dispatch(event.Event{
		Type:   event.EnemySpawned,
		Entity: id,
		Data:   event.EnemySpawnedData{Type: t, Trajectory: trajectory, Progress: progress},
	})
	if e.IsSpawner() {
		s.startSummoning(id)
	}
	return id, nil
}

// TakeDamage применяет попадание. Попадания по уже не живому врагу отбрасываются,
// возвращается false.
func (s *EnemySystem) TakeDamage(id types.EntityID, dmg Damage, source types.EntityID) bool {
	e, ok := s.ecs.Enemies.Get(id)
	if !ok || !e.IsAlive() {
		return false
	}
	amount, rank := ComputeDamage(float64(dmg.Amount), dmg.Type, e.Def.Weakness)
	e.Life -= float64(amount)

	s.events.Dispatch(event.Event{
		Type:   event.DamageDealt,
		Entity: id,
		Data: event.DamageDealtData{
			Tower:    source,
			Amount:   amount,
			Rank:     rank,
			Text:     FormatDamage(amount),
			Position: e.Position,
		},
	})

	h, _ := s.ecs.Handle(id)
	if e.Life <= 0 {
		s.die(id, e)
	} else {
		s.engine.Play(h, defs.ClipHurt)
	}
	return true
}

// Kill добивает врага независимо от его слабостей.
func (s *EnemySystem) Kill(id types.EntityID) bool {
	return s.TakeDamage(id, Damage{Amount: 1_000_000_000, Type: defs.DamageIgnoreWeakness}, types.NoEntity)
}

// Preview резервирует урон летящего снаряда и возвращает зарезервированную величину.
func (s *EnemySystem) Preview(id types.EntityID, dmg Damage) float64 {
	e, ok := s.ecs.Enemies.Get(id)
	if !ok || !e.IsAlive() {
		return 0
	}
	amount, _ := ComputeDamage(float64(dmg.Amount), dmg.Type, e.Def.Weakness)
	e.Pending += float64(amount)
	return float64(amount)
}

// Release снимает резерв, сделанный Preview.
func (s *EnemySystem) Release(id types.EntityID, amount float64) {
	if e, ok := s.ecs.Enemies.Get(id); ok {
		e.Pending = max(e.Pending-amount, 0)
	}
}

func (s *EnemySystem) die(id types.EntityID, e *component.Enemy) {
	if err := e.FSM.Event(context.Background(), component.EnemyEventDie); err != nil {
		s.log.WithError(err).WithField("enemy", id).Warn("enemy cannot die")
		return
	}

	// потомки появляются до события смерти, чтобы популяция волны не обнулилась раньше времени
	children := make([]types.EntityID, 0, len(e.Def.DropOnDeath))
	for i, t := range e.Def.DropOnDeath {
		p := e.Progress - s.childOffset*float64(i)
		child, err := s.Spawn(t, e.Trajectory, p)
		if err != nil {
			s.log.WithError(err).WithField("enemy", id).Warn("drop on death skipped")
			continue
		}
		children = append(children, child)
	}

	h, _ := s.ecs.Handle(id)
	s.engine.Play(h, defs.ClipDeath)
	s.events.Dispatch(event.Event{
		Type:   event.EnemyDied,
		Entity: id,
		Data: event.EnemyDiedData{
			Type:     e.Type,
			Reward:   e.Def.Reward,
			Position: e.Position,
			Children: children,
		},
	})
	s.log.WithFields(logrus.Fields{"enemy": id, "type": e.Type}).Debug("enemy died")

	// время в планировщике уже масштабировано, делить на скорость не нужно
	delay := s.engine.ClipDuration(h, defs.ClipDeath)
	s.sched.After(delay, id, func() { s.Remove(id) })
}

// Finish обрабатывает врага, дошедшего до конца траектории. Удаление немедленное.
func (s *EnemySystem) Finish(id types.EntityID) {
	e, ok := s.ecs.Enemies.Get(id)
	if !ok {
		return
	}
	if err := e.FSM.Event(context.Background(), component.EnemyEventFinish); err != nil {
		return
	}
	e.Progress = 1
	s.events.Dispatch(event.Event{
		Type:   event.EnemyFinished,
		Entity: id,
		Data:   event.EnemyFinishedData{Type: e.Type, Damage: e.Def.DamageOnLeak},
	})
	s.Remove(id)
}

// Remove убирает врага из мира вместе с его задачами и подписками.
func (s *EnemySystem) Remove(id types.EntityID) {
	e, ok := s.ecs.Enemies.Get(id)
	if !ok {
		return
	}
	if err := e.FSM.Event(context.Background(), component.EnemyEventRemove); err != nil {
		// живого врага убирают принудительно (очистка уровня)
		e.FSM.SetState(component.EnemyRemoved)
	}
	s.events.Dispatch(event.Event{Type: event.EnemyRemoved, Entity: id})
	s.sched.CancelOwner(id)
	s.events.DropEntity(id)
	if h, ok := s.ecs.Handle(id); ok {
		s.engine.Despawn(h)
	}
	s.ecs.Destroy(id)
}

// Clear удаляет всех врагов.
func (s *EnemySystem) Clear() {
	for _, id := range s.ecs.Enemies.IDs() {
		s.Remove(id)
	}
}

// startSummoning запускает цикл призыва: клип призыва, потомки позади себя,
// пауза на интервал, и так пока призыватель жив.
func (s *EnemySystem) startSummoning(id types.EntityID) {
	alive := func() bool {
		e, ok := s.ecs.Enemies.Get(id)
		return ok && e.IsAlive()
	}
	casting := false
	s.sched.Loop(0, id, alive, func() float64 {
		e, _ := s.ecs.Enemies.Get(id)
		h, _ := s.ecs.Handle(id)
		if !casting {
			s.engine.Play(h, defs.ClipSummon)
			if d := s.engine.ClipDuration(h, defs.ClipSummon); d > 0 {
				casting = true
				return d
			}
		}
		casting = false
		s.summon(id, e)
		return e.Def.Summon.Interval
	})
}

func (s *EnemySystem) summon(id types.EntityID, e *component.Enemy) {
	p := e.Progress - s.childOffset
	for _, t := range e.Def.Summon.Enemies {
		if _, err := s.Spawn(t, e.Trajectory, p); err != nil {
			s.log.WithError(err).WithField("enemy", id).Warn("summon skipped")
		}
		p -= s.childOffset
	}
}
