package system

import (
	"testing"

	"go-spline-defense/internal/component"
	"go-spline-defense/internal/config"
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/entity"
	"go-spline-defense/internal/event"
	"go-spline-defense/internal/timer"
	"go-spline-defense/internal/types"
	"go-spline-defense/pkg/hexmap"
	"go-spline-defense/pkg/spline"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// fakeEngine хранит хэндлы и отвечает длительностями клипов из таблицы.
type fakeEngine struct {
	clips     map[string]float64
	live      map[uuid.UUID]string
	played    []string
	despawned int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{clips: make(map[string]float64), live: make(map[uuid.UUID]string)}
}

func (f *fakeEngine) Spawn(kind string, _ spline.Point) uuid.UUID {
	h := uuid.New()
	f.live[h] = kind
	return h
}

func (f *fakeEngine) Despawn(h uuid.UUID) {
	delete(f.live, h)
	f.despawned++
}

func (f *fakeEngine) Play(_ uuid.UUID, clip string) {
	f.played = append(f.played, clip)
}

func (f *fakeEngine) ClipDuration(_ uuid.UUID, clip string) float64 {
	return f.clips[clip]
}

type fakeContext struct {
	paused bool
}

func (c *fakeContext) Pause() { c.paused = true }

// testLibrary — маленький набор определений с круглыми числами.
func testLibrary() *defs.Library {
	lib := defs.NewLibrary()
	lib.Enemies[defs.EnemyGoblin] = defs.EnemyDefinition{
		Type: defs.EnemyGoblin, Life: 10, Speed: 100, Reward: 5, DamageOnLeak: 3,
		Weakness: map[defs.DamageType]float64{defs.DamageFire: 1.5, defs.DamageIce: 0.5, defs.DamagePoison: 0},
	}
	lib.Enemies[defs.EnemySlime] = defs.EnemyDefinition{
		Type: defs.EnemySlime, Life: 10, Speed: 100, Reward: 4, DamageOnLeak: 1,
		DropOnDeath: []defs.EnemyType{defs.EnemySmallSlime, defs.EnemySmallSlime},
	}
	lib.Enemies[defs.EnemySmallSlime] = defs.EnemyDefinition{
		Type: defs.EnemySmallSlime, Life: 4, Speed: 100, Reward: 1, DamageOnLeak: 1,
	}
	lib.Enemies[defs.EnemyNest] = defs.EnemyDefinition{
		Type: defs.EnemyNest, Life: 50, Speed: 0, Reward: 20, DamageOnLeak: 5,
		Summon: &defs.SummonDef{Enemies: []defs.EnemyType{defs.EnemySmallSlime, defs.EnemySmallSlime}, Interval: 5},
	}
	lib.Towers[defs.TowerMage] = defs.TowerDefinition{
		Type: defs.TowerMage, Price: 200, Range: 100,
		Combat: &defs.CombatStats{Damage: 5, FireRate: 1, RotationSpeed: 1000,
			DamageType: defs.DamageClassic, AttackStyle: defs.AttackFirst},
	}
	lib.Towers[defs.TowerArcher] = defs.TowerDefinition{
		Type: defs.TowerArcher, Price: 100, Range: 100,
		Combat: &defs.CombatStats{Damage: 4, FireRate: 2, RotationSpeed: 1000,
			DamageType: defs.DamageClassic, AttackStyle: defs.AttackFirst, ProjectileSpeed: 100},
	}
	lib.Towers[defs.TowerDamageBooster] = defs.TowerDefinition{
		Type: defs.TowerDamageBooster, Price: 250, Range: 100,
		Bonus: map[defs.BonusKind]float64{defs.BonusDamage: 1.5, defs.BonusRange: 1.2},
	}
	return lib
}

type world struct {
	ecs         *entity.ECS
	events      *event.Dispatcher
	sched       *timer.Scheduler
	engine      *fakeEngine
	lib         *defs.Library
	log         *logrus.Logger
	hook        *test.Hook
	enemies     *EnemySystem
	projectiles *ProjectileSystem
	combat      *CombatSystem
	sensor      *SensorSystem
	movement    *MovementSystem
	economy     *EconomySystem
	bonus       *BonusSystem
	waves       *WaveSystem
	ctx         *fakeContext
	state       *StateSystem
	seen        []event.Event
}

// newWorld собирает все системы на одной прямой траектории длиной 1000 вдоль оси X.
func newWorld(t *testing.T, waves ...defs.WaveDefinition) *world {
	t.Helper()
	cfg := config.Default()
	log, hook := test.NewNullLogger()
	w := &world{
		ecs:    entity.NewECS(),
		events: event.NewDispatcher(),
		sched:  timer.NewScheduler(),
		engine: newFakeEngine(),
		lib:    testLibrary(),
		log:    log,
		hook:   hook,
		ctx:    &fakeContext{},
	}
	w.ecs.State = &component.SessionState{Life: cfg.Game.StartLife, Money: cfg.Game.StartMoney, Wave: cfg.Game.StartWave}
	entry := logrus.NewEntry(log)
	paths := []*spline.Polyline{
		spline.NewPolyline(spline.Point{X: 0, Y: 0}, spline.Point{X: 1000, Y: 0}),
		spline.NewPolyline(spline.Point{X: 0, Y: 100}, spline.Point{X: 1000, Y: 100}),
	}

	// наблюдатель подписан первым, чтобы видеть события в порядке отправки
	for _, typ := range []event.EventType{
		event.EnemySpawned, event.EnemyDied, event.EnemyFinished, event.EnemyRemoved, event.DamageDealt,
		event.WaveStarted, event.SubWaveStarted, event.WaveCompleted, event.GameOver,
	} {
		w.events.Subscribe(typ, event.ListenerFunc(func(e event.Event) { w.seen = append(w.seen, e) }))
	}

	w.enemies = NewEnemySystem(w.ecs, w.events, w.sched, w.engine, w.lib, paths, cfg.Sim.ChildProgressOffset, entry)
	w.projectiles = NewProjectileSystem(w.ecs, w.sched, w.enemies)
	w.combat = NewCombatSystem(w.ecs, w.events, w.engine, w.enemies, w.projectiles, cfg.Sim.AimTolerance, entry)
	w.sensor = NewSensorSystem(w.ecs, w.combat, entry)
	w.movement = NewMovementSystem(w.ecs, w.enemies)
	w.economy = NewEconomySystem(w.ecs, w.events, cfg.Game, entry)
	w.bonus = NewBonusSystem(w.ecs, w.events)
	w.waves = NewWaveSystem(w.ecs, w.events, w.sched, w.enemies, waves, StandardPolicy{}, entry)
	w.state = NewStateSystem(w.ecs, w.ctx, w.events)
	return w
}

func (w *world) count(typ event.EventType) int {
	n := 0
	for _, e := range w.seen {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func (w *world) spawn(t *testing.T, typ defs.EnemyType, progress float64) types.EntityID {
	t.Helper()
	id, err := w.enemies.Spawn(typ, 0, progress)
	if err != nil {
		t.Fatalf("Spawn(%s) failed: %v", typ, err)
	}
	return id
}

func (w *world) enemy(t *testing.T, id types.EntityID) *component.Enemy {
	t.Helper()
	e, ok := w.ecs.Enemies.Get(id)
	if !ok {
		t.Fatalf("Enemy %s not found", id)
	}
	return e
}

func (w *world) placeTower(t *testing.T, typ defs.TowerType, pos spline.Point) types.EntityID {
	t.Helper()
	def, ok := w.lib.Tower(typ)
	if !ok {
		t.Fatalf("Unknown tower %s", typ)
	}
	id := w.ecs.NewEntity()
	w.ecs.Towers.Set(id, component.NewTower(&def, hexmap.Hex{}, pos))
	w.ecs.BindHandle(id, w.engine.Spawn(string(typ), pos))
	w.events.Dispatch(event.Event{Type: event.TowerPlaced, Entity: id, Data: event.TowerData{Type: typ, Cost: def.Price}})
	return id
}

func (w *world) tower(t *testing.T, id types.EntityID) *component.Tower {
	t.Helper()
	tw, ok := w.ecs.Towers.Get(id)
	if !ok {
		t.Fatalf("Tower %s not found", id)
	}
	return tw
}
