// internal/app/game.go
package app

import (
	"fmt"
	"math"

	"go-spline-defense/internal/component"
	"go-spline-defense/internal/config"
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/entity"
	"go-spline-defense/internal/event"
	"go-spline-defense/internal/interfaces"
	"go-spline-defense/internal/storage"
	"go-spline-defense/internal/system"
	"go-spline-defense/internal/timer"
	"go-spline-defense/internal/types"
	"go-spline-defense/internal/utils"
	"go-spline-defense/pkg/hexmap"
	"go-spline-defense/pkg/spline"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Game is the context of one session: its systems, scaled time and speed.
type Game struct {
	ID      uuid.UUID
	Level   defs.LevelDefinition
	Library *defs.Library
	Config  *config.Config
	Log     *logrus.Entry
	Engine  interfaces.Engine
	Grid    *hexmap.Grid
	Paths   []*spline.Polyline

	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Scheduler          *timer.Scheduler
	Rng                *utils.PRNGService
	EnemySystem        *system.EnemySystem
	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	SensorSystem       *system.SensorSystem
	MovementSystem     *system.MovementSystem
	BonusSystem        *system.BonusSystem
	EconomySystem      *system.EconomySystem
	WaveSystem         *system.WaveSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	// Game state
	accumulator float64
	speedIndex  int
	isPaused    bool
	closed      bool
}

// NewGame initializes a new session on the level. A nil engine selects the headless one.
func NewGame(cfg *config.Config, lib *defs.Library, level *defs.LevelDefinition, engine interfaces.Engine, log *logrus.Logger) *Game {
	if level == nil {
		panic("level cannot be nil")
	}
	if engine == nil {
		engine = NewHeadlessEngine(lib)
	}

	id := uuid.New()
	entry := log.WithFields(logrus.Fields{"session": id.String(), "level": level.Name})
	paths := level.Paths()
	grid := hexmap.NewGrid(level.Grid.Radius, level.Grid.HexSize, spline.Point{X: level.Grid.OriginX, Y: level.Grid.OriginY})
	grid.BlockNear(paths, level.Grid.PathClearance)

	ecs := entity.NewECS()
	ecs.State = &component.SessionState{
		Life:  cfg.Game.StartLife,
		Money: cfg.Game.StartMoney,
		Wave:  cfg.Game.StartWave,
	}
	eventDispatcher := event.NewDispatcher()
	sched := timer.NewScheduler()

	g := &Game{
		ID:              id,
		Level:           *level,
		Library:         lib,
		Config:          cfg,
		Log:             entry,
		Engine:          engine,
		Grid:            grid,
		Paths:           paths,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Scheduler:       sched,
		Rng:             utils.NewPRNGService(cfg.Sim.Seed),
	}
	g.EnemySystem = system.NewEnemySystem(ecs, eventDispatcher, sched, engine, lib, paths, cfg.Sim.ChildProgressOffset, entry)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, sched, g.EnemySystem)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, engine, g.EnemySystem, g.ProjectileSystem, cfg.Sim.AimTolerance, entry)
	g.SensorSystem = system.NewSensorSystem(ecs, g.CombatSystem, entry)
	g.MovementSystem = system.NewMovementSystem(ecs, g.EnemySystem)
	g.BonusSystem = system.NewBonusSystem(ecs, eventDispatcher)
	g.EconomySystem = system.NewEconomySystem(ecs, eventDispatcher, cfg.Game, entry)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, sched, g.EnemySystem, level.Waves,
		system.NewWavePolicy(cfg.Waves), entry)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(eventDispatcher, g.Rng)

	entry.Info("session created")
	return g
}

// NewGameFromSave rebuilds a session from a level save. Towers standing on cells that are
// no longer buildable are skipped with a warning.
func NewGameFromSave(cfg *config.Config, lib *defs.Library, level *defs.LevelDefinition, engine interfaces.Engine,
	log *logrus.Logger, data storage.LevelData) (*Game, error) {
	g := NewGame(cfg, lib, level, engine, log)
	st := g.ECS.State
	st.Life, st.Money, st.Wave = data.Life, data.Money, data.Wave
	if st.Life <= 0 {
		g.Close()
		return nil, fmt.Errorf("%w: save has no life left", storage.ErrMalformedSave)
	}

	for _, td := range data.Towers {
		hex := g.Grid.HexAt(spline.Point{X: td.X, Y: td.Y})
		id, err := g.buildTower(td.Type, hex)
		if err != nil {
			g.Log.WithError(err).WithField("tower", td.Type).Warn("saved tower skipped")
			continue
		}
		tower, _ := g.ECS.Towers.Get(id)
		if td.AttackStyle != "" && tower.Combat != nil {
			tower.AttackStyle = td.AttackStyle
		}
	}
	return g, nil
}

// Update progresses the session by one frame of real time.
func (g *Game) Update(deltaTime float64) {
	if g.closed {
		return
	}
	dt := math.Max(0, math.Min(deltaTime, g.Config.Sim.MaxFrameDelta))
	scale := g.TimeScale()

	g.Scheduler.Advance(dt * scale)
	g.accumulator += dt
	step := g.Config.Sim.FixedStep
	for g.accumulator >= step {
		g.accumulator -= step
		// поражение или пауза посреди кадра останавливают оставшиеся шаги
		scale = g.TimeScale()
		if scale == 0 {
			g.accumulator = 0
			break
		}
		g.fixedUpdate(step * scale)
	}
	if !g.IsGameOver() {
		g.WaveSystem.CheckCompletion()
	}
	g.VisualEffectSystem.Update(dt * scale)
}

// fixedUpdate runs one physics step: motion, range sensors, then towers.
func (g *Game) fixedUpdate(dt float64) {
	if dt <= 0 {
		return
	}
	g.MovementSystem.Update(dt)
	if g.IsGameOver() {
		return
	}
	g.SensorSystem.Update()
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
}

// StartWave begins the next enemy wave.
func (g *Game) StartWave() error {
	return g.WaveSystem.StartWave()
}

// --- Speed & pause ---

// TimeScale returns the factor applied to real time, 0 while paused.
func (g *Game) TimeScale() float64 {
	if g.isPaused {
		return 0
	}
	return g.Speed()
}

// Speed returns the selected speed, remembered across pauses.
func (g *Game) Speed() float64 {
	return g.Config.Game.Speeds[g.speedIndex]
}

// SetSpeed selects one of the configured speeds.
func (g *Game) SetSpeed(index int) error {
	if index < 0 || index >= len(g.Config.Game.Speeds) {
		return fmt.Errorf("speed index %d out of range [0, %d)", index, len(g.Config.Game.Speeds))
	}
	g.speedIndex = index
	return nil
}

// CycleSpeed selects the next configured speed and returns it.
func (g *Game) CycleSpeed() float64 {
	g.speedIndex = (g.speedIndex + 1) % len(g.Config.Game.Speeds)
	return g.Speed()
}

func (g *Game) Pause() {
	g.isPaused = true
}

// Resume restarts time unless the game is over.
func (g *Game) Resume() {
	if g.ECS.State.GameOver {
		return
	}
	g.isPaused = false
}

// IsPaused reports whether time is stopped.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

// --- Public Accessors ---

func (g *Game) State() component.SessionState {
	return *g.ECS.State
}

func (g *Game) IsGameOver() bool {
	return g.ECS.State.GameOver
}

// Snapshot returns the persisted form of the session.
func (g *Game) Snapshot() storage.LevelData {
	st := g.ECS.State
	data := storage.LevelData{Life: st.Life, Money: st.Money, Wave: st.Wave}
	for _, id := range g.ECS.Towers.IDs() {
		t, _ := g.ECS.Towers.Get(id)
		td := storage.TowerData{Type: t.Type, X: t.Position.X, Y: t.Position.Y}
		if t.Combat != nil {
			td.AttackStyle = t.AttackStyle
		}
		data.Towers = append(data.Towers, td)
	}
	return data
}

// Close removes every entity and stops all pending tasks. The session is unusable after.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.WaveSystem.Reset()
	g.ProjectileSystem.Clear()
	g.EnemySystem.Clear()
	for _, id := range g.ECS.Towers.IDs() {
		g.removeTower(id)
	}
	g.SensorSystem.Clear()
	g.VisualEffectSystem.Clear()
	g.Scheduler.Clear()
	g.ECS.Clear()
	g.closed = true
	g.Log.Info("session closed")
}

// Enemies returns the live enemy ids in a stable order.
func (g *Game) Enemies() []types.EntityID {
	return g.ECS.Enemies.IDs()
}
