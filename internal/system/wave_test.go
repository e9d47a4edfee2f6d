package system

import (
	"errors"
	"testing"

	"go-spline-defense/internal/component"
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/event"
)

func goblins(count int, delay float64) defs.WaveDefinition {
	return defs.WaveDefinition{Parts: []defs.WavePart{{Enemy: defs.EnemyGoblin, Count: count, Delay: delay}}}
}

func TestWaveCompletesWhenPopulationEmpties(t *testing.T) {
	w := newWorld(t, goblins(3, 1))
	if err := w.waves.StartWave(); err != nil {
		t.Fatalf("StartWave failed: %v", err)
	}
	if err := w.waves.StartWave(); !errors.Is(err, ErrWaveInProgress) {
		t.Errorf("Expected ErrWaveInProgress, got %v", err)
	}
	if w.ecs.State.Phase != component.WavePhase {
		t.Errorf("Expected the wave phase, got %v", w.ecs.State.Phase)
	}

	w.sched.Advance(0.5)
	if w.ecs.Enemies.Len() != 0 {
		t.Fatal("Expected the first enemy to wait for its delay")
	}
	for i := 0; i < 3; i++ {
		w.sched.Advance(1)
	}
	if got := w.waves.Population(); got != 3 {
		t.Fatalf("Expected population 3, got %d", got)
	}
	if got := w.waves.State(); got != WaveDraining {
		t.Fatalf("Expected draining after the last spawn, got %s", got)
	}

	ids := w.ecs.Enemies.IDs()
	// траектории выбираются по кругу
	if w.enemy(t, ids[0]).Trajectory != 0 || w.enemy(t, ids[1]).Trajectory != 1 || w.enemy(t, ids[2]).Trajectory != 0 {
		t.Error("Expected round-robin trajectories 0, 1, 0")
	}

	w.enemies.Kill(ids[0])
	w.enemies.Kill(ids[1])
	w.sched.Advance(0)
	if n := w.count(event.WaveCompleted); n != 0 {
		t.Fatalf("Expected the wave to wait for the last enemy, got %d completions", n)
	}
	w.enemies.Finish(ids[2])

	if n := w.count(event.WaveCompleted); n != 1 {
		t.Fatalf("Expected exactly one WaveCompleted, got %d", n)
	}
	st := w.ecs.State
	if st.Wave != 2 || st.Life != 97 || st.Money != 400+5+5+102 {
		t.Errorf("Expected wave 2, life 97, money 512, got %+v", *st)
	}
	if st.Phase != component.BuildPhase || !w.waves.IsIdle() {
		t.Errorf("Expected the build phase and an idle scheduler, got %v/%s", st.Phase, w.waves.State())
	}

	w.enemies.Clear()
	w.waves.CheckCompletion()
	if n := w.count(event.WaveCompleted); n != 1 {
		t.Errorf("Expected no duplicate completion, got %d", n)
	}
}

func TestChildrenKeepWaveOpen(t *testing.T) {
	w := newWorld(t, defs.WaveDefinition{Parts: []defs.WavePart{{Enemy: defs.EnemySlime, Count: 1}}})
	if err := w.waves.StartWave(); err != nil {
		t.Fatal(err)
	}
	w.sched.Advance(0)
	slime := w.ecs.Enemies.IDs()[0]
	w.enemies.Kill(slime)
	if got := w.waves.Population(); got != 2 {
		t.Fatalf("Expected the two children counted, got %d", got)
	}
	if n := w.count(event.WaveCompleted); n != 0 {
		t.Fatal("Expected the wave to stay open while children live")
	}
	w.sched.Advance(0)
	for _, id := range w.ecs.Enemies.IDs() {
		w.enemies.Kill(id)
	}
	if n := w.count(event.WaveCompleted); n != 1 {
		t.Errorf("Expected completion after the children, got %d", n)
	}
}

func TestZeroDelayPartsSpawnTogether(t *testing.T) {
	w := newWorld(t, goblins(4, 0))
	if err := w.waves.StartWave(); err != nil {
		t.Fatal(err)
	}
	w.sched.Advance(0)
	if got := w.ecs.Enemies.Len(); got != 4 {
		t.Errorf("Expected all four enemies at once, got %d", got)
	}
}

func TestInfiniteWaveRunsSubWavesUntilGameOver(t *testing.T) {
	inf := goblins(1, 1)
	inf.Infinite = true
	w := newWorld(t, inf)
	if err := w.waves.StartWave(); err != nil {
		t.Fatal(err)
	}

	w.sched.Advance(1)
	w.sched.Advance(1)
	if n := w.count(event.SubWaveStarted); n != 2 {
		t.Fatalf("Expected two sub-waves, got %d", n)
	}
	if w.ecs.State.Wave != 3 || w.waves.Current() != 3 {
		t.Errorf("Expected wave 3, got state %d current %d", w.ecs.State.Wave, w.waves.Current())
	}

	w.economy.LoseLife(1000)
	if !w.ecs.State.GameOver || !w.ctx.paused {
		t.Fatal("Expected game over to pause the session")
	}
	w.sched.Advance(10)
	if got := w.ecs.Enemies.Len(); got != 2 {
		t.Errorf("Expected spawning to stop at game over, got %d enemies", got)
	}
	if err := w.waves.StartWave(); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}
	if w.ecs.State.Phase != component.GameOverPhase {
		t.Errorf("Expected the game over phase, got %v", w.ecs.State.Phase)
	}
}

func TestWavePolicies(t *testing.T) {
	waves := []defs.WaveDefinition{goblins(1, 1), goblins(2, 1), goblins(3, 1)}

	std := StandardPolicy{}
	if got := std.Resolve(waves, 2).Total(); got != 2 {
		t.Errorf("Standard wave 2: expected 2 enemies, got %d", got)
	}
	if got := std.Resolve(waves, 9).Total(); got != 3 {
		t.Errorf("Standard wave 9: expected the last definition, got %d", got)
	}

	proj := ProjectedPolicy{Factor: 0.5}
	tests := []struct {
		n     int
		total int
		delay float64
	}{
		{1, 1, 1},
		{2, 2, 1},
		{3, 4, 0.5},
		{4, 3, 1},
		{5, 6, 0.5},
		{20, 3, 1},
	}
	for _, tt := range tests {
		def := proj.Resolve(waves, tt.n)
		if def.Total() != tt.total || def.Parts[0].Delay != tt.delay {
			t.Errorf("Projected wave %d: expected %d/%v, got %d/%v", tt.n, tt.total, tt.delay, def.Total(), def.Parts[0].Delay)
		}
	}
	if waves[1].Parts[0].Count != 2 {
		t.Error("Expected the projection to leave the definitions untouched")
	}
}
