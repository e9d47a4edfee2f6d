package system

import (
	"errors"
	"math"
	"testing"

	"go-spline-defense/internal/component"
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/event"
	"go-spline-defense/internal/types"
)

func TestSpawnRejectsUnknownEnemy(t *testing.T) {
	w := newWorld(t)
	if _, err := w.enemies.Spawn(defs.EnemyGolem, 0, 0); !errors.Is(err, ErrUnknownEnemy) {
		t.Fatalf("Expected ErrUnknownEnemy, got %v", err)
	}
	if _, err := w.enemies.Spawn(defs.EnemyGoblin, 5, 0); err == nil {
		t.Fatal("Expected an error for a trajectory out of range")
	}
	if w.ecs.Enemies.Len() != 0 {
		t.Errorf("Expected no enemies, got %d", w.ecs.Enemies.Len())
	}
}

func TestEnemyDiesOnceAndIgnoresLateDamage(t *testing.T) {
	w := newWorld(t)
	w.engine.clips[defs.ClipDeath] = 0.5
	id := w.spawn(t, defs.EnemyGoblin, 0.3)

	if !w.enemies.TakeDamage(id, Damage{Amount: 6, Type: defs.DamageClassic}, types.NoEntity) {
		t.Fatal("Expected the first hit to land")
	}
	if !w.enemies.TakeDamage(id, Damage{Amount: 6, Type: defs.DamageClassic}, types.NoEntity) {
		t.Fatal("Expected the killing hit to land")
	}
	if w.enemies.TakeDamage(id, Damage{Amount: 6, Type: defs.DamageClassic}, types.NoEntity) {
		t.Error("Expected damage on a dying enemy to be dropped")
	}
	if got := w.enemy(t, id).State(); got != component.EnemyDying {
		t.Errorf("Expected dying state, got %s", got)
	}
	if n := w.count(event.EnemyDied); n != 1 {
		t.Errorf("Expected exactly one EnemyDied, got %d", n)
	}
	if n := w.count(event.DamageDealt); n != 2 {
		t.Errorf("Expected two DamageDealt events, got %d", n)
	}

	// удаление ждёт длительность клипа смерти
	w.sched.Advance(0.4)
	if !w.ecs.Enemies.Has(id) {
		t.Fatal("Expected the enemy to stay until the death clip ends")
	}
	w.sched.Advance(0.2)
	if w.ecs.Enemies.Has(id) || w.ecs.Alive(id) {
		t.Error("Expected the enemy to be removed after the death clip")
	}
	if w.engine.despawned != 1 || len(w.engine.live) != 0 {
		t.Errorf("Expected the engine object despawned, live=%d", len(w.engine.live))
	}
	if n := w.count(event.EnemyRemoved); n != 1 {
		t.Errorf("Expected one EnemyRemoved, got %d", n)
	}
}

func TestDeathDelayFreezesWhilePaused(t *testing.T) {
	w := newWorld(t)
	w.engine.clips[defs.ClipDeath] = 1
	id := w.spawn(t, defs.EnemyGoblin, 0.3)
	w.enemies.Kill(id)

	for i := 0; i < 500; i++ {
		w.sched.Advance(0)
		w.movement.Update(0)
	}
	if !w.ecs.Enemies.Has(id) {
		t.Fatal("Expected the dying enemy to stay while time is frozen")
	}
	w.sched.Advance(1)
	if w.ecs.Enemies.Has(id) {
		t.Error("Expected removal once scaled time caught up")
	}
}

func TestWeaknessAppliedOnHit(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, defs.EnemyGoblin, 0.1)
	w.enemies.TakeDamage(id, Damage{Amount: 4, Type: defs.DamageFire}, types.NoEntity)
	if got := w.enemy(t, id).Life; got != 4 {
		t.Errorf("Expected life 10 - int(4×1.5) = 4, got %v", got)
	}
	w.enemies.TakeDamage(id, Damage{Amount: 100, Type: defs.DamagePoison}, types.NoEntity)
	if !w.enemy(t, id).IsAlive() {
		t.Error("Expected immunity to poison")
	}
	last := w.seen[len(w.seen)-1].Data.(event.DamageDealtData)
	if last.Rank != defs.RankNone || last.Amount != 0 {
		t.Errorf("Expected a zero None hit, got %+v", last)
	}
}

func TestChildrenSpawnBeforeDeathBehindParent(t *testing.T) {
	w := newWorld(t)
	parent := w.spawn(t, defs.EnemySlime, 0.5)
	w.seen = nil
	w.enemies.Kill(parent)

	var order []event.EventType
	var progress []float64
	for _, e := range w.seen {
		switch e.Type {
		case event.EnemySpawned:
			order = append(order, e.Type)
			progress = append(progress, e.Data.(event.EnemySpawnedData).Progress)
		case event.EnemyDied:
			order = append(order, e.Type)
		}
	}
	want := []event.EventType{event.EnemySpawned, event.EnemySpawned, event.EnemyDied}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, order)
		}
	}
	if math.Abs(progress[0]-0.5) > 1e-9 || math.Abs(progress[1]-0.495) > 1e-9 {
		t.Errorf("Expected children at 0.5 and 0.495, got %v", progress)
	}
	died := w.seen[len(w.seen)-1].Data.(event.EnemyDiedData)
	if len(died.Children) != 2 || died.Reward != 4 {
		t.Errorf("Expected two children and reward 4, got %+v", died)
	}
}

func TestChildProgressClampedAtStart(t *testing.T) {
	w := newWorld(t)
	parent := w.spawn(t, defs.EnemySlime, 0.002)
	w.enemies.Kill(parent)
	for _, id := range w.ecs.Enemies.IDs() {
		e := w.enemy(t, id)
		if e.Type == defs.EnemySmallSlime && e.Progress < 0 {
			t.Errorf("Expected progress clamped to 0, got %v", e.Progress)
		}
	}
}

func TestSpawnerSummonsWhileAlive(t *testing.T) {
	w := newWorld(t)
	w.engine.clips[defs.ClipSummon] = 1
	nest := w.spawn(t, defs.EnemyNest, 0.5)

	w.sched.Advance(0)
	if w.ecs.Enemies.Len() != 1 {
		t.Fatalf("Expected the summon clip to play before anything appears, got %d enemies", w.ecs.Enemies.Len())
	}
	w.sched.Advance(1)
	if w.ecs.Enemies.Len() != 3 {
		t.Fatalf("Expected two summoned enemies, got %d", w.ecs.Enemies.Len()-1)
	}
	var behind int
	for _, id := range w.ecs.Enemies.IDs() {
		if e := w.enemy(t, id); e.Type == defs.EnemySmallSlime && e.Progress < 0.5 {
			behind++
		}
	}
	if behind != 2 {
		t.Errorf("Expected summons behind the nest, got %d", behind)
	}

	w.sched.Advance(5)
	if w.ecs.Enemies.Len() != 3 {
		t.Fatalf("Expected the next cast to start after the interval, got %d", w.ecs.Enemies.Len())
	}
	w.sched.Advance(1)
	if w.ecs.Enemies.Len() != 5 {
		t.Fatalf("Expected a second summon, got %d enemies", w.ecs.Enemies.Len())
	}

	w.enemies.Kill(nest)
	w.sched.Advance(30)
	if w.ecs.Enemies.Len() != 4 {
		t.Errorf("Expected summoning to stop with the nest, got %d enemies", w.ecs.Enemies.Len())
	}
}

func TestMovementFinishesEnemy(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, defs.EnemyGoblin, 0.95)

	w.movement.Update(0.25)
	if e := w.enemy(t, id); math.Abs(e.Position.X-975) > 1e-6 {
		t.Fatalf("Expected x=975 after a quarter second, got %v", e.Position.X)
	}
	w.movement.Update(0.5)
	if w.ecs.Enemies.Has(id) {
		t.Fatal("Expected a finished enemy to be removed immediately")
	}
	if n := w.count(event.EnemyFinished); n != 1 {
		t.Errorf("Expected one EnemyFinished, got %d", n)
	}
	if n := w.count(event.EnemyDied); n != 0 {
		t.Errorf("Expected no EnemyDied for a leak, got %d", n)
	}
	if w.ecs.State.Life != 97 {
		t.Errorf("Expected life 97 after the leak, got %d", w.ecs.State.Life)
	}
}

func TestClearRemovesAliveEnemies(t *testing.T) {
	w := newWorld(t)
	w.spawn(t, defs.EnemyGoblin, 0.1)
	w.spawn(t, defs.EnemyNest, 0.2)
	w.enemies.Clear()
	if w.ecs.Enemies.Len() != 0 || len(w.engine.live) != 0 {
		t.Errorf("Expected an empty world, enemies=%d live=%d", w.ecs.Enemies.Len(), len(w.engine.live))
	}
	w.sched.Advance(100)
	if w.ecs.Enemies.Len() != 0 {
		t.Errorf("Expected summon loops to end with their owner, got %d", w.ecs.Enemies.Len())
	}
}
