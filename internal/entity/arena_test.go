package entity

import (
	"reflect"
	"testing"

	"go-spline-defense/internal/component"
	"go-spline-defense/internal/types"

	"github.com/google/uuid"
)

func TestStaleIDNeverResolves(t *testing.T) {
	ecs := NewECS()
	first := ecs.NewEntity()
	ecs.Towers.Set(first, &component.Tower{})

	ecs.Destroy(first)
	second := ecs.NewEntity()
	ecs.Towers.Set(second, &component.Tower{})

	if first.Index() != second.Index() {
		t.Fatalf("Expected slot reuse, got %v and %v", first, second)
	}
	if first == second {
		t.Fatal("Expected a new generation for the reused slot")
	}
	if _, ok := ecs.Towers.Get(first); ok {
		t.Error("Expected the stale id to resolve to nothing")
	}
	if ecs.Alive(first) || !ecs.Alive(second) {
		t.Error("Unexpected liveness")
	}
}

func TestArenaIterationOrderAndLen(t *testing.T) {
	a := NewArena[int]()
	ids := []types.EntityID{types.NewEntityID(4, 1), types.NewEntityID(0, 1), types.NewEntityID(2, 3)}
	for i, id := range ids {
		v := i
		a.Set(id, &v)
	}
	want := []types.EntityID{types.NewEntityID(0, 1), types.NewEntityID(2, 3), types.NewEntityID(4, 1)}
	if got := a.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	a.Delete(types.NewEntityID(2, 3))
	if a.Len() != 2 {
		t.Errorf("Expected 2 rows, got %d", a.Len())
	}
	count := 0
	a.Each(func(id types.EntityID, v *int) {
		// удаление во время обхода допустимо
		a.Delete(id)
		count++
	})
	if count != 2 || a.Len() != 0 {
		t.Errorf("Expected to visit and delete 2 rows, visited %d, left %d", count, a.Len())
	}
}

func TestHandleBinding(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Enemies.Set(id, &component.Enemy{})
	h := uuid.New()
	ecs.BindHandle(id, h)

	if got, ok := ecs.Resolve(h); !ok || got != id {
		t.Fatalf("Expected %v, got %v (ok=%v)", id, got, ok)
	}
	ecs.Destroy(id)
	if _, ok := ecs.Resolve(h); ok {
		t.Error("Expected the handle to stop resolving after destroy")
	}
	if _, ok := ecs.Resolve(uuid.New()); ok {
		t.Error("Expected an unknown handle to fail")
	}
}

func TestClearDropsEntitiesAndHandles(t *testing.T) {
	ecs := NewECS()
	enemy, tower, shot := ecs.NewEntity(), ecs.NewEntity(), ecs.NewEntity()
	ecs.Enemies.Set(enemy, &component.Enemy{})
	ecs.Towers.Set(tower, &component.Tower{})
	ecs.Projectiles.Set(shot, &component.Projectile{})
	h := uuid.New()
	ecs.BindHandle(enemy, h)

	ecs.Clear()
	if ecs.Enemies.Len()+ecs.Towers.Len()+ecs.Projectiles.Len() != 0 {
		t.Error("Expected every table empty")
	}
	if _, ok := ecs.Resolve(h); ok {
		t.Error("Expected the engine handle dropped")
	}
	for _, id := range []types.EntityID{enemy, tower, shot} {
		if ecs.Alive(id) {
			t.Errorf("Expected %s invalidated", id)
		}
	}
}
