// internal/entity/ecs.go
package entity

import (
	"go-spline-defense/internal/component"
	"go-spline-defense/internal/types"

	"github.com/google/uuid"
)

// ECS stores every entity of a session. Ids are shared by all tables.
type ECS struct {
	ids         Allocator
	Enemies     *Arena[component.Enemy]
	Towers      *Arena[component.Tower]
	Projectiles *Arena[component.Projectile]
	State       *component.SessionState

	// непрозрачные хэндлы движка -> сущности
	handles  map[uuid.UUID]types.EntityID
	handleOf map[types.EntityID]uuid.UUID
}

func NewECS() *ECS {
	return &ECS{
		Enemies:     NewArena[component.Enemy](),
		Towers:      NewArena[component.Tower](),
		Projectiles: NewArena[component.Projectile](),
		State:       &component.SessionState{},
		handles:     make(map[uuid.UUID]types.EntityID),
		handleOf:    make(map[types.EntityID]uuid.UUID),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	return ecs.ids.New()
}

// Alive reports whether the id has not been destroyed.
func (ecs *ECS) Alive(id types.EntityID) bool {
	return ecs.ids.Alive(id)
}

// Destroy removes the entity from every table, drops its engine handle and invalidates the id.
func (ecs *ECS) Destroy(id types.EntityID) {
	ecs.Enemies.Delete(id)
	ecs.Towers.Delete(id)
	ecs.Projectiles.Delete(id)
	if h, ok := ecs.handleOf[id]; ok {
		delete(ecs.handles, h)
		delete(ecs.handleOf, id)
	}
	ecs.ids.Free(id)
}

// BindHandle records the engine handle of an entity.
func (ecs *ECS) BindHandle(id types.EntityID, h uuid.UUID) {
	if old, ok := ecs.handleOf[id]; ok {
		delete(ecs.handles, old)
	}
	ecs.handles[h] = id
	ecs.handleOf[id] = h
}

// Handle returns the engine handle bound to the entity.
func (ecs *ECS) Handle(id types.EntityID) (uuid.UUID, bool) {
	h, ok := ecs.handleOf[id]
	return h, ok
}

// Resolve maps an engine handle back to a live entity.
func (ecs *ECS) Resolve(h uuid.UUID) (types.EntityID, bool) {
	id, ok := ecs.handles[h]
	if !ok || !ecs.ids.Alive(id) {
		return types.NoEntity, false
	}
	return id, true
}

// Clear drops every entity.
func (ecs *ECS) Clear() {
	for _, id := range ecs.Enemies.IDs() {
		ecs.Destroy(id)
	}
	for _, id := range ecs.Towers.IDs() {
		ecs.Destroy(id)
	}
	for _, id := range ecs.Projectiles.IDs() {
		ecs.Destroy(id)
	}
}
