// internal/app/engine.go
package app

import (
	"go-spline-defense/internal/defs"
	"go-spline-defense/pkg/spline"

	"github.com/google/uuid"
)

// EngineObject is what the engine knows about an object: kind, spawn point and last clip.
type EngineObject struct {
	Kind     string
	Position spline.Point
	Clip     string
}

// HeadlessEngine is the engine collaborator without a scene: it hands out uuid handles and
// answers clip durations from the enemy definitions.
type HeadlessEngine struct {
	lib     *defs.Library
	objects map[uuid.UUID]*EngineObject
}

func NewHeadlessEngine(lib *defs.Library) *HeadlessEngine {
	return &HeadlessEngine{
		lib:     lib,
		objects: make(map[uuid.UUID]*EngineObject),
	}
}

func (e *HeadlessEngine) Spawn(kind string, pos spline.Point) uuid.UUID {
	h := uuid.New()
	e.objects[h] = &EngineObject{Kind: kind, Position: pos}
	return h
}

func (e *HeadlessEngine) Despawn(h uuid.UUID) {
	delete(e.objects, h)
}

func (e *HeadlessEngine) Play(h uuid.UUID, clip string) {
	if o, ok := e.objects[h]; ok {
		o.Clip = clip
	}
}

func (e *HeadlessEngine) ClipDuration(h uuid.UUID, clip string) float64 {
	o, ok := e.objects[h]
	if !ok {
		return 0
	}
	t, _ := defs.ParseEnemyType(o.Kind)
	if string(t) != o.Kind {
		return 0
	}
	def, ok := e.lib.Enemy(t)
	if !ok {
		return 0
	}
	return def.Clips[clip]
}

// Object returns the engine view of a handle.
func (e *HeadlessEngine) Object(h uuid.UUID) (EngineObject, bool) {
	o, ok := e.objects[h]
	if !ok {
		return EngineObject{}, false
	}
	return *o, true
}

// Len returns the number of live engine objects.
func (e *HeadlessEngine) Len() int {
	return len(e.objects)
}
