package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// DebugToggleSystem flips physics debug drawing on each D press.
type DebugToggleSystem struct{}

func NewDebugToggleSystem() *DebugToggleSystem { return &DebugToggleSystem{} }

func (s *DebugToggleSystem) Update(w *ecs.World) {
	if w == nil || !anyPressed(w, func(b component.Buttons) bool { return b.Debug }) {
		return
	}

	e, ok := ecs.First(w, component.DebugDrawComponent.Kind())
	if !ok {
		e = ecs.CreateEntity(w)
		ecs.MustAdd(w, e, component.DebugDrawComponent.Kind(), &component.DebugDraw{}, "debug toggle system")
	}
	dbg, _ := ecs.Get(w, e, component.DebugDrawComponent.Kind())
	dbg.Physics = !dbg.Physics
}

// PhysicsDebugEnabled reports whether physics debug drawing is on.
func PhysicsDebugEnabled(w *ecs.World) bool {
	if w == nil {
		return false
	}
	e, ok := ecs.First(w, component.DebugDrawComponent.Kind())
	if !ok {
		return false
	}
	dbg, ok := ecs.Get(w, e, component.DebugDrawComponent.Kind())
	return ok && dbg.Physics
}

func anyPressed(w *ecs.World, pick func(component.Buttons) bool) bool {
	pressed := false
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		if pick(input.Pressed) {
			pressed = true
		}
	})
	return pressed
}
