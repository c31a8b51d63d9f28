package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type aabb struct {
	x, y, w, h float64
}

// intersects treats touching edges as apart.
func (a aabb) intersects(b aabb) bool {
	return a.x < b.x+b.w && b.x < a.x+a.w && a.y < b.y+b.h && b.y < a.y+a.h
}

// PlayerBounds returns the player collider box in world space.
func PlayerBounds(w *ecs.World, e ecs.Entity) (x, y, width, height float64, ok bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, 0, 0, false
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || body.Width <= 0 || body.Height <= 0 {
		return 0, 0, 0, 0, false
	}
	x = t.X + body.OffsetX
	y = t.Y + body.OffsetY
	if !body.AlignTopLeft {
		x -= body.Width / 2
		y -= body.Height / 2
	}
	return x, y, body.Width, body.Height, true
}

func triggerBounds(t *component.Transform, tr *component.Trigger) aabb {
	return aabb{x: t.X + tr.OffsetX, y: t.Y + tr.OffsetY, w: tr.Width, h: tr.Height}
}

// OverlapPairs returns every live player/trigger pair of group whose boxes
// intersect, ordered by trigger entity.
func OverlapPairs(w *ecs.World, group string) []ecs.OverlapEvent {
	if w == nil {
		return nil
	}
	var pairs []ecs.OverlapEvent
	for _, player := range w.Query(component.PlayerTagComponent.Kind()) {
		px, py, pw, ph, ok := PlayerBounds(w, player)
		if !ok {
			continue
		}
		pb := aabb{x: px, y: py, w: pw, h: ph}
		ecs.ForEach2(w, component.TriggerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tr *component.Trigger, t *component.Transform) {
			if tr.Group != group || tr.Width <= 0 || tr.Height <= 0 {
				return
			}
			if pb.intersects(triggerBounds(t, tr)) {
				pairs = append(pairs, ecs.OverlapEvent{Player: player, Trigger: e, Group: group})
			}
		})
	}
	return pairs
}

// OverlapSystem runs one pair query per trigger group after physics and
// publishes the results as overlap events for the rest of the frame.
type OverlapSystem struct {
	groups []string
}

func NewOverlapSystem(groups ...string) *OverlapSystem {
	if len(groups) == 0 {
		groups = []string{component.TriggerGroupPickup, component.TriggerGroupGoal}
	}
	return &OverlapSystem{groups: groups}
}

func (s *OverlapSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, group := range s.groups {
		for _, pair := range OverlapPairs(w, group) {
			w.Events().Push(ecs.Event{Type: ecs.EventOverlap, Data: pair})
		}
	}
}

func eachOverlap(w *ecs.World, group string, fn func(ecs.OverlapEvent)) {
	w.Events().Each(ecs.EventOverlap, func(evt ecs.Event) {
		pair, ok := evt.Data.(ecs.OverlapEvent)
		if !ok || pair.Group != group {
			return
		}
		fn(pair)
	})
}
