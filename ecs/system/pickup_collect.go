package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PickupCollectSystem destroys collectibles the player overlapped this frame.
type PickupCollectSystem struct {
	collected int
}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

// Collected is the number of pickups destroyed since the system was created.
func (s *PickupCollectSystem) Collected() int { return s.collected }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	eachOverlap(w, component.TriggerGroupPickup, func(pair ecs.OverlapEvent) {
		if !ecs.Has(w, pair.Trigger, component.PickupComponent.Kind()) {
			return
		}
		if ecs.DestroyEntity(w, pair.Trigger) {
			s.collected++
		}
	})
}
