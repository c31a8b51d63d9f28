package system

import (
	"math"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PickupHoverSystem bobs collectible sprites. Only the sprite origin moves,
// so the overlap box stays on the grid.
type PickupHoverSystem struct{}

func NewPickupHoverSystem() *PickupHoverSystem { return &PickupHoverSystem{} }

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, sprite *component.Sprite) {
		if pickup.BobAmplitude == 0 || pickup.BobSpeed == 0 {
			return
		}
		if !pickup.Initialized {
			pickup.BaseOriginY = sprite.OriginY
			pickup.Initialized = true
		}

		pickup.BobPhase += pickup.BobSpeed
		sprite.OriginY = pickup.BaseOriginY + math.Sin(pickup.BobPhase)*pickup.BobAmplitude
	})
}
