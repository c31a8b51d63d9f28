package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/prefabs"
)

// NewPlayerEffects creates the walking, jump and land emitters for player
// from prefabs/effects.yaml.
func NewPlayerEffects(w *ecs.World, player ecs.Entity, loaders Loaders) error {
	spec, err := prefabs.LoadEffectsSpec()
	if err != nil {
		return fmt.Errorf("effects: %w", err)
	}

	bodyW, bodyH := 0.0, 0.0
	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok {
		bodyW, bodyH = body.Width, body.Height
	}

	emitters := []struct {
		name string
		spec prefabs.EmitterSpec
	}{
		{system.EmitterWalking, spec.Walking},
		{system.EmitterJump, spec.Jump},
		{system.EmitterLand, spec.Land},
	}
	for _, item := range emitters {
		cfg, err := emitterConfig(item.spec, loaders)
		if err != nil {
			return fmt.Errorf("effects: %s: %w", item.name, err)
		}
		em := &component.ParticleEmitter{Name: item.name, Config: cfg}
		if item.name == system.EmitterWalking {
			em.Follow = uint64(player)
			em.OffsetX = bodyW/2 + item.spec.FollowOffset.X
			em.OffsetY = bodyH/2 + item.spec.FollowOffset.Y
		} else {
			em.OffsetX = item.spec.BurstOffset.X
			em.OffsetY = item.spec.BurstOffset.Y
		}

		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.ParticleEmitterComponent.Kind(), em); err != nil {
			return fmt.Errorf("effects: add %s emitter: %w", item.name, err)
		}
	}
	return nil
}

func emitterConfig(spec prefabs.EmitterSpec, loaders Loaders) (component.EmitterConfig, error) {
	if spec.LifespanMS <= 0 {
		return component.EmitterConfig{}, fmt.Errorf("lifespan_ms must be positive, got %d", spec.LifespanMS)
	}

	frames := make([]*ebiten.Image, 0, len(spec.Frames))
	for _, path := range spec.Frames {
		img, err := loaders.image(path)
		if err != nil {
			return component.EmitterConfig{}, fmt.Errorf("load frame %q: %w", path, err)
		}
		if img != nil {
			frames = append(frames, img)
		}
	}

	quantity := spec.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	return component.EmitterConfig{
		Frames:     frames,
		ScaleStart: spec.Scale.Start,
		ScaleEnd:   spec.Scale.End,
		AlphaStart: spec.Alpha.Start,
		AlphaEnd:   spec.Alpha.End,
		LifeFrames: lifeFrames(spec.LifespanMS),
		SpeedX:     component.Range{Min: spec.SpeedX.Min, Max: spec.SpeedX.Max},
		SpeedY:     component.Range{Min: spec.SpeedY.Min, Max: spec.SpeedY.Max},
		GravityY:   spec.GravityY,
		Quantity:   quantity,
		MaxAlive:   spec.MaxAlive,
	}, nil
}

// lifeFrames converts a lifespan to ticks, never below one.
func lifeFrames(ms int) int {
	n := ms * common.TPS / 1000
	if n < 1 {
		n = 1
	}
	return n
}
