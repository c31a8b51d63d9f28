package system

import (
	"math/rand"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	EmitterWalking = "walking"
	EmitterJump    = "jump"
	EmitterLand    = "land"
)

// ClassifyEffect labels the frame for feedback. A jump outranks the landing
// it may share a frame with.
func ClassifyEffect(grounded, wasGrounded, jumped bool, direction int) component.EffectState {
	switch {
	case jumped:
		return component.EffectJumping
	case grounded && !wasGrounded:
		return component.EffectLanding
	case grounded && direction != 0:
		return component.EffectWalking
	default:
		return component.EffectIdle
	}
}

// EffectsSystem turns controller output and grounded history into particle
// and footstep cues. It runs before physics, so grounded state is the one the
// controller saw.
type EffectsSystem struct {
	rng *rand.Rand
}

func NewEffectsSystem(rng *rand.Rand) *EffectsSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &EffectsSystem{rng: rng}
}

func (s *EffectsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	emitters := map[string]*component.ParticleEmitter{}
	ecs.ForEach(w, component.ParticleEmitterComponent.Kind(), func(_ ecs.Entity, em *component.ParticleEmitter) {
		if _, seen := emitters[em.Name]; !seen {
			emitters[em.Name] = em
		}
	})

	ecs.ForEach4(w,
		component.PlayerComponent.Kind(),
		component.PlayerControlComponent.Kind(),
		component.PlayerCollisionComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, player *component.Player, control *component.PlayerControl, pc *component.PlayerCollision, t *component.Transform) {
			grounded := pc.Grounded
			control.Effect = ClassifyEffect(grounded, pc.WasGrounded, control.Jumped, control.Direction)

			if walking := emitters[EmitterWalking]; walking != nil {
				if grounded && control.Direction != 0 {
					walking.Follow = uint64(e)
					walking.Config.SpeedX = component.Range{Min: player.ParticleVelocity, Max: player.ParticleVelocity}
					walking.Config.SpeedY = component.Range{}
					walking.Start()
				} else {
					walking.Stop()
				}
			}

			if land := emitters[EmitterLand]; land != nil && pc.Landed() {
				land.EmitAt(t.X+land.OffsetX, t.Y+land.OffsetY)
			}
			if jump := emitters[EmitterJump]; jump != nil && control.Jumped {
				jump.EmitAt(t.X+jump.OffsetX, t.Y+jump.OffsetY)
			}

			s.footstep(w, e, player, control, grounded)
		})
}

func (s *EffectsSystem) footstep(w *ecs.World, e ecs.Entity, player *component.Player, control *component.PlayerControl, grounded bool) {
	stepping := grounded && (control.Direction > 0 || (control.Direction < 0 && player.FootstepLeft))
	if !stepping {
		control.FootstepCooldown = 0
		return
	}
	if control.FootstepCooldown > 0 {
		control.FootstepCooldown--
		if control.FootstepCooldown > 0 {
			return
		}
	}

	variants := player.FootstepVariants
	if variants <= 0 {
		return
	}
	idx := s.rng.Intn(variants)
	control.LastFootstep = idx
	control.FootstepCooldown = player.FootstepIntervalFrames

	if audioComp, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
		audioComp.Request(component.FootstepClipName(idx), player.FootstepVolume)
	}
}
