package system

import (
	"math/rand"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ParticleSystem ages live particles, then launches new ones from streams
// and queued bursts.
type ParticleSystem struct {
	rng *rand.Rand
	dt  float64
}

func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &ParticleSystem{rng: rng, dt: common.DT}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	s.step(w)

	ecs.ForEach(w, component.ParticleEmitterComponent.Kind(), func(e ecs.Entity, em *component.ParticleEmitter) {
		if em.On {
			if x, y, ok := followPosition(w, em); ok {
				s.launch(w, e, em, x, y)
			}
		}
		for _, b := range em.Bursts {
			s.launch(w, e, em, b.X, b.Y)
		}
		em.Bursts = em.Bursts[:0]
	})
}

func (s *ParticleSystem) step(w *ecs.World) {
	ecs.ForEach3(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, p *component.Particle, t *component.Transform, sprite *component.Sprite) {
		p.Age++
		if p.Age >= p.LifeFrames {
			if em, ok := ecs.Get(w, ecs.Entity(p.Emitter), component.ParticleEmitterComponent.Kind()); ok && em.Alive > 0 {
				em.Alive--
			}
			ecs.DestroyEntity(w, e)
			return
		}

		p.VY += p.GravityY * s.dt
		t.X += p.VX * s.dt
		t.Y += p.VY * s.dt
		applyTween(p, t, sprite)
	})
}

func (s *ParticleSystem) launch(w *ecs.World, emitter ecs.Entity, em *component.ParticleEmitter, x, y float64) {
	cfg := em.Config
	if cfg.LifeFrames <= 0 {
		return
	}
	qty := cfg.Quantity
	if qty <= 0 {
		qty = 1
	}
	for i := 0; i < qty; i++ {
		if cfg.MaxAlive > 0 && em.Alive >= cfg.MaxAlive {
			return
		}

		sprite := &component.Sprite{}
		if n := len(cfg.Frames); n > 0 {
			img := cfg.Frames[s.rng.Intn(n)]
			if img != nil {
				sprite.Image = img
				b := img.Bounds()
				sprite.OriginX = float64(b.Dx()) / 2
				sprite.OriginY = float64(b.Dy()) / 2
			}
		}

		p := &component.Particle{
			Emitter:    uint64(emitter),
			VX:         s.uniform(cfg.SpeedX),
			VY:         s.uniform(cfg.SpeedY),
			GravityY:   cfg.GravityY,
			LifeFrames: cfg.LifeFrames,
			ScaleStart: cfg.ScaleStart,
			ScaleEnd:   cfg.ScaleEnd,
			AlphaStart: cfg.AlphaStart,
			AlphaEnd:   cfg.AlphaEnd,
		}
		t := &component.Transform{X: x, Y: y}
		applyTween(p, t, sprite)

		e := ecs.CreateEntity(w)
		ecs.MustAdd(w, e, component.ParticleComponent.Kind(), p, "particle system")
		ecs.MustAdd(w, e, component.TransformComponent.Kind(), t, "particle system")
		ecs.MustAdd(w, e, component.SpriteComponent.Kind(), sprite, "particle system")
		ecs.MustAdd(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerParticles}, "particle system")

		em.Alive++
		em.Launched++
	}
}

// uniform picks from [Min, Max]; the bounds may be given in either order.
func (s *ParticleSystem) uniform(r component.Range) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return common.Lerp(r.Min, r.Max, s.rng.Float64())
}

func applyTween(p *component.Particle, t *component.Transform, sprite *component.Sprite) {
	progress := 0.0
	if p.LifeFrames > 0 {
		progress = float64(p.Age) / float64(p.LifeFrames)
	}
	scale := common.Lerp(p.ScaleStart, p.ScaleEnd, progress)
	t.ScaleX = scale
	t.ScaleY = scale
	alpha := common.Clamp(common.Lerp(p.AlphaStart, p.AlphaEnd, progress), 0, 1)
	if scale <= 0 {
		alpha = 0
	}
	sprite.Fade = 1 - alpha
}

func followPosition(w *ecs.World, em *component.ParticleEmitter) (float64, float64, bool) {
	if em.Follow == 0 {
		return 0, 0, false
	}
	t, ok := ecs.Get(w, ecs.Entity(em.Follow), component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	return t.X + em.OffsetX, t.Y + em.OffsetY, true
}
