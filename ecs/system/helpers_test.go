package system

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func defaultPlayer() *component.Player {
	return &component.Player{
		Acceleration:     400,
		Drag:             500,
		Gravity:          1500,
		JumpVelocity:     -600,
		MaxSpeed:         10000,
		ParticleVelocity: 50,
		FootstepVariants: 5,
		FootstepVolume:   0.4,
	}
}

// addTestPlayer builds a player the way the prefab does, without images or
// audio players.
func addTestPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	clips := make([]string, 5)
	for i := range clips {
		clips[i] = component.FootstepClipName(i)
	}
	steps := []error{
		ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		ecs.Add(w, e, component.PlayerComponent.Kind(), defaultPlayer()),
		ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}),
		ecs.Add(w, e, component.PlayerControlComponent.Kind(), &component.PlayerControl{LastFootstep: -1}),
		ecs.Add(w, e, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}),
		ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}),
		ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 20, Height: 22, Mass: 1}),
		ecs.Add(w, e, component.AudioComponent.Kind(), &component.Audio{
			Names:   clips,
			Players: make([]*audio.Player, len(clips)),
			Volume:  make([]float64, len(clips)),
			Play:    make([]bool, len(clips)),
			Stop:    make([]bool, len(clips)),
		}),
	}
	for _, err := range steps {
		if err != nil {
			t.Fatalf("build test player: %v", err)
		}
	}
	return e
}

// attachBody gives the player a free-standing Chipmunk body so controller
// tests can run without a physics space.
func attachBody(w *ecs.World, e ecs.Entity, vx, vy float64) *cp.Body {
	body := cp.NewBody(1, math.Inf(1))
	body.SetVelocityVector(cp.Vector{X: vx, Y: vy})
	pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	pb.Body = body
	return body
}

func setGrounded(w *ecs.World, e ecs.Entity, grounded, wasGrounded bool) {
	pc, _ := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
	pc.Grounded = grounded
	pc.WasGrounded = wasGrounded
}

func latch(w *ecs.World, e ecs.Entity, b component.Buttons) {
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	in.Latch(b)
}

func addEmitter(t *testing.T, w *ecs.World, name string, cfg component.EmitterConfig) (ecs.Entity, *component.ParticleEmitter) {
	t.Helper()
	e := ecs.CreateEntity(w)
	em := &component.ParticleEmitter{Name: name, Config: cfg}
	if err := ecs.Add(w, e, component.ParticleEmitterComponent.Kind(), em); err != nil {
		t.Fatalf("add emitter: %v", err)
	}
	return e, em
}

func addStaticBox(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width: width, Height: height, Static: true, AlignTopLeft: true,
	}); err != nil {
		t.Fatal(err)
	}
	return e
}

func addTrigger(t *testing.T, w *ecs.World, group string, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.TriggerComponent.Kind(), &component.Trigger{Group: group, Width: 18, Height: 18}); err != nil {
		t.Fatal(err)
	}
	switch group {
	case component.TriggerGroupPickup:
		err := ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{Kind: "coin"})
		if err != nil {
			t.Fatal(err)
		}
	case component.TriggerGroupGoal:
		err := ecs.Add(w, e, component.GoalComponent.Kind(), &component.Goal{Variant: component.GoalUp})
		if err != nil {
			t.Fatal(err)
		}
	}
	return e
}
