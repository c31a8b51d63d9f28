package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ControlInput is everything the controller decides from in one frame.
type ControlInput struct {
	Left      bool
	Right     bool
	UpPressed bool
	Grounded  bool

	Acceleration float64
	Drag         float64
	JumpVelocity float64
}

type ControlOutput struct {
	Direction int
	Accel     float64
	Dragging  bool
	// FacingSet is false when no horizontal input was held; Facing is then
	// meaningless and the previous facing stays.
	FacingSet bool
	Facing    component.Facing
	Animation string
	Jump      bool
	// JumpVelocity replaces the vertical velocity when Jump is set.
	JumpVelocity float64
}

// ResolvePlayerControl maps held/pressed input and grounded state to
// movement and animation. Left wins over right when both are held.
func ResolvePlayerControl(in ControlInput) ControlOutput {
	var out ControlOutput
	switch {
	case in.Left:
		out.Direction = -1
		out.Accel = -in.Acceleration
		out.FacingSet = true
		out.Facing = component.FacingLeft
		out.Animation = component.AnimWalk
	case in.Right:
		out.Direction = 1
		out.Accel = in.Acceleration
		out.FacingSet = true
		out.Facing = component.FacingRight
		out.Animation = component.AnimWalk
	default:
		out.Dragging = in.Drag > 0
		out.Animation = component.AnimIdle
	}

	if !in.Grounded {
		out.Animation = component.AnimJump
	}

	if in.Grounded && in.UpPressed {
		out.Jump = true
		out.JumpVelocity = in.JumpVelocity
	}
	return out
}

// IntegrateHorizontal advances vx by one step. Drag only applies without
// acceleration and stops at zero instead of reversing.
func IntegrateHorizontal(vx, accel, drag, maxSpeed, dt float64) float64 {
	if accel != 0 {
		vx += accel * dt
	} else if drag > 0 {
		vx = common.MoveToward(vx, drag*dt)
	}
	if maxSpeed > 0 {
		vx = common.Clamp(vx, -maxSpeed, maxSpeed)
	}
	return vx
}

type PlayerControllerSystem struct {
	dt float64
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{dt: common.DT}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.PlayerControlComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		control, _ := ecs.Get(w, e, component.PlayerControlComponent.Kind())
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if bodyComp == nil || bodyComp.Body == nil {
			continue
		}

		grounded := false
		if pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind()); ok {
			grounded = pc.Grounded
		}

		out := ResolvePlayerControl(ControlInput{
			Left:         input.Held.Left,
			Right:        input.Held.Right,
			UpPressed:    input.Pressed.Up,
			Grounded:     grounded,
			Acceleration: player.Acceleration,
			Drag:         player.Drag,
			JumpVelocity: player.JumpVelocity,
		})

		vel := bodyComp.Body.Velocity()
		drag := 0.0
		if out.Dragging {
			drag = player.Drag
		}
		vel.X = IntegrateHorizontal(vel.X, out.Accel, drag, player.MaxSpeed, p.dt)
		if out.Jump {
			vel.Y = out.JumpVelocity
		}
		bodyComp.Body.SetVelocityVector(limitVelocity(vel, player.MaxSpeed))
		bodyComp.Body.SetAngle(0)
		bodyComp.Body.SetAngularVelocity(0)

		control.Direction = out.Direction
		control.Accel = out.Accel
		control.Dragging = out.Dragging
		control.Jumped = out.Jump
		control.Animation = out.Animation
		if out.FacingSet {
			control.Facing = out.Facing
		}

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.FacingLeft = control.Facing == component.FacingLeft
		}
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			anim.Play(out.Animation)
		}
	}
}

func limitVelocity(v cp.Vector, maxSpeed float64) cp.Vector {
	if maxSpeed <= 0 {
		return v
	}
	if math.Abs(v.Y) > maxSpeed {
		v.Y = math.Copysign(maxSpeed, v.Y)
	}
	return v
}
