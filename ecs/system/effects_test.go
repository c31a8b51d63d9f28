package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func TestClassifyEffect(t *testing.T) {
	tests := []struct {
		name        string
		grounded    bool
		wasGrounded bool
		jumped      bool
		direction   int
		want        component.EffectState
	}{
		{name: "idle_grounded", grounded: true, wasGrounded: true, want: component.EffectIdle},
		{name: "idle_airborne", want: component.EffectIdle},
		{name: "walking", grounded: true, wasGrounded: true, direction: 1, want: component.EffectWalking},
		{name: "walking_left", grounded: true, wasGrounded: true, direction: -1, want: component.EffectWalking},
		{name: "airborne_input_is_idle", direction: 1, want: component.EffectIdle},
		{name: "landing", grounded: true, want: component.EffectLanding},
		{name: "landing_beats_walking", grounded: true, direction: 1, want: component.EffectLanding},
		{name: "jump", grounded: true, wasGrounded: true, jumped: true, want: component.EffectJumping},
		{name: "jump_beats_landing", grounded: true, jumped: true, want: component.EffectJumping},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyEffect(tc.grounded, tc.wasGrounded, tc.jumped, tc.direction)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func newEffectsWorld(t *testing.T) (*ecs.World, ecs.Entity, map[string]*component.ParticleEmitter) {
	t.Helper()
	w := ecs.NewWorld()
	e := addTestPlayer(t, w, 100, 50)
	emitters := map[string]*component.ParticleEmitter{}
	for _, name := range []string{EmitterWalking, EmitterJump, EmitterLand} {
		_, em := addEmitter(t, w, name, component.EmitterConfig{LifeFrames: 10, Quantity: 1})
		emitters[name] = em
	}
	emitters[EmitterJump].OffsetY = 10
	emitters[EmitterLand].OffsetY = 10
	return w, e, emitters
}

func setControl(w *ecs.World, e ecs.Entity, direction int, jumped bool) *component.PlayerControl {
	control, _ := ecs.Get(w, e, component.PlayerControlComponent.Kind())
	control.Direction = direction
	control.Jumped = jumped
	return control
}

func TestEffectsWalkingStream(t *testing.T) {
	w, e, emitters := newEffectsWorld(t)
	sys := NewEffectsSystem(rand.New(rand.NewSource(7)))

	setGrounded(w, e, true, true)
	setControl(w, e, 1, false)
	sys.Update(w)

	walking := emitters[EmitterWalking]
	if !walking.On {
		t.Fatalf("expected walking stream on while grounded and moving")
	}
	if walking.Follow != uint64(e) {
		t.Fatalf("expected stream to follow the player")
	}
	if walking.Config.SpeedX.Min != 50 || walking.Config.SpeedX.Max != 50 || walking.Config.SpeedY != (component.Range{}) {
		t.Fatalf("expected particle speed (50,0), got %+v %+v", walking.Config.SpeedX, walking.Config.SpeedY)
	}

	setGrounded(w, e, false, true)
	sys.Update(w)
	if walking.On {
		t.Fatalf("expected walking stream off mid-air")
	}

	setGrounded(w, e, true, true)
	setControl(w, e, 0, false)
	sys.Update(w)
	if walking.On {
		t.Fatalf("expected walking stream off without input")
	}
}

func TestEffectsBursts(t *testing.T) {
	t.Run("land", func(t *testing.T) {
		w, e, emitters := newEffectsWorld(t)
		setGrounded(w, e, true, false)
		NewEffectsSystem(nil).Update(w)

		land := emitters[EmitterLand]
		if len(land.Bursts) != 1 {
			t.Fatalf("expected one land burst, got %d", len(land.Bursts))
		}
		if b := land.Bursts[0]; b.X != 100 || b.Y != 60 {
			t.Fatalf("expected burst at (100,60), got %+v", b)
		}
		if len(emitters[EmitterJump].Bursts) != 0 {
			t.Fatalf("unexpected jump burst")
		}
		control, _ := ecs.Get(w, e, component.PlayerControlComponent.Kind())
		if control.Effect != component.EffectLanding {
			t.Fatalf("expected landing effect, got %v", control.Effect)
		}
	})

	t.Run("jump", func(t *testing.T) {
		w, e, emitters := newEffectsWorld(t)
		setGrounded(w, e, true, true)
		setControl(w, e, 0, true)
		NewEffectsSystem(nil).Update(w)

		if len(emitters[EmitterJump].Bursts) != 1 {
			t.Fatalf("expected one jump burst")
		}
		if len(emitters[EmitterLand].Bursts) != 0 {
			t.Fatalf("unexpected land burst")
		}
	})

	t.Run("land_and_jump_same_frame", func(t *testing.T) {
		w, e, emitters := newEffectsWorld(t)
		setGrounded(w, e, true, false)
		setControl(w, e, 0, true)
		NewEffectsSystem(nil).Update(w)

		if len(emitters[EmitterJump].Bursts) != 1 || len(emitters[EmitterLand].Bursts) != 1 {
			t.Fatalf("expected both bursts, got jump=%d land=%d", len(emitters[EmitterJump].Bursts), len(emitters[EmitterLand].Bursts))
		}
	})

	t.Run("steady_ground_no_burst", func(t *testing.T) {
		w, e, emitters := newEffectsWorld(t)
		setGrounded(w, e, true, true)
		NewEffectsSystem(nil).Update(w)
		if len(emitters[EmitterLand].Bursts) != 0 {
			t.Fatalf("expected no land burst while staying grounded")
		}
	})
}

func footstepRequests(w *ecs.World, e ecs.Entity) []int {
	a, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	var out []int
	for i, play := range a.Play {
		if play {
			out = append(out, i)
		}
	}
	return out
}

func clearRequests(w *ecs.World, e ecs.Entity) {
	a, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	for i := range a.Play {
		a.Play[i] = false
	}
}

func TestFootsteps(t *testing.T) {
	t.Run("right_plays_variant", func(t *testing.T) {
		w, e, _ := newEffectsWorld(t)
		setGrounded(w, e, true, true)
		setControl(w, e, 1, false)
		NewEffectsSystem(rand.New(rand.NewSource(3))).Update(w)

		reqs := footstepRequests(w, e)
		if len(reqs) != 1 {
			t.Fatalf("expected one footstep request, got %v", reqs)
		}
		control, _ := ecs.Get(w, e, component.PlayerControlComponent.Kind())
		if control.LastFootstep != reqs[0] || control.LastFootstep < 0 || control.LastFootstep > 4 {
			t.Fatalf("expected variant in [0,4] matching request, got %d vs %v", control.LastFootstep, reqs)
		}
		a, _ := ecs.Get(w, e, component.AudioComponent.Kind())
		if a.Volume[reqs[0]] != 0.4 {
			t.Fatalf("expected volume 0.4, got %v", a.Volume[reqs[0]])
		}
	})

	t.Run("left_is_silent_by_default", func(t *testing.T) {
		w, e, _ := newEffectsWorld(t)
		setGrounded(w, e, true, true)
		setControl(w, e, -1, false)
		NewEffectsSystem(nil).Update(w)
		if reqs := footstepRequests(w, e); len(reqs) != 0 {
			t.Fatalf("expected no footsteps walking left, got %v", reqs)
		}
	})

	t.Run("left_opt_in", func(t *testing.T) {
		w, e, _ := newEffectsWorld(t)
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		player.FootstepLeft = true
		setGrounded(w, e, true, true)
		setControl(w, e, -1, false)
		NewEffectsSystem(nil).Update(w)
		if reqs := footstepRequests(w, e); len(reqs) != 1 {
			t.Fatalf("expected a footstep walking left, got %v", reqs)
		}
	})

	t.Run("airborne_is_silent", func(t *testing.T) {
		w, e, _ := newEffectsWorld(t)
		setGrounded(w, e, false, false)
		setControl(w, e, 1, false)
		NewEffectsSystem(nil).Update(w)
		if reqs := footstepRequests(w, e); len(reqs) != 0 {
			t.Fatalf("expected no footsteps mid-air, got %v", reqs)
		}
	})

	t.Run("every_frame_without_interval", func(t *testing.T) {
		w, e, _ := newEffectsWorld(t)
		setGrounded(w, e, true, true)
		setControl(w, e, 1, false)
		sys := NewEffectsSystem(nil)
		for i := 0; i < 3; i++ {
			clearRequests(w, e)
			sys.Update(w)
			if reqs := footstepRequests(w, e); len(reqs) != 1 {
				t.Fatalf("frame %d: expected a footstep, got %v", i, reqs)
			}
		}
	})

	t.Run("interval", func(t *testing.T) {
		w, e, _ := newEffectsWorld(t)
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		player.FootstepIntervalFrames = 3
		setGrounded(w, e, true, true)
		setControl(w, e, 1, false)
		sys := NewEffectsSystem(nil)

		var played []int
		for i := 0; i < 7; i++ {
			clearRequests(w, e)
			sys.Update(w)
			if len(footstepRequests(w, e)) > 0 {
				played = append(played, i)
			}
		}
		want := []int{0, 3, 6}
		if len(played) != len(want) {
			t.Fatalf("expected footsteps on frames %v, got %v", want, played)
		}
		for i := range want {
			if played[i] != want[i] {
				t.Fatalf("expected footsteps on frames %v, got %v", want, played)
			}
		}
	})
}
