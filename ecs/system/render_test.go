package system

import (
	"strings"
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func addDrawable(t *testing.T, w *ecs.World, layer int, withLayer bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}); err != nil {
		t.Fatal(err)
	}
	if withLayer {
		if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
			t.Fatal(err)
		}
	}
	return e
}

func TestDrawOrder(t *testing.T) {
	w := ecs.NewWorld()
	player := addDrawable(t, w, component.LayerPlayer, true)
	tileA := addDrawable(t, w, 0, true)
	coin := addDrawable(t, w, 40, true)
	bare := addDrawable(t, w, 0, false)
	particle := addDrawable(t, w, component.LayerParticles, true)
	tileB := addDrawable(t, w, 10, true)

	got := DrawOrder(w)
	want := []ecs.Entity{tileA, bare, tileB, coin, particle, player}
	if len(got) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %v, got %v (order %v)", i, want[i], got[i], got)
		}
	}
}

func TestDebugHUDText(t *testing.T) {
	w := ecs.NewWorld()
	player := addTestPlayer(t, w, 0, 0)
	addTrigger(t, w, component.TriggerGroupPickup, 100, 100)
	addTrigger(t, w, component.TriggerGroupPickup, 200, 100)
	setGrounded(w, player, true, true)
	control, _ := ecs.Get(w, player, component.PlayerControlComponent.Kind())
	control.Effect = component.EffectWalking
	control.Facing = component.FacingLeft
	control.Animation = component.AnimWalk
	attachBody(w, player, -12.5, 0)

	text := DebugHUDText(w)
	for _, want := range []string{
		"Grounded: true",
		"Effect: walking",
		"Facing: left",
		"Anim: walk",
		"Velocity: -12.5, 0.0",
		"Coins left: 2",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in HUD text:\n%s", want, text)
		}
	}
}

func TestAudioSystemClearsRequests(t *testing.T) {
	for _, muted := range []bool{false, true} {
		w := ecs.NewWorld()
		player := addTestPlayer(t, w, 0, 0)
		a, _ := ecs.Get(w, player, component.AudioComponent.Kind())
		if !a.Request(component.FootstepClipName(2), 0.4) {
			t.Fatalf("expected footstep2 clip to exist")
		}
		a.Stop[1] = true

		NewAudioSystem(1, muted).Update(w)
		for i := range a.Play {
			if a.Play[i] || a.Stop[i] {
				t.Fatalf("muted=%v: expected request %d cleared", muted, i)
			}
		}
		if a.Request("missing", 1) {
			t.Fatalf("expected unknown clip rejected")
		}
	}
}

func TestPickupHover(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	pickup := &component.Pickup{Kind: "coin", BobAmplitude: 1.5, BobSpeed: 0.08}
	sprite := &component.Sprite{OriginY: 9}
	if err := ecs.Add(w, e, component.PickupComponent.Kind(), pickup); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
		t.Fatal(err)
	}

	sys := NewPickupHoverSystem()
	for i := 0; i < 200; i++ {
		sys.Update(w)
		if d := sprite.OriginY - 9; d > 1.5+1e-9 || d < -1.5-1e-9 {
			t.Fatalf("frame %d: bob offset %v exceeds amplitude", i, d)
		}
	}
	if pickup.BaseOriginY != 9 {
		t.Fatalf("expected base origin kept at 9, got %v", pickup.BaseOriginY)
	}
}
