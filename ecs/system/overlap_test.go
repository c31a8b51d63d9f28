package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func TestAABBIntersects(t *testing.T) {
	a := aabb{x: 0, y: 0, w: 10, h: 10}
	tests := []struct {
		name string
		b    aabb
		want bool
	}{
		{name: "inside", b: aabb{x: 2, y: 2, w: 2, h: 2}, want: true},
		{name: "overlap_corner", b: aabb{x: 9, y: 9, w: 5, h: 5}, want: true},
		{name: "touching_right", b: aabb{x: 10, y: 0, w: 5, h: 5}},
		{name: "touching_bottom", b: aabb{x: 0, y: 10, w: 5, h: 5}},
		{name: "apart", b: aabb{x: 20, y: 20, w: 5, h: 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.intersects(tc.b); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestOverlapPairs(t *testing.T) {
	w := ecs.NewWorld()
	// Player box spans x 90..110, y 89..111.
	player := addTestPlayer(t, w, 100, 100)
	far := addTrigger(t, w, component.TriggerGroupPickup, 300, 300)
	left := addTrigger(t, w, component.TriggerGroupPickup, 80, 95)
	touching := addTrigger(t, w, component.TriggerGroupPickup, 110, 89)
	right := addTrigger(t, w, component.TriggerGroupPickup, 109, 89)
	goal := addTrigger(t, w, component.TriggerGroupGoal, 95, 95)
	_, _ = far, touching

	pairs := OverlapPairs(w, component.TriggerGroupPickup)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pickup overlaps, got %+v", pairs)
	}
	if pairs[0].Trigger != left || pairs[1].Trigger != right {
		t.Fatalf("expected pairs ordered by trigger id, got %+v", pairs)
	}
	for _, p := range pairs {
		if p.Player != player || p.Group != component.TriggerGroupPickup {
			t.Fatalf("unexpected pair %+v", p)
		}
	}

	goals := OverlapPairs(w, component.TriggerGroupGoal)
	if len(goals) != 1 || goals[0].Trigger != goal {
		t.Fatalf("expected goal overlap, got %+v", goals)
	}
}

func TestPickupCollect(t *testing.T) {
	w := ecs.NewWorld()
	addTestPlayer(t, w, 100, 100)
	coin := addTrigger(t, w, component.TriggerGroupPickup, 95, 95)
	other := addTrigger(t, w, component.TriggerGroupPickup, 300, 95)

	overlap := NewOverlapSystem()
	collect := NewPickupCollectSystem()
	overlap.Update(w)
	collect.Update(w)

	if ecs.IsAlive(w, coin) {
		t.Fatalf("expected overlapped coin destroyed")
	}
	if !ecs.IsAlive(w, other) {
		t.Fatalf("expected distant coin kept")
	}
	if collect.Collected() != 1 {
		t.Fatalf("expected one collected, got %d", collect.Collected())
	}

	// Stale events for the destroyed coin must not count twice.
	collect.Update(w)
	if collect.Collected() != 1 {
		t.Fatalf("expected collected to stay 1, got %d", collect.Collected())
	}
}

func TestGoalRequestsOnce(t *testing.T) {
	w := ecs.NewWorld()
	addTestPlayer(t, w, 100, 100)
	up := addTrigger(t, w, component.TriggerGroupGoal, 95, 95)
	addTrigger(t, w, component.TriggerGroupGoal, 100, 95)

	overlap := NewOverlapSystem()
	goal := NewGoalSystem()
	for i := 0; i < 3; i++ {
		overlap.Update(w)
		goal.Update(w)
	}

	reqs := w.Query(component.LevelCompleteRequestComponent.Kind())
	if len(reqs) != 1 {
		t.Fatalf("expected one level complete request, got %d", len(reqs))
	}
	req, _ := ecs.Get(w, reqs[0], component.LevelCompleteRequestComponent.Kind())
	if req.Goal != uint64(up) || req.Variant != component.GoalUp {
		t.Fatalf("unexpected request %+v", req)
	}
	if !ecs.IsAlive(w, up) {
		t.Fatalf("expected flag to stay in the level")
	}
}

func TestGoalIgnoresPickups(t *testing.T) {
	w := ecs.NewWorld()
	addTestPlayer(t, w, 100, 100)
	addTrigger(t, w, component.TriggerGroupPickup, 95, 95)

	NewOverlapSystem().Update(w)
	NewGoalSystem().Update(w)
	if _, ok := ecs.First(w, component.LevelCompleteRequestComponent.Kind()); ok {
		t.Fatalf("expected no request from a pickup overlap")
	}
}
