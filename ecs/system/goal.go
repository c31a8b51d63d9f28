package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// GoalSystem raises a single LevelCompleteRequest when the player reaches
// either flag. Flags are never consumed.
type GoalSystem struct{}

func NewGoalSystem() *GoalSystem { return &GoalSystem{} }

func (s *GoalSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if _, pending := ecs.First(w, component.LevelCompleteRequestComponent.Kind()); pending {
		return
	}

	var req *component.LevelCompleteRequest
	eachOverlap(w, component.TriggerGroupGoal, func(pair ecs.OverlapEvent) {
		if req != nil {
			return
		}
		goal, ok := ecs.Get(w, pair.Trigger, component.GoalComponent.Kind())
		if !ok {
			return
		}
		req = &component.LevelCompleteRequest{Goal: uint64(pair.Trigger), Variant: goal.Variant}
	})
	if req == nil {
		return
	}

	e := ecs.CreateEntity(w)
	ecs.MustAdd(w, e, component.LevelCompleteRequestComponent.Kind(), req, "goal system")
}
