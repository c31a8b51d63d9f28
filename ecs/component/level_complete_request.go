package component

// LevelCompleteRequest asks the scene to switch to the win screen. Systems
// only emit it; the scene owns the transition.
type LevelCompleteRequest struct {
	Goal    uint64 // ecs.Entity of the flag that was reached
	Variant GoalVariant
}

var LevelCompleteRequestComponent = NewComponent[LevelCompleteRequest]()
