package component

const (
	TriggerGroupPickup = "pickup"
	TriggerGroupGoal   = "goal"
)

// Trigger is a non-blocking overlap box relative to Transform (top-left origin).
type Trigger struct {
	Group   string
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

var TriggerComponent = NewComponent[Trigger]()
