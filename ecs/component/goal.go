package component

type GoalVariant string

const (
	GoalUp   GoalVariant = "up"
	GoalDown GoalVariant = "down"
)

// Goal is a flag marker that completes the level on overlap.
type Goal struct {
	Variant GoalVariant
}

var GoalComponent = NewComponent[Goal]()
