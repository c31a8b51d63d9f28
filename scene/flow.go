package scene

// ID names a scene.
type ID int

const (
	Playing ID = iota
	Won
)

func (id ID) String() string {
	switch id {
	case Playing:
		return "playing"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Event is what a scene asks of the flow after an update. None means stay.
type Event int

const (
	None Event = iota
	GoalReached
	Restart
)

func (e Event) String() string {
	switch e {
	case GoalReached:
		return "goal_reached"
	case Restart:
		return "restart"
	default:
		return "none"
	}
}

// Next is the transition table. rebuild reports whether the target scene is
// constructed fresh; it is false only when the event is ignored.
func Next(from ID, ev Event) (to ID, rebuild bool) {
	switch {
	case ev == Restart:
		return Playing, true
	case from == Playing && ev == GoalReached:
		return Won, true
	default:
		return from, false
	}
}

// Flow tracks the active scene ID. It starts in Playing.
type Flow struct {
	current ID
}

func NewFlow() *Flow {
	return &Flow{current: Playing}
}

func (f *Flow) Current() ID {
	return f.current
}

// Apply moves the flow along ev and reports the new ID and whether to rebuild.
func (f *Flow) Apply(ev Event) (ID, bool) {
	to, rebuild := Next(f.current, ev)
	f.current = to
	return to, rebuild
}
