package component

// Buttons is one frame of boolean button state.
type Buttons struct {
	Left    bool
	Right   bool
	Up      bool
	Restart bool
	Debug   bool
	Pause   bool
}

// Input stores held state, the previous frame's held state, and the rising
// edges derived from the two.
type Input struct {
	Held    Buttons
	Last    Buttons
	Pressed Buttons
}

// Latch records now as the current frame and derives rising edges.
func (in *Input) Latch(now Buttons) {
	in.Last = in.Held
	in.Held = now
	in.Pressed = Buttons{
		Left:    now.Left && !in.Last.Left,
		Right:   now.Right && !in.Last.Right,
		Up:      now.Up && !in.Last.Up,
		Restart: now.Restart && !in.Last.Restart,
		Debug:   now.Debug && !in.Last.Debug,
		Pause:   now.Pause && !in.Last.Pause,
	}
}

var InputComponent = NewComponent[Input]()
