package component

// PlayerCollision stores per-player collision state derived from physics contacts.
type PlayerCollision struct {
	// Grounded is true when the ground sensor is blocked by solid geometry
	// after the latest physics step.
	Grounded bool
	// WasGrounded is Grounded from the step before.
	WasGrounded bool
}

// Landed reports a falling-to-grounded transition this frame.
func (pc PlayerCollision) Landed() bool {
	return pc.Grounded && !pc.WasGrounded
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
