package component

// Player holds movement and feedback tuning for the controllable avatar.
type Player struct {
	Acceleration     float64
	Drag             float64
	Gravity          float64
	JumpVelocity     float64 // negative is up
	MaxSpeed         float64
	ParticleVelocity float64

	FootstepVariants       int
	FootstepVolume         float64
	FootstepIntervalFrames int
	// FootstepLeft enables footsteps while walking left. Off by default:
	// only the rightward walk plays footsteps.
	FootstepLeft bool
}

var PlayerComponent = NewComponent[Player]()
