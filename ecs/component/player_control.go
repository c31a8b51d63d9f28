package component

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// EffectState is recomputed every frame from velocity and grounded history.
type EffectState int

const (
	EffectIdle EffectState = iota
	EffectWalking
	EffectJumping
	EffectLanding
)

func (s EffectState) String() string {
	switch s {
	case EffectWalking:
		return "walking"
	case EffectJumping:
		return "jumping"
	case EffectLanding:
		return "landing"
	default:
		return "idle"
	}
}

const (
	AnimIdle = "idle"
	AnimWalk = "walk"
	AnimJump = "jump"
)

// PlayerControl is the controller's per-frame output.
type PlayerControl struct {
	// Direction is the horizontal acceleration input: -1, 0 or +1.
	Direction int
	Accel     float64
	Dragging  bool
	Facing    Facing
	Animation string
	Jumped    bool

	Effect           EffectState
	FootstepCooldown int
	// LastFootstep is the last variant index played, -1 before the first.
	LastFootstep int
}

var PlayerControlComponent = NewComponent[PlayerControl]()
