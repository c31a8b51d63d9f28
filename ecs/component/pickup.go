package component

// Pickup is a collectible destroyed on player overlap.
type Pickup struct {
	Kind string

	BobAmplitude float64
	BobSpeed     float64
	BobPhase     float64
	// PhaseStep is the starting phase added per grid column so a row of
	// coins bobs as a wave.
	PhaseStep   float64
	BaseOriginY float64
	Initialized bool
}

var PickupComponent = NewComponent[Pickup]()
