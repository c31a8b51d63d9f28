package component

type Camera struct {
	TargetName  string
	Zoom        float64
	LerpX       float64
	LerpY       float64
	DeadzoneW   float64
	DeadzoneH   float64
	RoundPixels bool
	// Snapped is set once the camera jumped onto its target.
	Snapped bool
}

var CameraComponent = NewComponent[Camera]()
