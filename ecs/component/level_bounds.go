package component

// LevelBounds stores the world-space bounds of the current level. Physics
// closes them with walls and the camera clamps to them.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
