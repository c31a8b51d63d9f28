package component

// Transform is a world-space position in pixels. For physics entities it is
// the top-left of the collider when PhysicsBody.AlignTopLeft is set, else the
// collider center.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
