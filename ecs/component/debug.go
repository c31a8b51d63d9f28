package component

// DebugDraw toggles developer overlays.
type DebugDraw struct {
	Physics bool
}

var DebugDrawComponent = NewComponent[DebugDraw]()
