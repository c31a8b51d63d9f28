package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	LayerParticles = 50
	LayerPlayer    = 60
)

var RenderLayerComponent = NewComponent[RenderLayer]()
