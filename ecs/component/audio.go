package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named clips and per-clip play/stop requests for the audio system.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Request queues name for playback at volume and reports whether it exists.
func (a *Audio) Request(name string, volume float64) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n != name {
			continue
		}
		if i < len(a.Play) {
			a.Play[i] = true
		}
		if i < len(a.Volume) {
			a.Volume[i] = volume
		}
		return true
	}
	return false
}

var AudioComponent = NewComponent[Audio]()
