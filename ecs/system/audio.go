package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AudioSystem starts and stops queued clips. Clips already playing are
// left alone rather than restarted.
type AudioSystem struct {
	Volume float64
	Muted  bool
}

func NewAudioSystem(volume float64, muted bool) *AudioSystem {
	return &AudioSystem{Volume: volume, Muted: muted}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := len(audioComp.Play)
		if len(audioComp.Players) < count {
			count = len(audioComp.Players)
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false
			if a.Muted {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && !player.IsPlaying() {
				volume := 1.0
				if i < len(audioComp.Volume) {
					volume = audioComp.Volume[i]
				}
				player.SetVolume(volume * a.Volume)
				if err := player.Rewind(); err != nil {
					continue
				}
				player.Play()
			}
		}

		for i := 0; i < count && i < len(audioComp.Stop); i++ {
			if !audioComp.Stop[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && player.IsPlaying() {
				player.Pause()
			}

			audioComp.Stop[i] = false
		}
	})
}
