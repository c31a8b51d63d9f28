package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/platformer/assets"
)

// Loaders resolves asset paths named by prefabs and levels. A nil loader
// leaves the asset out, which lets tests build worlds without a GPU or an
// audio device.
type Loaders struct {
	Image       func(path string) (*ebiten.Image, error)
	AudioPlayer func(path string) (*audio.Player, error)
}

// DefaultLoaders reads from the embedded asset tree.
func DefaultLoaders() Loaders {
	return Loaders{
		Image:       assets.LoadImage,
		AudioPlayer: assets.LoadAudioPlayer,
	}
}

func (l Loaders) image(path string) (*ebiten.Image, error) {
	if l.Image == nil || path == "" {
		return nil, nil
	}
	return l.Image(path)
}

func (l Loaders) audioPlayer(path string) (*audio.Player, error) {
	if l.AudioPlayer == nil || path == "" {
		return nil, nil
	}
	return l.AudioPlayer(path)
}
