package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type Sprite struct {
	Image      *ebiten.Image
	Source     image.Rectangle
	UseSource  bool
	OriginX    float64
	OriginY    float64
	FacingLeft bool
	// Fade is 1-alpha so the zero value draws opaque.
	Fade float64
}

var SpriteComponent = NewComponent[Sprite]()
