// Command spsa previews the animations of a prefab. Left/Right cycle the
// animation, Space restarts it.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
)

const viewSize = 512

type previewGame struct {
	world   *ecs.World
	entity  ecs.Entity
	anims   *system.AnimationSystem
	names   []string
	current int
	scale   float64
}

func newPreview(prefab string, scale float64) (*previewGame, error) {
	w := ecs.NewWorld()
	e, err := entity.BuildEntity(w, prefab, entity.DefaultLoaders())
	if err != nil {
		return nil, err
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok || len(anim.Defs) == 0 {
		return nil, fmt.Errorf("prefab %q has no animations", prefab)
	}

	names := make([]string, 0, len(anim.Defs))
	for name := range anim.Defs {
		names = append(names, name)
	}
	sort.Strings(names)

	g := &previewGame{world: w, entity: e, anims: system.NewAnimationSystem(), names: names, scale: scale}
	for i, name := range names {
		if name == anim.Current {
			g.current = i
		}
	}
	return g, nil
}

func (g *previewGame) play(restart bool) {
	anim, ok := ecs.Get(g.world, g.entity, component.AnimationComponent.Kind())
	if !ok || len(g.names) == 0 {
		return
	}
	if restart {
		anim.Current = ""
	}
	anim.Play(g.names[g.current])
}

func (g *previewGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.current = (g.current + 1) % len(g.names)
		g.play(false)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.current = (g.current + len(g.names) - 1) % len(g.names)
		g.play(false)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.play(true)
	}
	g.anims.Update(g.world)
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})

	sprite, ok := ecs.Get(g.world, g.entity, component.SpriteComponent.Kind())
	anim, _ := ecs.Get(g.world, g.entity, component.AnimationComponent.Kind())
	if ok && sprite.Image != nil {
		img := sprite.Image
		if sprite.UseSource {
			img = img.SubImage(sprite.Source).(*ebiten.Image)
		}
		fw, fh := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
		op.GeoM.Scale(g.scale, g.scale)
		op.GeoM.Translate((viewSize-float64(fw)*g.scale)/2, (viewSize-float64(fh)*g.scale)/2)
		screen.DrawImage(img, op)
	}

	if anim != nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d  playing %v\n<-/-> cycle  space restart", anim.Current, anim.Frame, anim.Playing))
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	prefab := flag.String("prefab", entity.PlayerPrefab, "prefab file with an animation component")
	scale := flag.Float64("scale", 8, "pixel scale")
	flag.Parse()

	g, err := newPreview(*prefab, *scale)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Animation Preview: " + *prefab)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
