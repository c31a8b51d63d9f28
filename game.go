package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/records"
	"github.com/milk9111/platformer/scene"
)

type Game struct {
	manager *scene.Manager
	watcher *prefabs.Watcher
}

type gameOptions struct {
	level string
	debug bool
	mute  bool
}

func NewGame(opts gameOptions) (*Game, error) {
	ctx := &scene.Context{
		Level:   opts.level,
		Debug:   opts.debug,
		Mute:    opts.mute,
		ViewW:   common.BaseWidth,
		ViewH:   common.BaseHeight,
		Loaders: entity.DefaultLoaders(),
		Records: records.Open(records.AppName),
	}

	manager, err := scene.NewManager(ctx, scene.DefaultFactories())
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{manager: manager}
	if opts.debug {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if name, ok := g.watcher.Poll(); ok {
		log.Printf("prefab changed: %s, reloading", name)
		if err := g.manager.Reload(); err != nil {
			// A half-edited prefab should not end the session.
			log.Printf("reload failed: %v", err)
		}
	}
	return g.manager.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(screen)
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
