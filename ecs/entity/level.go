package entity

import (
	"fmt"
	"image"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

// Tile layers draw at index*LayerStep so prefab layers (coins, particles,
// player) can slot between them.
const LayerStep = 10

// GroundFriction is applied to colliders merged from physics layers.
const GroundFriction = 0.9

// LoadedLevel is what the scene needs back from a populated world.
type LoadedLevel struct {
	Player ecs.Entity
	Camera ecs.Entity
	Coins  int
	Goals  int
}

// LoadLevelToWorld populates world from lvl: bounds, tile sprites, merged
// colliders for physics layers, then the declared entities and the player's
// effect emitters.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, loaders Loaders) (LoadedLevel, error) {
	var out LoadedLevel
	if world == nil || lvl == nil {
		return out, fmt.Errorf("load level: world and level are required")
	}
	if err := lvl.Validate(); err != nil {
		return out, fmt.Errorf("load level: %w", err)
	}

	widthPx, heightPx := lvl.PixelSize()
	bounds := world.CreateEntity()
	if err := ecs.Add(world, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  widthPx,
		Height: heightPx,
	}); err != nil {
		return out, fmt.Errorf("load level: add bounds: %w", err)
	}

	sheet, err := loaders.image(lvl.Tileset.Path)
	if err != nil {
		return out, fmt.Errorf("load level: tileset %q: %w", lvl.Tileset.Path, err)
	}
	columns := lvl.Tileset.Columns
	if columns <= 0 && sheet != nil {
		columns = sheet.Bounds().Dx() / lvl.TileW
	}
	if columns <= 0 {
		return out, fmt.Errorf("load level: tileset %q has no columns", lvl.Tileset.Path)
	}

	tileW, tileH := float64(lvl.TileW), float64(lvl.TileH)
	for layerIdx, layer := range lvl.Layers {
		for y := 0; y < lvl.Height; y++ {
			for x := 0; x < lvl.Width; x++ {
				tileID := layer.Tiles[y*lvl.Width+x]
				if tileID <= 0 {
					continue
				}

				idx := tileID - 1
				srcX := (idx % columns) * lvl.TileW
				srcY := (idx / columns) * lvl.TileH
				src := image.Rect(srcX, srcY, srcX+lvl.TileW, srcY+lvl.TileH)
				if sheet != nil && !src.In(sheet.Bounds()) {
					return out, fmt.Errorf("load level: layer %q tile %d at (%d,%d) is outside the tileset", layer.Name, tileID, x, y)
				}

				e := world.CreateEntity()
				if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
					X:      float64(x) * tileW,
					Y:      float64(y) * tileH,
					ScaleX: 1,
					ScaleY: 1,
				}); err != nil {
					return out, err
				}
				if err := ecs.Add(world, e, component.SpriteComponent.Kind(), &component.Sprite{
					Image:     sheet,
					Source:    src,
					UseSource: true,
				}); err != nil {
					return out, err
				}
				if err := ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layerIdx * LayerStep}); err != nil {
					return out, err
				}
			}
		}
		if layer.Physics {
			if err := addMergedTileColliders(world, layer.Tiles, lvl.Width, lvl.Height, tileW, tileH); err != nil {
				return out, fmt.Errorf("load level: layer %q colliders: %w", layer.Name, err)
			}
		}
	}

	for i, ent := range lvl.Entities {
		x, y := float64(ent.X), float64(ent.Y)
		switch ent.Type {
		case levels.EntityPlayer:
			out.Player, err = NewPlayerAt(world, x, y, loaders)
		case levels.EntityCamera:
			out.Camera, err = NewCameraAt(world, x, y, loaders)
		case levels.EntityCoin:
			_, err = NewCoinAt(world, x, y, ent.X/lvl.TileW, loaders)
			out.Coins++
		case levels.EntityFlagUp, levels.EntityFlagDown:
			_, err = NewGoalAt(world, ent.Type, x, y, loaders)
			out.Goals++
		}
		if err != nil {
			return out, fmt.Errorf("load level: entity %d (%s): %w", i, ent.Type, err)
		}
	}

	if !out.Camera.Valid() {
		if out.Camera, err = NewCamera(world, loaders); err != nil {
			return out, fmt.Errorf("load level: default camera: %w", err)
		}
	}

	if err := NewPlayerEffects(world, out.Player, loaders); err != nil {
		return out, fmt.Errorf("load level: %w", err)
	}

	debug := world.CreateEntity()
	if err := ecs.Add(world, debug, component.DebugDrawComponent.Kind(), &component.DebugDraw{}); err != nil {
		return out, fmt.Errorf("load level: add debug draw: %w", err)
	}

	return out, nil
}

// addMergedTileColliders covers the solid cells of layer with as few static
// boxes as a greedy row-then-column merge finds.
func addMergedTileColliders(world *ecs.World, layer []int, width, height int, tileW, tileH float64) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	solid := func(i int) bool { return i < len(layer) && !visited[i] && layer[i] > 0 }

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !solid(index(x, y)) {
				continue
			}

			maxW := 0
			for x2 := x; x2 < width && solid(index(x2, y)); x2++ {
				maxW++
			}

			maxH := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+maxW; x2++ {
					if !solid(index(x2, y2)) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				maxH++
			}

			for yy := y; yy < y+maxH; yy++ {
				for xx := x; xx < x+maxW; xx++ {
					visited[index(xx, yy)] = true
				}
			}

			e := world.CreateEntity()
			if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
				X:      float64(x) * tileW,
				Y:      float64(y) * tileH,
				ScaleX: 1,
				ScaleY: 1,
			}); err != nil {
				return err
			}
			if err := ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
				Width:        float64(maxW) * tileW,
				Height:       float64(maxH) * tileH,
				Friction:     GroundFriction,
				Static:       true,
				AlignTopLeft: true,
			}); err != nil {
				return err
			}
		}
	}

	return nil
}
