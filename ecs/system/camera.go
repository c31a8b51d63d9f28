package system

import (
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CameraSystem follows the target with a lerp and a deadzone. The camera
// transform is the top-left of the view in world pixels.
type CameraSystem struct {
	viewW float64
	viewH float64
}

func NewCameraSystem(viewW, viewH float64) *CameraSystem {
	return &CameraSystem{viewW: viewW, viewH: viewH}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	target, ok := findEntityByNameOrTag(w, cam.TargetName)
	if !ok {
		return
	}
	targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	viewW, viewH := cs.ViewSize(cam)
	fx, fy := targetTransform.X, targetTransform.Y

	sx, sy := camTransform.X, camTransform.Y
	if !cam.Snapped {
		sx = fx - viewW/2
		sy = fy - viewH/2
		cam.Snapped = true
	} else {
		sx = followAxis(sx, fx, viewW, cam.DeadzoneW, cam.LerpX)
		sy = followAxis(sy, fy, viewH, cam.DeadzoneH, cam.LerpY)
	}

	if be, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if bounds, ok := ecs.Get(w, be, component.LevelBoundsComponent.Kind()); ok && bounds.Width > 0 && bounds.Height > 0 {
			sx = common.Clamp(sx, 0, bounds.Width-viewW)
			sy = common.Clamp(sy, 0, bounds.Height-viewH)
		}
	}
	if cam.RoundPixels {
		sx = math.Round(sx)
		sy = math.Round(sy)
	}

	camTransform.X = sx
	camTransform.Y = sy
}

// ViewSize is the visible world area at the camera's zoom.
func (cs *CameraSystem) ViewSize(cam *component.Camera) (float64, float64) {
	zoom := 1.0
	if cam != nil && cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	return cs.viewW / zoom, cs.viewH / zoom
}

// followAxis moves the view start toward the target once the target leaves
// a deadzone centered in the view.
func followAxis(start, target, view, deadzone, lerp float64) float64 {
	if lerp <= 0 {
		lerp = 1
	}
	if deadzone <= 0 {
		return common.Lerp(start, target-view/2, lerp)
	}
	mid := start + view/2
	lo := mid - deadzone/2
	hi := mid + deadzone/2
	switch {
	case target < lo:
		return common.Lerp(start, start-(lo-target), lerp)
	case target > hi:
		return common.Lerp(start, start+(target-hi), lerp)
	default:
		return start
	}
}

func findEntityByNameOrTag(w *ecs.World, name string) (ecs.Entity, bool) {
	if name == "" || name == "player" {
		return ecs.First(w, component.PlayerTagComponent.Kind())
	}
	return 0, false
}
