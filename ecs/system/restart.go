package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// RestartSystem turns an R press into a ReloadRequest for the scene.
type RestartSystem struct{}

func NewRestartSystem() *RestartSystem { return &RestartSystem{} }

func (s *RestartSystem) Update(w *ecs.World) {
	if w == nil || !anyPressed(w, func(b component.Buttons) bool { return b.Restart }) {
		return
	}
	if _, pending := ecs.First(w, component.ReloadRequestComponent.Kind()); pending {
		return
	}
	e := ecs.CreateEntity(w)
	ecs.MustAdd(w, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{}, "restart system")
}
