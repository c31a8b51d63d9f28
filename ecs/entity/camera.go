package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
)

const CameraPrefab = "camera.yaml"

func NewCamera(w *ecs.World, loaders Loaders) (ecs.Entity, error) {
	return BuildEntity(w, CameraPrefab, loaders)
}

func NewCameraAt(w *ecs.World, x, y float64, loaders Loaders) (ecs.Entity, error) {
	camera, err := NewCamera(w, loaders)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, camera, x, y, 0); err != nil {
		return 0, fmt.Errorf("camera: override transform: %w", err)
	}
	return camera, nil
}
