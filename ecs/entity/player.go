package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
)

const PlayerPrefab = "player.yaml"

func NewPlayer(w *ecs.World, loaders Loaders) (ecs.Entity, error) {
	return BuildEntity(w, PlayerPrefab, loaders)
}

// NewPlayerAt builds the player with its collider centered on (x, y).
func NewPlayerAt(w *ecs.World, x, y float64, loaders Loaders) (ecs.Entity, error) {
	entity, err := NewPlayer(w, loaders)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y, 0); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
