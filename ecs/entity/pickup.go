package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

const CoinPrefab = "coin.yaml"

// NewCoinAt places a coin with its top-left at (x, y). column seeds the bob
// phase.
func NewCoinAt(w *ecs.World, x, y float64, column int, loaders Loaders) (ecs.Entity, error) {
	coin, err := BuildEntity(w, CoinPrefab, loaders)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, coin, x, y, 0); err != nil {
		return 0, fmt.Errorf("coin: override transform: %w", err)
	}
	if pickup, ok := ecs.Get(w, coin, component.PickupComponent.Kind()); ok {
		pickup.BobPhase = float64(column) * pickup.PhaseStep
	}
	return coin, nil
}

// GoalPrefab maps a flag level entity type to its prefab.
func GoalPrefab(entityType string) (string, bool) {
	switch entityType {
	case levels.EntityFlagUp:
		return "flag_up.yaml", true
	case levels.EntityFlagDown:
		return "flag_down.yaml", true
	default:
		return "", false
	}
}

func NewGoalAt(w *ecs.World, entityType string, x, y float64, loaders Loaders) (ecs.Entity, error) {
	prefab, ok := GoalPrefab(entityType)
	if !ok {
		return 0, fmt.Errorf("goal: unknown flag type %q", entityType)
	}
	goal, err := BuildEntity(w, prefab, loaders)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, goal, x, y, 0); err != nil {
		return 0, fmt.Errorf("goal: override transform: %w", err)
	}
	return goal, nil
}
