package entity

import (
	"fmt"

	"github.com/milk9111/diamondfall/assets"
	"github.com/milk9111/diamondfall/config"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
)

// NewCollectibleAt builds a collectible at (x, y) with the given bounce.
func NewCollectibleAt(w *ecs.World, images assets.ImageSource, x, y, bounce float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, images, "collectible.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("collectible: override transform: %w", err)
	}
	if c, ok := ecs.Get(w, e, component.CollectibleComponent.Kind()); ok {
		c.Bounce = bounce
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Elasticity = bounce
	}
	return e, nil
}

// NewCollectibleRow builds the initial row of collectibles.
func NewCollectibleRow(w *ecs.World, images assets.ImageSource, cfg config.CollectibleConfig) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, cfg.InitialCount)
	for i := range cfg.InitialCount {
		x := cfg.StartX + float64(i)*cfg.StepX
		e, err := NewCollectibleAt(w, images, x, cfg.StartY, 0)
		if err != nil {
			return out, fmt.Errorf("collectible %d: %w", i, err)
		}
		if c, ok := ecs.Get(w, e, component.CollectibleComponent.Kind()); ok && cfg.Points > 0 {
			c.Points = cfg.Points
		}
		out = append(out, e)
	}
	return out, nil
}
