package entity

import (
	"fmt"

	"github.com/milk9111/diamondfall/assets"
	"github.com/milk9111/diamondfall/config"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
)

func NewPlayer(w *ecs.World, images assets.ImageSource) (ecs.Entity, error) {
	return BuildEntity(w, images, "player.yaml")
}

// NewPlayerAt builds the player prefab at the configured spawn and applies the
// configured speeds over the prefab's.
func NewPlayerAt(w *ecs.World, images assets.ImageSource, cfg config.PlayerConfig) (ecs.Entity, error) {
	e, err := NewPlayer(w, images)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, cfg.SpawnX, cfg.SpawnY); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		if cfg.MoveSpeed > 0 {
			p.MoveSpeed = cfg.MoveSpeed
		}
		if cfg.JumpSpeed > 0 {
			p.JumpSpeed = cfg.JumpSpeed
		}
	}
	return e, nil
}
