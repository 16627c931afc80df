package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/diamondfall/config"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
)

// NewScoreText creates the HUD label. Its text is filled in by the score
// keeper subscription.
func NewScoreText(w *ecs.World, cfg config.HUDConfig) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: cfg.X, Y: cfg.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("score text: %w", err)
	}
	var clr color.Color = color.White
	if cfg.Color.Color != nil {
		clr = cfg.Color.Color
	}
	st := &component.ScoreText{Size: cfg.Size, Color: clr}
	if err := ecs.Add(w, e, component.ScoreTextComponent.Kind(), st); err != nil {
		return 0, fmt.Errorf("score text: %w", err)
	}
	return e, nil
}
