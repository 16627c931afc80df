package entity

import (
	"fmt"

	"github.com/milk9111/diamondfall/assets"
	"github.com/milk9111/diamondfall/config"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
)

// NewLevelBounds creates the entity the physics system turns into world edges.
func NewLevelBounds(w *ecs.World, width, height float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("level bounds: %w", err)
	}
	return e, nil
}

func NewBackground(w *ecs.World, images assets.ImageSource, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, images, "background.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("background: override transform: %w", err)
	}
	return e, nil
}

// NewPlatformAt builds a static platform scaled uniformly by scale. The
// collider grows with the sprite.
func NewPlatformAt(w *ecs.World, images assets.ImageSource, p config.PlatformConfig) (ecs.Entity, error) {
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	e, err := BuildEntity(w, images, "platform.yaml")
	if err != nil {
		return 0, err
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("platform: prefab has no transform")
	}
	prevX, prevY := t.ScaleX, t.ScaleY
	t.X, t.Y = p.X, p.Y
	t.ScaleX, t.ScaleY = scale, scale
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && prevX > 0 && prevY > 0 {
		body.Width *= scale / prevX
		body.Height *= scale / prevY
	}
	return e, nil
}

// NewPlatforms builds every configured platform in order.
func NewPlatforms(w *ecs.World, images assets.ImageSource, platforms []config.PlatformConfig) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, len(platforms))
	for i, p := range platforms {
		e, err := NewPlatformAt(w, images, p)
		if err != nil {
			return out, fmt.Errorf("platform %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// NewSpawnTimer creates a repeating timer entity.
func NewSpawnTimer(w *ecs.World, cfg config.SpawnConfig) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SpawnTimerComponent.Kind(), &component.SpawnTimer{Period: cfg.Period(), Loop: true}); err != nil {
		return 0, fmt.Errorf("spawn timer: %w", err)
	}
	return e, nil
}
