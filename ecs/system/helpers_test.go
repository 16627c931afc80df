package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
	"github.com/stretchr/testify/require"
)

type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsKeyPressed(key ebiten.Key) bool {
	return f[key]
}

func add[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v *T) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, h.Kind(), v))
}

func newPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.PlayerTagComponent, &component.PlayerTag{})
	add(t, w, e, component.PlayerComponent, &component.Player{MoveSpeed: 160, JumpSpeed: 330})
	add(t, w, e, component.InputComponent, &component.Input{})
	add(t, w, e, component.PlayerCollisionComponent, &component.PlayerCollision{})
	add(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	add(t, w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Width: 32, Height: 32, Mass: 1, FixedRotation: true})
	add(t, w, e, component.CollisionLayerComponent, &component.CollisionLayer{
		Category: component.LayerPlayer,
		Mask:     component.LayerPlatform | component.LayerCollectible | component.LayerBounds,
	})
	return e
}

func newPlatform(t *testing.T, w *ecs.World, x, y, width float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.PlatformTagComponent, &component.PlatformTag{})
	add(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	add(t, w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Width: width, Height: 32, Static: true})
	add(t, w, e, component.CollisionLayerComponent, &component.CollisionLayer{Category: component.LayerPlatform, Mask: component.LayerPlayer})
	return e
}

func newCollectible(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.CollectibleComponent, &component.Collectible{Points: 10})
	add(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	add(t, w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Width: 32, Height: 28, Mass: 1, FixedRotation: true})
	add(t, w, e, component.CollisionLayerComponent, &component.CollisionLayer{Category: component.LayerCollectible, Mask: component.LayerPlayer})
	return e
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}
