package entity

import (
	"fmt"
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/diamondfall/assets"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
	"github.com/milk9111/diamondfall/prefabs"
)

type buildContext struct {
	PrefabPath string
	Images     assets.ImageSource
}

func (ctx *buildContext) image(name string) (*ebiten.Image, error) {
	if ctx == nil || ctx.Images == nil || name == "" {
		return nil, nil
	}
	return ctx.Images.Image(name)
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":       addPlayerTag,
	"platform_tag":     addPlatformTag,
	"background_tag":   addBackgroundTag,
	"player":           addPlayer,
	"input":            addInput,
	"player_collision": addPlayerCollision,
	"collectible":      addCollectible,
	"transform":        addTransform,
	"sprite":           addSprite,
	"render_layer":     addRenderLayer,
	"animation":        addAnimation,
	"physics_body":     addPhysicsBody,
	"collision_layer":  addCollisionLayer,
}

// transform precedes sprite and physics_body, which read its scale.
var componentBuildOrder = []string{
	"player_tag",
	"platform_tag",
	"background_tag",
	"player",
	"input",
	"player_collision",
	"collectible",
	"transform",
	"sprite",
	"render_layer",
	"animation",
	"physics_body",
	"collision_layer",
}

// BuildEntity creates an entity from a prefab. Images may be nil, in which
// case sprites are built without pixels.
func BuildEntity(w *ecs.World, images assets.ImageSource, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Images: images}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, names)
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addPlatformTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlatformTagComponent.Kind(), &component.PlatformTag{})
}

func addBackgroundTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.BackgroundTagComponent.Kind(), &component.BackgroundTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed: spec.MoveSpeed,
		JumpSpeed: spec.JumpSpeed,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addPlayerCollision(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{})
}

type collectibleSpec = prefabs.CollectibleComponentSpec

func addCollectible(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[collectibleSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collectible spec: %w", err)
	}
	return ecs.Add(w, e, component.CollectibleComponent.Kind(), &component.Collectible{
		Points: spec.Points,
		Bounce: spec.Bounce,
	})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	img, err := ctx.image(spec.Image)
	if err != nil {
		return fmt.Errorf("load image %q: %w", spec.Image, err)
	}
	sprite.Image = img

	sprite.UseSource = spec.UseSource
	if spec.UseSource {
		sprite.Source = image.Rect(0, 0, spec.SourceW, spec.SourceH)
	}
	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero && sprite.Image != nil {
		w, h := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()
		sprite.OriginX = float64(w) / 2
		sprite.OriginY = float64(h) / 2
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	sheet, err := ctx.image(spec.Sheet)
	if err != nil {
		return fmt.Errorf("load animation sheet %q: %w", spec.Sheet, err)
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		if def.FrameCount <= 0 || def.FPS <= 0 {
			return fmt.Errorf("animation %q: frame_count and fps must be positive", name)
		}
		defs[name] = component.AnimationDef{
			Name:       name,
			Row:        def.Row,
			ColStart:   def.ColStart,
			FrameCount: def.FrameCount,
			FrameW:     def.FrameW,
			FrameH:     def.FrameH,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	if _, ok := defs[spec.Current]; spec.Current != "" && !ok {
		return fmt.Errorf("animation: unknown current %q", spec.Current)
	}

	playing := true
	if spec.Playing != nil {
		playing = *spec.Playing
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Sheet:   sheet,
		Defs:    defs,
		Current: spec.Current,
		Playing: playing,
	})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.DefaultWidth <= 0 {
		spec.DefaultWidth = 32
	}
	if spec.DefaultHeight <= 0 {
		spec.DefaultHeight = 32
	}

	width := spec.Width
	height := spec.Height
	if spec.ScaleWithTransform {
		if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok && tr != nil {
			width *= tr.ScaleX
			height *= tr.ScaleY
		}
	}
	if width == 0 {
		width = spec.DefaultWidth
	}
	if height == 0 {
		height = spec.DefaultHeight
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:         width,
		Height:        height,
		Mass:          spec.Mass,
		Friction:      spec.Friction,
		Elasticity:    spec.Elasticity,
		Static:        spec.Static,
		FixedRotation: spec.FixedRotation,
	})
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	cat := spec.Category
	mask := spec.Mask
	if cat == 0 {
		cat = 1
	}
	if mask == 0 {
		mask = ^uint32(0)
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: cat, Mask: mask})
}
