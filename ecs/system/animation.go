package system

import (
	"image"

	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
)

// AnimationSystem advances sprite-sheet animations one tick at a time and
// points the sprite's source rect at the current frame.
type AnimationSystem struct {
	tps float64
}

func NewAnimationSystem(tps int) *AnimationSystem {
	if tps <= 0 {
		tps = 60
	}
	return &AnimationSystem{tps: float64(tps)}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		// a non-positive FPS holds the current frame
		if anim.Playing && def.FPS > 0 {
			ticksPerFrame := int(a.tps / def.FPS)
			if ticksPerFrame < 1 {
				ticksPerFrame = 1
			}

			anim.FrameTimer++
			if anim.FrameTimer >= ticksPerFrame {
				anim.FrameTimer = 0
				anim.Frame++
				if anim.Frame >= def.FrameCount {
					if def.Loop {
						anim.Frame = 0
					} else {
						anim.Frame = def.FrameCount - 1
						anim.Playing = false
					}
				}
			}
		}

		sprite.Source = FrameRect(def, anim.Frame)
		sprite.UseSource = true
	})
}

// FrameRect returns the sheet rectangle of frame within def.
func FrameRect(def component.AnimationDef, frame int) image.Rectangle {
	x := def.ColStart*def.FrameW + frame*def.FrameW
	y := def.Row * def.FrameH
	return image.Rect(x, y, x+def.FrameW, y+def.FrameH)
}
