package system

import (
	"image"
	"testing"

	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
	"github.com/stretchr/testify/assert"
)

func animated(t *testing.T, current string) (*ecs.World, *component.Animation, *component.Sprite) {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	anim := &component.Animation{
		Defs: map[string]component.AnimationDef{
			"left":  {Name: "left", ColStart: 0, FrameCount: 2, FrameW: 32, FrameH: 32, FPS: 10, Loop: true},
			"turn":  {Name: "turn", ColStart: 2, FrameCount: 1, FrameW: 32, FrameH: 32, FPS: 20},
			"right": {Name: "right", ColStart: 2, FrameCount: 2, FrameW: 32, FrameH: 32, FPS: 10, Loop: true},
		},
		Current: current,
		Playing: true,
	}
	sprite := &component.Sprite{}
	add(t, w, e, component.AnimationComponent, anim)
	add(t, w, e, component.SpriteComponent, sprite)
	return w, anim, sprite
}

func TestAnimationLoopsAtFrameRate(t *testing.T) {
	w, anim, sprite := animated(t, "right")
	sys := NewAnimationSystem(60)

	sys.Update(w)
	assert.Equal(t, image.Rect(64, 0, 96, 32), sprite.Source)
	assert.True(t, sprite.UseSource)

	for range 5 {
		sys.Update(w)
	}
	assert.Equal(t, 1, anim.Frame, "10 fps at 60 TPS advances every 6 ticks")
	assert.Equal(t, image.Rect(96, 0, 128, 32), sprite.Source)

	for range 6 {
		sys.Update(w)
	}
	assert.Equal(t, 0, anim.Frame)
	assert.True(t, anim.Playing)
}

func TestAnimationNonLoopHolds(t *testing.T) {
	w, anim, sprite := animated(t, "turn")
	sys := NewAnimationSystem(60)
	for range 10 {
		sys.Update(w)
	}
	assert.Equal(t, 0, anim.Frame)
	assert.False(t, anim.Playing)
	assert.Equal(t, image.Rect(64, 0, 96, 32), sprite.Source)
}

func TestAnimationZeroFPSHoldsFrame(t *testing.T) {
	w, anim, sprite := animated(t, "right")
	def := anim.Defs["right"]
	def.FPS = 0
	anim.Defs["right"] = def
	anim.Frame = 1

	sys := NewAnimationSystem(60)
	for range 30 {
		sys.Update(w)
	}
	assert.Equal(t, 1, anim.Frame)
	assert.Zero(t, anim.FrameTimer)
	assert.True(t, anim.Playing)
	assert.Equal(t, image.Rect(96, 0, 128, 32), sprite.Source)
}

func TestFrameRect(t *testing.T) {
	def := component.AnimationDef{ColStart: 0, FrameCount: 2, FrameW: 32, FrameH: 32}
	assert.Equal(t, image.Rect(0, 0, 32, 32), FrameRect(def, 0))
	assert.Equal(t, image.Rect(32, 0, 64, 32), FrameRect(def, 1))
}
