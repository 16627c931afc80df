package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
)

// KeySource reports whether a key is held this tick.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys reads the live keyboard.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

type InputSystem struct {
	keys KeySource
}

func NewInputSystem(keys KeySource) *InputSystem {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	left := i.keys.IsKeyPressed(ebiten.KeyArrowLeft)
	right := i.keys.IsKeyPressed(ebiten.KeyArrowRight)
	up := i.keys.IsKeyPressed(ebiten.KeyArrowUp)
	down := i.keys.IsKeyPressed(ebiten.KeyArrowDown)

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Left = left
		input.Right = right
		input.Up = up
		input.Down = down
	})
}
