package system

import (
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
)

const (
	animLeft  = "left"
	animRight = "right"
	animTurn  = "turn"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, player *component.Player, input *component.Input, bodyComp *component.PhysicsBody) {
			if bodyComp.Body == nil || !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
				return
			}
			p.steer(w, e, player, input, bodyComp)
		})
}

func (p *PlayerControllerSystem) steer(w *ecs.World, e ecs.Entity, player *component.Player, input *component.Input, bodyComp *component.PhysicsBody) {
	vx, anim := HorizontalIntent(input, player.MoveSpeed)
	if a, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		a.Play(anim, true)
	}

	vel := bodyComp.Body.Velocity()
	vel.X = vx

	grounded := false
	if pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind()); ok {
		grounded = pc.Grounded
	}
	if input.Up && grounded {
		vel.Y = -player.JumpSpeed
	}

	bodyComp.Body.SetVelocityVector(vel)
	bodyComp.Body.SetAngle(0)
	bodyComp.Body.SetAngularVelocity(0)
}

// HorizontalIntent maps the left/right keys to a velocity and animation name.
// Left wins when both are held.
func HorizontalIntent(input *component.Input, speed float64) (float64, string) {
	switch {
	case input == nil:
		return 0, animTurn
	case input.Left:
		return -speed, animLeft
	case input.Right:
		return speed, animRight
	default:
		return 0, animTurn
	}
}
