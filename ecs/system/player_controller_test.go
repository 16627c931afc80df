package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizontalIntent(t *testing.T) {
	cases := []struct {
		name  string
		input *component.Input
		vx    float64
		anim  string
	}{
		{"idle", &component.Input{}, 0, "turn"},
		{"left", &component.Input{Left: true}, -160, "left"},
		{"right", &component.Input{Right: true}, 160, "right"},
		{"both", &component.Input{Left: true, Right: true}, -160, "left"},
		{"up only", &component.Input{Up: true}, 0, "turn"},
		{"down ignored", &component.Input{Down: true, Right: true}, 160, "right"},
		{"nil", nil, 0, "turn"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			vx, anim := HorizontalIntent(c.input, 160)
			assert.Equal(t, c.vx, vx)
			assert.Equal(t, c.anim, anim)
		})
	}
}

func controlledPlayer(t *testing.T) (*ecs.World, ecs.Entity, *cp.Body) {
	t.Helper()
	w := ecs.NewWorld()
	e := newPlayer(t, w, 400, 530)
	body := cp.NewBody(1, cp.INFINITY)
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	pb.Body = body
	add(t, w, e, component.AnimationComponent, &component.Animation{
		Defs: map[string]component.AnimationDef{
			"left":  {Name: "left", FrameCount: 2, FPS: 10, Loop: true},
			"turn":  {Name: "turn", ColStart: 2, FrameCount: 1, FPS: 20},
			"right": {Name: "right", ColStart: 2, FrameCount: 2, FPS: 10, Loop: true},
		},
		Current: "turn",
		Playing: true,
	})
	return w, e, body
}

func TestPlayerControllerMovesAndAnimates(t *testing.T) {
	w, e, body := controlledPlayer(t)
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	pc := NewPlayerControllerSystem()

	input.Left = true
	pc.Update(w)
	assert.Equal(t, -160.0, body.Velocity().X)
	assert.Equal(t, "left", anim.Current)

	anim.Frame = 1
	pc.Update(w)
	assert.Equal(t, 1, anim.Frame, "holding a direction keeps the running animation")

	input.Left = false
	input.Right = true
	pc.Update(w)
	assert.Equal(t, 160.0, body.Velocity().X)
	assert.Equal(t, "right", anim.Current)

	input.Right = false
	pc.Update(w)
	assert.Equal(t, 0.0, body.Velocity().X)
	assert.Equal(t, "turn", anim.Current)
}

func TestPlayerControllerJumpRequiresGround(t *testing.T) {
	cases := []struct {
		name     string
		up       bool
		grounded bool
		vy       float64
	}{
		{"up and grounded", true, true, -330},
		{"up in the air", true, false, 25},
		{"grounded without up", false, true, 25},
		{"neither", false, false, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, e, body := controlledPlayer(t)
			body.SetVelocity(0, 25)
			input, _ := ecs.Get(w, e, component.InputComponent.Kind())
			input.Up = c.up
			collision, _ := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
			collision.Grounded = c.grounded

			NewPlayerControllerSystem().Update(w)
			assert.Equal(t, c.vy, body.Velocity().Y)
		})
	}
}

func TestPlayerControllerSkipsUnsimulatedPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e := newPlayer(t, w, 0, 0)
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	input.Right = true
	assert.NotPanics(t, func() { NewPlayerControllerSystem().Update(w) })
}
