package system

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/diamondfall/common"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
)

// RecycleRule describes where fallen collectibles go.
type RecycleRule struct {
	FallBound   float64
	MinX        float64
	MaxX        float64
	RefallSpeed float64
}

// RecycleSystem moves every enabled collectible that fell past the bound back
// to the top at a random whole-pixel x, falling at a fixed speed.
type RecycleSystem struct {
	rule RecycleRule
	rng  *rand.Rand
	// Recycled counts moves since creation.
	Recycled int
}

func NewRecycleSystem(rule RecycleRule, rng *rand.Rand) *RecycleSystem {
	if rng == nil {
		rng = common.NewRand(0)
	}
	return &RecycleSystem{rule: rule, rng: rng}
}

func (r *RecycleSystem) Update(w *ecs.World) {
	if r == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.CollectibleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Collectible, t *component.Transform) {
		if ecs.Has(w, e, component.DisabledComponent.Kind()) || t.Y <= r.rule.FallBound {
			return
		}
		t.X = float64(common.Between(r.rng, int(r.rule.MinX), int(r.rule.MaxX)))
		t.Y = 0
		r.Recycled++

		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || body.Body == nil {
			return
		}
		body.Body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		vel := body.Body.Velocity()
		vel.Y = r.rule.RefallSpeed
		body.Body.SetVelocityVector(vel)
	})
}
