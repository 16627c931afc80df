package system

import (
	"math"
	"testing"

	"github.com/milk9111/diamondfall/common"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRule = RecycleRule{FallBound: 600, MinX: 50, MaxX: 750, RefallSpeed: 100}

func TestRecycleMovesFallenCollectibles(t *testing.T) {
	w := ecs.NewWorld()
	rng := common.NewRand(7)
	var fallen []ecs.Entity
	for i := range 50 {
		fallen = append(fallen, newCollectible(t, w, float64(i), 601+float64(i)))
	}
	r := NewRecycleSystem(testRule, rng)
	r.Update(w)

	assert.Equal(t, 50, r.Recycled)
	for _, e := range fallen {
		tr := transformOf(t, w, e)
		assert.Zero(t, tr.Y)
		assert.GreaterOrEqual(t, tr.X, 50.0)
		assert.LessOrEqual(t, tr.X, 750.0)
		assert.Equal(t, math.Trunc(tr.X), tr.X)
	}
}

func TestRecycleLeavesOthers(t *testing.T) {
	w := ecs.NewWorld()
	onBound := newCollectible(t, w, 10, 600)
	disabled := newCollectible(t, w, 10, 700)
	add(t, w, disabled, component.DisabledComponent, &component.Disabled{})
	player := newPlayer(t, w, 10, 700)

	r := NewRecycleSystem(testRule, common.NewRand(1))
	r.Update(w)

	assert.Zero(t, r.Recycled)
	assert.Equal(t, 600.0, transformOf(t, w, onBound).Y)
	assert.Equal(t, 700.0, transformOf(t, w, disabled).Y)
	assert.Equal(t, 700.0, transformOf(t, w, player).Y)
}

func TestRecycleResetsBodyVelocity(t *testing.T) {
	w := ecs.NewWorld()
	c := newCollectible(t, w, 100, 0)
	ps := NewPhysicsSystem(300, 60)
	ps.Update(w)

	body, ok := ecs.Get(w, c, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	require.NotNil(t, body.Body)
	body.Body.SetVelocity(5, 900)
	transformOf(t, w, c).Y = 650

	NewRecycleSystem(testRule, common.NewRand(3)).Update(w)

	tr := transformOf(t, w, c)
	assert.Zero(t, tr.Y)
	assert.Equal(t, tr.X, body.Body.Position().X)
	assert.Zero(t, body.Body.Position().Y)
	assert.Equal(t, 100.0, body.Body.Velocity().Y)
	assert.Equal(t, 5.0, body.Body.Velocity().X)
}
