package system

import (
	"testing"

	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
	"github.com/milk9111/diamondfall/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushCollect(w *ecs.World, collectible, player ecs.Entity) {
	w.Events().Push(ecs.Event{
		Type: ecs.EventCollision,
		Data: ecs.CollisionEvent{Entity: collectible, Other: player, Kind: ecs.CollisionEventCollect},
	})
}

func collected(w *ecs.World) []ecs.CollectedEvent {
	var out []ecs.CollectedEvent
	w.Events().Each(ecs.EventCollected, func(evt ecs.Event) {
		out = append(out, evt.Data.(ecs.CollectedEvent))
	})
	return out
}

func TestCollectDisablesOnce(t *testing.T) {
	w := ecs.NewWorld()
	p := newPlayer(t, w, 0, 0)
	c := newCollectible(t, w, 0, 0)

	pushCollect(w, c, p)
	pushCollect(w, c, p)
	NewCollectSystem().Update(w)

	assert.True(t, ecs.Has(w, c, component.DisabledComponent.Kind()))
	require.Len(t, collected(w), 1)
	assert.Equal(t, ecs.CollectedEvent{Entity: c, Points: 10}, collected(w)[0])
}

func TestCollectIgnoresDisabledAndDead(t *testing.T) {
	w := ecs.NewWorld()
	p := newPlayer(t, w, 0, 0)
	disabled := newCollectible(t, w, 0, 0)
	add(t, w, disabled, component.DisabledComponent, &component.Disabled{})
	dead := newCollectible(t, w, 0, 0)
	ecs.DestroyEntity(w, dead)

	pushCollect(w, disabled, p)
	pushCollect(w, dead, p)
	NewCollectSystem().Update(w)

	assert.Empty(t, collected(w))
}

func TestScoreSystemFeedsKeeper(t *testing.T) {
	w := ecs.NewWorld()
	p := newPlayer(t, w, 0, 0)
	a := newCollectible(t, w, 0, 0)
	b := newCollectible(t, w, 0, 0)
	keeper := score.NewKeeper()

	var hud, host []string
	keeper.Subscribe(func(s score.Snapshot) { hud = append(hud, s.Text) })
	keeper.Subscribe(func(s score.Snapshot) { host = append(host, s.Text) })

	sched := ecs.NewScheduler(NewCollectSystem(), NewScoreSystem(keeper))
	pushCollect(w, a, p)
	sched.Update(w)
	assert.Equal(t, 10, keeper.Snapshot().Score)

	pushCollect(w, b, p)
	pushCollect(w, a, p)
	sched.Update(w)
	assert.Equal(t, 20, keeper.Snapshot().Score)

	want := []string{"Score: 0", "Score: 10", "Score: 20"}
	assert.Equal(t, want, hud)
	assert.Equal(t, hud, host)
	assert.Zero(t, w.Events().Len(), "scheduler flushes events each frame")
}
