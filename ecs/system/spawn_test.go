package system

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
	"github.com/stretchr/testify/assert"
)

const frame = time.Second / 60

func TestSpawnFiresEverySixtyTicks(t *testing.T) {
	w := ecs.NewWorld()
	timerEntity := ecs.CreateEntity(w)
	add(t, w, timerEntity, component.SpawnTimerComponent, &component.SpawnTimer{Period: time.Second, Loop: true})

	var spawnedAt []int
	tick := 0
	s := NewSpawnSystem(frame, func(w *ecs.World) error {
		spawnedAt = append(spawnedAt, tick)
		return nil
	})

	for tick = 1; tick <= 300; tick++ {
		s.Update(w)
	}
	assert.Equal(t, []int{60, 120, 180, 240, 300}, spawnedAt)

	timer, _ := ecs.Get(w, timerEntity, component.SpawnTimerComponent.Kind())
	assert.Equal(t, 5, timer.Fired)
}

func TestSpawnOneShotRemovesTimer(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.SpawnTimerComponent, &component.SpawnTimer{Period: 100 * time.Millisecond})

	calls := 0
	s := NewSpawnSystem(frame, func(*ecs.World) error { calls++; return nil })
	for range 60 {
		s.Update(w)
	}
	assert.Equal(t, 1, calls)
	assert.False(t, ecs.Has(w, e, component.SpawnTimerComponent.Kind()))
}

func TestSpawnPanicsOnError(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.SpawnTimerComponent, &component.SpawnTimer{Period: frame, Loop: true})

	s := NewSpawnSystem(frame, func(*ecs.World) error { return errors.New("no prefab") })
	assert.PanicsWithValue(t, "spawn system: spawn: no prefab", func() { s.Update(w) })
}
