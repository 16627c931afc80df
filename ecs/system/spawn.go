package system

import (
	"time"

	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
)

// SpawnFunc creates one entity in w.
type SpawnFunc func(w *ecs.World) error

// SpawnSystem advances SpawnTimer components by a fixed frame duration and
// calls spawn once per elapsed period. A period fires on the tick nearest its
// boundary, so 1000ms at 60 TPS fires every 60 ticks.
type SpawnSystem struct {
	frame time.Duration
	spawn SpawnFunc
}

func NewSpawnSystem(frame time.Duration, spawn SpawnFunc) *SpawnSystem {
	return &SpawnSystem{frame: frame, spawn: spawn}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.spawn == nil || s.frame <= 0 {
		return
	}
	ecs.ForEach(w, component.SpawnTimerComponent.Kind(), func(e ecs.Entity, timer *component.SpawnTimer) {
		if timer.Period <= 0 {
			return
		}
		timer.Elapsed += s.frame
		for timer.Period-timer.Elapsed < s.frame/2 {
			timer.Elapsed -= timer.Period
			timer.Fired++
			if err := s.spawn(w); err != nil {
				panic("spawn system: spawn: " + err.Error())
			}
			if !timer.Loop {
				ecs.Remove(w, e, component.SpawnTimerComponent.Kind())
				return
			}
		}
	})
}
