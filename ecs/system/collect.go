package system

import (
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
)

// CollectSystem disables collectibles the player touched and reports how many
// points each was worth. A collectible is consumed at most once.
type CollectSystem struct{}

func NewCollectSystem() *CollectSystem {
	return &CollectSystem{}
}

func (c *CollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	events := w.Events()
	events.Each(ecs.EventCollision, func(evt ecs.Event) {
		ce, ok := evt.Data.(ecs.CollisionEvent)
		if !ok || ce.Kind != ecs.CollisionEventCollect {
			return
		}
		if !ecs.IsAlive(w, ce.Entity) || ecs.Has(w, ce.Entity, component.DisabledComponent.Kind()) {
			return
		}
		collectible, ok := ecs.Get(w, ce.Entity, component.CollectibleComponent.Kind())
		if !ok {
			return
		}
		if err := ecs.Add(w, ce.Entity, component.DisabledComponent.Kind(), &component.Disabled{}); err != nil {
			panic("collect system: disable collectible: " + err.Error())
		}
		events.Push(ecs.Event{
			Type: ecs.EventCollected,
			Data: ecs.CollectedEvent{Entity: ce.Entity, Points: collectible.Points},
		})
	})
}
