package ecs

// EventType names a world event.
type EventType string

const (
	// EventCollision carries a CollisionEvent.
	EventCollision EventType = "collision"
	// EventCollected carries a CollectedEvent.
	EventCollected EventType = "collected"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionEventCollect CollisionEventKind = "collect"
)

// CollisionEvent is emitted by the physics step when two bodies touch.
type CollisionEvent struct {
	Entity Entity
	Other  Entity
	Kind   CollisionEventKind
}

// CollectedEvent is emitted once a collectible has been consumed.
type CollectedEvent struct {
	Entity Entity
	Points int
}

// EventQueue is a FIFO queue that lives for one scheduler frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Each visits every queued event of type t, including events pushed while
// iterating.
func (q *EventQueue) Each(t EventType, fn func(Event)) {
	if q == nil {
		return
	}
	for i := 0; i < len(q.items); i++ {
		if q.items[i].Type == t {
			fn(q.items[i])
		}
	}
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
