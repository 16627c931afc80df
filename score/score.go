// Package score owns the game score and pushes read-only snapshots to every
// view that mirrors it.
package score

import "fmt"

// Snapshot is the value every mirror renders.
type Snapshot struct {
	Score int
	Text  string
}

// Format renders a score the way every mirror shows it.
func Format(n int) string {
	return fmt.Sprintf("Score: %d", n)
}

// Keeper is the single writer of the score. Subscribers are called
// synchronously, in subscription order, with the same Snapshot.
type Keeper struct {
	score  int
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

func NewKeeper() *Keeper {
	return &Keeper{}
}

// Snapshot returns the current value.
func (k *Keeper) Snapshot() Snapshot {
	return Snapshot{Score: k.score, Text: Format(k.score)}
}

// Subscribe registers fn and immediately sends it the current snapshot. The
// returned func removes the subscription.
func (k *Keeper) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	k.nextID++
	id := k.nextID
	k.subs = append(k.subs, subscriber{id: id, fn: fn})
	fn(k.Snapshot())
	return func() {
		for i, s := range k.subs {
			if s.id == id {
				k.subs = append(k.subs[:i], k.subs[i+1:]...)
				return
			}
		}
	}
}

// Collect adds points in one read-modify-write and publishes the result.
// Negative points are ignored.
func (k *Keeper) Collect(points int) Snapshot {
	if points > 0 {
		k.score += points
	}
	return k.publish()
}

// Reset zeroes the score for a new scene and publishes it.
func (k *Keeper) Reset() Snapshot {
	k.score = 0
	return k.publish()
}

func (k *Keeper) publish() Snapshot {
	snap := k.Snapshot()
	for _, s := range append([]subscriber(nil), k.subs...) {
		s.fn(snap)
	}
	return snap
}
