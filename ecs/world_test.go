package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/diamondfall/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		wantAlive    int
	}{
		{"single", 1, 0, 0},
		{"three_create_destroy_middle", 3, 1, 2},
		{"none_destroy", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if w.Len() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.Len())
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
			if w.Len() != c.wantAlive {
				t.Fatalf("expected %d alive, got %d", c.wantAlive, w.Len())
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected id %d to be reused, got %d", old.id(), reused.id())
	}
	if reused == old {
		t.Fatalf("recycled entity must not equal the stale handle")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle should not be alive")
	}

	kind := component.NewComponentKind[int]()
	if err := Add(w, old, kind, intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, h1.Kind()) {
					t.Fatalf("e2 should not have the int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
		{
			name:  "replace_keeps_single_value",
			setup: func() error { return Add(w, e2, h1.Kind(), intPtr(5)) },
			check: func(t *testing.T) {
				if err := Add(w, e2, h1.Kind(), intPtr(6)); err != nil {
					t.Fatal(err)
				}
				v, _ := Get(w, e2, h1.Kind())
				if *v != 6 {
					t.Fatalf("expected replaced value 6, got %d", *v)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add[int](w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	seen := map[Entity]bool{}
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		seen[e] = true
		*v *= 10
	})

	if !seen[e1] || !seen[e3] || seen[e2] {
		t.Fatalf("unexpected ForEach result %v", seen)
	}
	if v, _ := Get(w, e3, h.Kind()); *v != 30 {
		t.Fatalf("expected in-place mutation, got %d", *v)
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, step := range []struct {
					e Entity
					k component.ComponentKind[int]
				}{{e1, ka}, {e2, ka}, {e2, kb}, {e2, kc}, {e3, kb}} {
					if err := Add(w, step.e, step.k, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, k := range []component.ComponentKind[int]{ka, kb, kc} {
					if err := Add(w, e, k, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}
				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestQueryAndFirst(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	_ = Add(w, e3, ka, intPtr(3))
	_ = Add(w, e3, kb, stringPtr("c"))
	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e1, kb, stringPtr("a"))
	_ = Add(w, e2, ka, intPtr(2))

	got := Query(w, ka, kb)
	if len(got) != 2 || got[0] != e1 || got[1] != e3 {
		t.Fatalf("expected [e1 e3], got %v", got)
	}

	first, ok := First(w, ka)
	if !ok || first != e1 {
		t.Fatalf("expected e1 first, got %v ok=%v", first, ok)
	}

	if _, ok := First(w, component.NewComponentKind[float64]()); ok {
		t.Fatalf("expected no entity for empty kind")
	}
	if res := Query(w, ka, component.NewComponentKind[float64]()); len(res) != 0 {
		t.Fatalf("expected empty query, got %v", res)
	}
}

type countingSystem struct {
	frames int
	seen   int
}

func (c *countingSystem) Update(w *World) {
	c.frames++
	w.Events().Each(EventCollected, func(Event) { c.seen++ })
}

type pushingSystem struct{}

func (pushingSystem) Update(w *World) {
	w.Events().Push(Event{Type: EventCollected, Data: CollectedEvent{Points: 10}})
}

func TestSchedulerFlushesEventsPerFrame(t *testing.T) {
	w := NewWorld()
	counter := &countingSystem{}
	s := NewScheduler(pushingSystem{}, counter)
	s.Add(nil)

	s.Update(w)
	s.Update(w)

	if counter.frames != 2 {
		t.Fatalf("expected 2 frames, got %d", counter.frames)
	}
	if counter.seen != 2 {
		t.Fatalf("expected one event per frame, got %d", counter.seen)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("queue should be empty after a frame, got %d", w.Events().Len())
	}
	if len(s.Systems()) != 2 {
		t.Fatalf("nil systems must be ignored")
	}
}
