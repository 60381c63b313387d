package system

import (
	"time"

	"github.com/eskarin-dev/gridfall/component"
	"github.com/eskarin-dev/gridfall/core"
	"github.com/eskarin-dev/gridfall/engine"
)

// LifetimeSystem counts down LifetimeComponents and destroys entities whose
// time is up. Destruction is idempotent full teardown, so an entity expiring
// in the same frame another system destroyed it is fine.
type LifetimeSystem struct {
	lifetimes *engine.Store[component.LifetimeComponent]

	ticking []tickEntry
	expired []core.Entity
}

type tickEntry struct {
	entity core.Entity
	left   component.LifetimeComponent
}

// NewLifetimeSystem creates the system.
func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

// Initialize caches store pointers.
func (s *LifetimeSystem) Initialize(w *engine.World) {
	s.lifetimes = engine.GetStore[component.LifetimeComponent](w)
}

// Update decrements lifetimes and reaps expired entities after the cursor
// is drained.
func (s *LifetimeSystem) Update(w *engine.World, dt time.Duration) {
	s.ticking = s.ticking[:0]
	s.expired = s.expired[:0]

	q := engine.Query1[component.LifetimeComponent](w)
	for q.Next() {
		lt := q.Values()
		lt.Remaining -= dt
		if lt.Remaining <= 0 {
			s.expired = append(s.expired, q.Entity())
			continue
		}
		s.ticking = append(s.ticking, tickEntry{entity: q.Entity(), left: lt})
	}

	for _, t := range s.ticking {
		s.lifetimes.Set(t.entity, t.left)
	}
	for _, e := range s.expired {
		w.DestroyEntity(e)
	}
}

// Shutdown is a no-op.
func (s *LifetimeSystem) Shutdown(w *engine.World) {}
