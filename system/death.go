package system

import (
	"time"

	"github.com/eskarin-dev/gridfall/component"
	"github.com/eskarin-dev/gridfall/core"
	"github.com/eskarin-dev/gridfall/engine"
)

// DeathSystem marks entities with depleted health as dead, exactly once,
// and fires an error cue. Downstream systems skip dead entities with a
// Without filter instead of re-checking health.
type DeathSystem struct {
	healths *engine.Store[component.HealthComponent]
	deads   *engine.Store[component.DeadComponent]

	dying []core.Entity
}

// NewDeathSystem creates the system.
func NewDeathSystem() *DeathSystem {
	return &DeathSystem{}
}

// Initialize caches store pointers.
func (s *DeathSystem) Initialize(w *engine.World) {
	s.healths = engine.GetStore[component.HealthComponent](w)
	s.deads = engine.GetStore[component.DeadComponent](w)
}

// Update scans living entities with health and marks the depleted ones.
func (s *DeathSystem) Update(w *engine.World, dt time.Duration) {
	s.dying = s.dying[:0]

	res := w.Query().With(s.healths).Without(s.deads).Execute()
	for res.Next() {
		e := res.Entity()
		if hp, ok := s.healths.Get(e); ok && hp.Depleted() {
			s.dying = append(s.dying, e)
		}
	}

	for _, e := range s.dying {
		engine.Set(w, e, component.DeadComponent{})
		engine.Set(w, e, component.AudioTriggerComponent{Cue: component.CueError})
	}
}

// Shutdown is a no-op.
func (s *DeathSystem) Shutdown(w *engine.World) {}
