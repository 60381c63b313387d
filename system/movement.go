package system

import (
	"time"

	"github.com/eskarin-dev/gridfall/component"
	"github.com/eskarin-dev/gridfall/core"
	"github.com/eskarin-dev/gridfall/engine"
)

// MovementSystem integrates velocity into position each frame.
type MovementSystem struct {
	positions *engine.Store[component.PositionComponent]

	// Writes are staged here and applied after the query cursor is drained;
	// stores must not be mutated under an in-flight query.
	scratch []movedEntry
}

type movedEntry struct {
	entity core.Entity
	pos    component.PositionComponent
}

// NewMovementSystem creates the system.
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Initialize caches store pointers.
func (s *MovementSystem) Initialize(w *engine.World) {
	s.positions = engine.GetStore[component.PositionComponent](w)
}

// Update advances every (Position, Velocity) entity by vel*dt.
func (s *MovementSystem) Update(w *engine.World, dt time.Duration) {
	s.scratch = s.scratch[:0]
	q := engine.Query2[component.PositionComponent, component.VelocityComponent](w)
	for q.Next() {
		pos, vel := q.Values()
		pos.Pos = pos.Pos.Add(vel.Vel.Mul(dt.Seconds()))
		s.scratch = append(s.scratch, movedEntry{entity: q.Entity(), pos: pos})
	}
	for _, m := range s.scratch {
		s.positions.Set(m.entity, m.pos)
	}
}

// Shutdown is a no-op.
func (s *MovementSystem) Shutdown(w *engine.World) {}
