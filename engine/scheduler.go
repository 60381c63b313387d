package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// System is a unit of per-frame logic. Systems read and write the world
// through queries and component setters; they never reach into store
// internals.
type System interface {
	// Initialize runs once before the first tick. Systems acquire and cache
	// their store pointers here.
	Initialize(w *World)

	// Update runs once per frame. Writes made by systems earlier in the
	// frame are visible to systems later in the same frame.
	Update(w *World, dt time.Duration)

	// Shutdown runs once when the scheduler stops, in reverse registration
	// order.
	Shutdown(w *World)
}

// Scheduler drives registered systems once per frame, strictly in
// registration order. Scheduling is single-threaded and cooperative: each
// system's Update runs to completion before the next starts, and no engine
// call blocks or suspends. Failures inside a system are not caught here;
// they propagate to whatever drives the tick loop.
type Scheduler struct {
	world   *World
	systems []System
	started bool
}

// NewScheduler creates a scheduler bound to a world.
func NewScheduler(w *World) *Scheduler {
	return &Scheduler{
		world:   w,
		systems: make([]System, 0, 16),
	}
}

// Register appends a system. Registration order is execution order.
// Registering after Start initializes the system immediately and slots it
// at the end of the frame.
func (s *Scheduler) Register(sys System) {
	s.systems = append(s.systems, sys)
	if s.started {
		sys.Initialize(s.world)
	}
}

// Start initializes all registered systems in registration order.
func (s *Scheduler) Start() {
	if s.started {
		return
	}
	s.started = true
	for _, sys := range s.systems {
		sys.Initialize(s.world)
	}
}

// Tick runs one frame: every system's Update, in registration order.
func (s *Scheduler) Tick(dt time.Duration) {
	for _, sys := range s.systems {
		sys.Update(s.world, dt)
	}
}

// Stop shuts all systems down in reverse registration order.
func (s *Scheduler) Stop() {
	if !s.started {
		return
	}
	for i := len(s.systems) - 1; i >= 0; i-- {
		s.systems[i].Shutdown(s.world)
	}
	s.started = false
}

// monitoredSystem wraps a system and logs updates that exceed the frame
// budget. The wrapped system is otherwise untouched; in particular its
// failures still propagate.
type monitoredSystem struct {
	inner  System
	log    *zap.Logger
	budget time.Duration
	name   string
}

// Monitored decorates a system with update timing. Updates slower than
// budget are logged as warnings with the system name and elapsed time.
func Monitored(sys System, log *zap.Logger, budget time.Duration) System {
	return &monitoredSystem{
		inner:  sys,
		log:    log,
		budget: budget,
		name:   fmt.Sprintf("%T", sys),
	}
}

func (m *monitoredSystem) Initialize(w *World) {
	m.inner.Initialize(w)
}

func (m *monitoredSystem) Update(w *World, dt time.Duration) {
	start := time.Now()
	m.inner.Update(w, dt)
	if elapsed := time.Since(start); elapsed > m.budget {
		m.log.Warn("system over frame budget",
			zap.String("system", m.name),
			zap.Duration("elapsed", elapsed),
			zap.Duration("budget", m.budget),
			zap.String("world", w.ID().String()),
		)
	}
}

func (m *monitoredSystem) Shutdown(w *World) {
	m.inner.Shutdown(w)
}
