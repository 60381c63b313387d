package engine

import (
	"reflect"
	"sort"

	"github.com/google/uuid"

	"github.com/eskarin-dev/gridfall/core"
)

// World owns the set of live entities and the registry of component stores.
// One store exists per component type, created lazily on first use.
//
// A World is exclusively owned by the single goroutine that drives the frame
// loop; it carries no locks. See the scheduling notes on Scheduler.
type World struct {
	id     uuid.UUID
	nextID uint64
	alive  map[uint64]struct{}

	stores  map[reflect.Type]AnyStore
	ordered []AnyStore

	// Resources holds per-type singletons (config, screen handles) that
	// systems share without coupling to the wiring layer.
	Resources *ResourceStore
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		id:        uuid.New(),
		nextID:    1,
		alive:     make(map[uint64]struct{}),
		stores:    make(map[reflect.Type]AnyStore),
		Resources: NewResourceStore(),
	}
}

// ID returns the world's instance identifier, used to correlate log lines
// when multiple worlds run in one process.
func (w *World) ID() uuid.UUID {
	return w.id
}

// CreateEntity allocates the next unused id and returns a live, componentless
// handle. Ids are strictly increasing and never reused within a process run.
func (w *World) CreateEntity() core.Entity {
	id := w.nextID
	w.nextID++
	w.alive[id] = struct{}{}
	return core.Entity{ID: id, Alive: true}
}

// DestroyEntity removes the entity's component from every store that holds it
// and marks the entity dead. Calling it on an already-destroyed or unknown
// handle is a no-op; cleanup paths rely on that.
func (w *World) DestroyEntity(e core.Entity) {
	if _, ok := w.alive[e.ID]; !ok {
		return
	}
	for _, s := range w.ordered {
		s.Remove(e)
	}
	delete(w.alive, e.ID)
}

// Alive reports the authoritative liveness of a handle. The Alive flag on the
// handle itself is only a snapshot from when it was issued.
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.alive[e.ID]
	return ok
}

// EntityCount returns the number of currently-alive entities.
func (w *World) EntityCount() int {
	return len(w.alive)
}

// AllEntities returns a snapshot of all currently-alive entities in id order.
func (w *World) AllEntities() []core.Entity {
	ids := make([]uint64, 0, len(w.alive))
	for id := range w.alive {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]core.Entity, len(ids))
	for i, id := range ids {
		result[i] = core.Entity{ID: id, Alive: true}
	}
	return result
}

// Clear removes all entities and components. The id counter is not reset, so
// handles from before the clear never alias new entities. Used by level
// transitions and tests.
func (w *World) Clear() {
	clear(w.alive)
	for _, s := range w.ordered {
		s.Clear()
	}
}

// GetStore returns the component store for type T, creating and registering
// it on first use. Systems call this once at construction and cache the
// pointer; it remains valid for the lifetime of the world.
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.stores[t] = s
	w.ordered = append(w.ordered, s)
	return s
}
