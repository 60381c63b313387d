package engine

import (
	"github.com/eskarin-dev/gridfall/core"
)

// Store is the component pool for a single component type T.
// It pairs a map (O(1) probes) with an insertion-order entity slice so that
// full iteration and the smallest-pool query seed stay cheap.
//
// Stores are owned by the single update goroutine that drives the world;
// they carry no locks. Mutating a store while a query cursor is iterating
// over it is undefined - collect results first if that is needed.
type Store[T any] struct {
	components map[uint64]T
	entities   []core.Entity
}

// NewStore creates an empty component store for type T.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[uint64]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or overwrites the component for an entity. It performs no
// liveness validation: setting a component on a destroyed or never-created
// handle succeeds silently.
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e.ID]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e.ID] = val
}

// Get retrieves the component for an entity.
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e.ID]
	return val, ok
}

// Remove deletes the component for an entity. No-op if absent.
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e.ID]; !exists {
		return
	}
	delete(s.components, e.ID)
	for i, ent := range s.entities {
		if ent.ID == e.ID {
			s.entities[i] = s.entities[len(s.entities)-1]
			s.entities = s.entities[:len(s.entities)-1]
			break
		}
	}
}

// Has reports whether the entity holds this component.
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e.ID]
	return ok
}

// Len returns the number of entities holding this component.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// All returns a snapshot of the entities holding this component,
// in insertion order.
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Each calls fn for every (entity, component) pair in insertion order.
// fn must not mutate the store.
func (s *Store[T]) Each(fn func(core.Entity, T)) {
	for _, e := range s.entities {
		fn(e, s.components[e.ID])
	}
}

// Clear removes every component from the store.
func (s *Store[T]) Clear() {
	s.components = make(map[uint64]T)
	s.entities = s.entities[:0]
}

// RemoveBatch deletes multiple entities in a single pass - O(n+m) versus
// O(n*m) for individual removes.
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 || len(s.components) == 0 {
		return
	}

	toRemove := make(map[uint64]struct{}, len(entities))
	for _, e := range entities {
		if _, exists := s.components[e.ID]; exists {
			toRemove[e.ID] = struct{}{}
			delete(s.components, e.ID)
		}
	}
	if len(toRemove) == 0 {
		return
	}

	writeIdx := 0
	for _, e := range s.entities {
		if _, remove := toRemove[e.ID]; !remove {
			s.entities[writeIdx] = e
			writeIdx++
		}
	}
	s.entities = s.entities[:writeIdx]
}

// view exposes the internal entity slice to query cursors in this package.
// Callers must treat it as read-only and must not retain it across store
// mutations.
func (s *Store[T]) view() []core.Entity {
	return s.entities
}
