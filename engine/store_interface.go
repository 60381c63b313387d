package engine

import (
	"github.com/eskarin-dev/gridfall/core"
)

// AnyStore provides type-erased operations for lifecycle management.
// It lets the World tear an entity down across every registered store
// without knowing the concrete component types.
type AnyStore interface {
	// Remove deletes the entity's component. No-op if absent.
	Remove(e core.Entity)

	// Has reports whether the entity holds this component.
	Has(e core.Entity) bool

	// Len returns the number of entities holding this component.
	Len() int

	// Clear removes every component from the store.
	Clear()
}

// QueryableStore extends AnyStore with the operations the query builder
// needs to seed and intersect component sets.
type QueryableStore interface {
	AnyStore

	// All returns a snapshot of the entities holding this component.
	All() []core.Entity

	// view exposes the store's entity slice without copying. Query cursors
	// in this package use it as the lazy iteration seed.
	view() []core.Entity
}
