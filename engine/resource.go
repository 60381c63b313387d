package engine

import (
	"reflect"
)

// ResourceStore is a container for global singleton resources (config,
// screen handles, audio engine). It lets systems access shared data without
// coupling to the wiring layer. Like the rest of the world, it is owned by
// the update goroutine and unlocked.
type ResourceStore struct {
	resources map[reflect.Type]any
}

// NewResourceStore creates an empty resource store.
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource. Pointer types are
// recommended so systems observe later mutations.
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves the resource of type T. Returns the zero value and
// false if absent.
func GetResource[T any](rs *ResourceStore) (T, bool) {
	v, ok := rs.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustResource retrieves the resource of type T and panics if absent. Used
// during system construction where a missing resource is a wiring bug.
func MustResource[T any](rs *ResourceStore) T {
	v, ok := GetResource[T](rs)
	if !ok {
		panic("resource not registered: " + reflect.TypeOf((*T)(nil)).Elem().String())
	}
	return v
}
