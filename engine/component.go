package engine

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/eskarin-dev/gridfall/core"
)

// ErrMissingComponent is returned by Get when the entity does not hold the
// requested component type. Callers that expect absence use TryGet instead.
var ErrMissingComponent = errors.New("missing component")

// Set attaches or overwrites component v on entity e. Upsert semantics, no
// liveness validation: setting on a destroyed or never-created handle
// succeeds silently and the data is reachable through that handle's id.
func Set[T any](w *World, e core.Entity, v T) {
	GetStore[T](w).Set(e, v)
}

// Get retrieves the T component of e. It fails with ErrMissingComponent when
// e holds no T; the error is not caught anywhere in the engine core and
// propagates to whatever drives the calling system.
func Get[T any](w *World, e core.Entity) (T, error) {
	v, ok := GetStore[T](w).Get(e)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s on entity %d",
			ErrMissingComponent, reflect.TypeOf((*T)(nil)).Elem().Name(), e.ID)
	}
	return v, nil
}

// TryGet retrieves the T component of e, reporting absence via the bool
// instead of an error. The zero value is returned on absence.
func TryGet[T any](w *World, e core.Entity) (T, bool) {
	return GetStore[T](w).Get(e)
}

// Has reports in O(1) whether e holds a T component.
func Has[T any](w *World, e core.Entity) bool {
	return GetStore[T](w).Has(e)
}

// Remove detaches the T component from e. No-op if absent.
func Remove[T any](w *World, e core.Entity) {
	GetStore[T](w).Remove(e)
}

// TryGet2 fetches two components of e in one pass. It returns true only when
// both are present; on false the returned values are the types' zero values.
// Hot per-entity code uses this instead of repeated individual lookups.
func TryGet2[A, B any](w *World, e core.Entity) (A, B, bool) {
	var za A
	var zb B
	a, ok := GetStore[A](w).Get(e)
	if !ok {
		return za, zb, false
	}
	b, ok := GetStore[B](w).Get(e)
	if !ok {
		return za, zb, false
	}
	return a, b, true
}

// TryGet3 fetches three components of e in one pass; true only when all
// three are present.
func TryGet3[A, B, C any](w *World, e core.Entity) (A, B, C, bool) {
	var za A
	var zb B
	var zc C
	a, ok := GetStore[A](w).Get(e)
	if !ok {
		return za, zb, zc, false
	}
	b, ok := GetStore[B](w).Get(e)
	if !ok {
		return za, zb, zc, false
	}
	c, ok := GetStore[C](w).Get(e)
	if !ok {
		return za, zb, zc, false
	}
	return a, b, c, true
}
