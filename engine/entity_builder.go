package engine

import (
	"github.com/eskarin-dev/gridfall/component"
	"github.com/eskarin-dev/gridfall/core"
)

// EntityBuilder provides a fluent interface for constructing an entity with
// its initial components. The id is reserved up front; Build returns the
// finished handle.
//
// Example:
//
//	e := engine.With(
//	    engine.With(world.NewEntity(), component.PositionComponent{}),
//	    component.GlyphComponent{Rune: '@'},
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity starts building an entity. The id is allocated immediately.
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With attaches a component to the entity under construction.
// Panics if called after Build.
func With[T any](eb *EntityBuilder, v T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	Set(eb.world, eb.entity, v)
	return eb
}

// Named attaches a NameComponent.
func (eb *EntityBuilder) Named(name string) *EntityBuilder {
	return With(eb, component.NameComponent{Name: name})
}

// Tagged attaches a TagComponent with the given tags.
func (eb *EntityBuilder) Tagged(tags ...string) *EntityBuilder {
	return With(eb, component.TagComponent{Tags: tags})
}

// Build finalizes construction and returns the entity handle.
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
