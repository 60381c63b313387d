package engine

import (
	"github.com/eskarin-dev/gridfall/component"
	"github.com/eskarin-dev/gridfall/core"
)

// CreateNamedEntity creates a fresh entity carrying a NameComponent.
func (w *World) CreateNamedEntity(name string) core.Entity {
	e := w.CreateEntity()
	Set(w, e, component.NameComponent{Name: name})
	return e
}

// EntitiesWithTag returns every entity whose tag set contains tag, in tag
// pool order. An empty tag matches nothing. The scan touches only tagged
// entities, not the whole world.
func (w *World) EntitiesWithTag(tag string) []core.Entity {
	if tag == "" {
		return nil
	}
	var result []core.Entity
	GetStore[component.TagComponent](w).Each(func(e core.Entity, tc component.TagComponent) {
		if tc.Contains(tag) {
			result = append(result, e)
		}
	})
	return result
}

// FindEntityByName returns the first entity whose NameComponent equals name.
// Duplicate names are allowed; which duplicate wins follows the pool's
// iteration order, which is not part of the contract. An empty name never
// matches.
func (w *World) FindEntityByName(name string) (core.Entity, bool) {
	if name == "" {
		return core.NoEntity, false
	}
	store := GetStore[component.NameComponent](w)
	for _, e := range store.view() {
		if nc, ok := store.Get(e); ok && nc.Name == name {
			return e, true
		}
	}
	return core.NoEntity, false
}
