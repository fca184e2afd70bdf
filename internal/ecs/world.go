package ecs

import (
	"fmt"
	"slices"
)

// World holds every entity and its attached components.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
}

// NewWorld returns an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a fresh entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// DestroyEntity removes the entity and all of its components.
// Destroying an entity twice is a caller bug and reports ErrNoSuchEntity.
func (w *World) DestroyEntity(id EntityID) error {
	if !w.alive[id] {
		return fmt.Errorf("destroy entity %d: %w", id, ErrNoSuchEntity)
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
	return nil
}

// Alive reports whether the entity exists.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.alive)
}

// Add attaches c to the entity, replacing any component of the same type.
// Components are values: callers write back after mutating a copy.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of type t for the entity, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches the component of type t from the entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether the entity carries a component of type t.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns the live entities carrying every listed component type,
// in ascending ID order so that systems driven by a seeded RNG replay identically.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Iterate the smallest store.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}
