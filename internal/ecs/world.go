package ecs

import "fmt"

// World is the central entity registry and component store.
// Entities are never destroyed; a level reload builds a new World.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// Spawn creates an entity holding the given components. The component set is
// checked before the entity is minted, so a rejected set leaves w unchanged.
func (w *World) Spawn(cs ...Component) (EntityID, error) {
	seen := make(map[ComponentType]bool, len(cs))
	for _, c := range cs {
		t := c.Type()
		if seen[t] {
			return NilEntity, fmt.Errorf("spawn: type %d: %w", t, ErrDuplicateComponent)
		}
		seen[t] = true
	}
	id := w.CreateEntity()
	for _, c := range cs {
		w.put(id, c)
	}
	return id, nil
}

// Alive reports whether the entity exists.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Len returns the number of entities in the world.
func (w *World) Len() int {
	return len(w.alive)
}

// Add attaches a component to an entity. Attaching a type the entity
// already holds fails with ErrDuplicateComponent.
func (w *World) Add(id EntityID, c Component) error {
	if !w.alive[id] {
		return fmt.Errorf("add to %d: %w", id, ErrNoEntity)
	}
	if w.Has(id, c.Type()) {
		return fmt.Errorf("add to %d: type %d: %w", id, c.Type(), ErrDuplicateComponent)
	}
	w.put(id, c)
	return nil
}

// Set replaces a component the entity already holds (e.g. its Position).
// It reports false and changes nothing when the entity lacks that type.
func (w *World) Set(id EntityID, c Component) bool {
	if !w.Has(id, c.Type()) {
		return false
	}
	w.put(id, c)
	return true
}

func (w *World) put(id EntityID, c Component) {
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all entities that have every listed component type.
// The result order is unspecified.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
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
	return result
}
