package ecs

import "errors"

// EntityID uniquely identifies an entity in the world.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

var (
	// ErrDuplicateComponent is returned when a component type is attached
	// to an entity that already holds one of that type.
	ErrDuplicateComponent = errors.New("ecs: component type already attached")
	// ErrNoEntity is returned when an operation names an entity that was never created.
	ErrNoEntity = errors.New("ecs: no such entity")
)
