package ecs

import "errors"

// EntityID identifies an entity in a World. IDs are never reused.
type EntityID uint64

// NilEntity is the zero value; no live entity carries it.
const NilEntity EntityID = 0

// ComponentType keys a component store inside the World.
type ComponentType uint8

// Component is implemented by every record that can be attached to an entity.
type Component interface {
	Type() ComponentType
}

// ErrNoSuchEntity is returned when an operation names an entity that is not alive.
var ErrNoSuchEntity = errors.New("ecs: no such entity")
