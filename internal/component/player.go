package component

import "spriggan/internal/ecs"

const CPlayer ecs.ComponentType = 3

// Player marks the keyboard-controlled entity and carries its hit points.
type Player struct {
	HP int
}

func (Player) Type() ecs.ComponentType { return CPlayer }
