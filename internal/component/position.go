package component

import "spriggan/internal/ecs"

const CPosition ecs.ComponentType = 1

type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Chebyshev returns max(|dx|, |dy|) between p and o.
func (p Position) Chebyshev(o Position) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
