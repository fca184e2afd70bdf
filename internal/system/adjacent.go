package system

import "spriggan/internal/component"

const (
	// ChaseRadius is how close a player must be before a monster gives chase.
	ChaseRadius = 10
	// ContactRange is the reach of a monster's touch damage.
	ContactRange = 1
	// AttackRange is the reach of the player's sweep attack.
	AttackRange = 2
)

// Adjacent reports whether a and b are within the given Chebyshev distance.
// Diagonals count, and a position is adjacent to itself.
func Adjacent(within int, a, b component.Position) bool {
	return a.Chebyshev(b) <= within
}
