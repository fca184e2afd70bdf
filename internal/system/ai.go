package system

import (
	"math/rand"

	"spriggan/internal/component"
	"spriggan/internal/ecs"
	"spriggan/internal/gamemap"
)

// Rules holds the switchable parts of monster behaviour.
type Rules struct {
	// MonsterWallCollision stops monsters from stepping onto walls. Off by
	// default: monsters walk through walls while the player cannot.
	MonsterWallCollision bool
}

// AIResult counts what the monsters did this turn.
type AIResult struct {
	Chased   int
	Wandered int
	Blocked  int
}

// cardinal lists the four wander steps in roll order.
var cardinal = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// ProcessAI moves every monster one step. A monster with a player inside
// ChaseRadius steps toward the nearest one; otherwise it takes a random
// cardinal step. Monsters never leave the map.
func ProcessAI(w *ecs.World, gmap *gamemap.Map, rng *rand.Rand, rules Rules) AIResult {
	var players []component.Position
	for _, id := range w.Query(component.CPlayer, component.CPosition) {
		players = append(players, w.Get(id, component.CPosition).(component.Position))
	}

	var res AIResult
	for _, id := range w.Query(component.CMonster, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)

		var dx, dy int
		if target, ok := nearestPlayer(players, pos); ok {
			dx, dy = stepToward(pos, target)
			res.Chased++
		} else {
			step := cardinal[rng.Intn(len(cardinal))]
			dx, dy = step[0], step[1]
			res.Wandered++
		}

		nx, ny := gmap.Clamp(pos.X+dx, pos.Y+dy)
		if rules.MonsterWallCollision && gmap.IsWall(nx, ny) {
			res.Blocked++
			continue
		}
		w.Add(id, component.Position{X: nx, Y: ny})
	}
	return res
}

// nearestPlayer returns the closest player (Chebyshev) within ChaseRadius of pos.
// Ties go to the first player found.
func nearestPlayer(players []component.Position, pos component.Position) (component.Position, bool) {
	best := component.Position{}
	bestDist := -1
	for _, p := range players {
		if !Adjacent(ChaseRadius, p, pos) {
			continue
		}
		d := p.Chebyshev(pos)
		if bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist >= 0
}

// stepToward returns a unit step from pos toward target along the axis with
// the larger gap, preferring x on a tie.
func stepToward(pos, target component.Position) (int, int) {
	dx := target.X - pos.X
	dy := target.Y - pos.Y
	if abs(dx) >= abs(dy) {
		return sign(dx), 0
	}
	return 0, sign(dy)
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
