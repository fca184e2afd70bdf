package system

import (
	"spriggan/internal/component"
	"spriggan/internal/ecs"
	"spriggan/internal/gamemap"
)

// MoveResult describes the outcome of a move attempt.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or map edge
)

func (r MoveResult) String() string {
	if r == MoveOK {
		return "ok"
	}
	return "blocked"
}

// TryMove moves entity id by (dx, dy). The destination is clamped to the map,
// and a wall there rejects the move, leaving the position unchanged.
func TryMove(w *ecs.World, gmap *gamemap.Map, id ecs.EntityID, dx, dy int) MoveResult {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked
	}
	pos := posComp.(component.Position)

	nx, ny := gmap.Clamp(pos.X+dx, pos.Y+dy)
	if nx == pos.X && ny == pos.Y {
		return MoveBlocked
	}
	if gmap.IsWall(nx, ny) {
		return MoveBlocked
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK
}

// TryMovePlayer applies TryMove to every player. It returns MoveOK when at
// least one player moved.
func TryMovePlayer(w *ecs.World, gmap *gamemap.Map, dx, dy int) MoveResult {
	result := MoveBlocked
	for _, id := range w.Query(component.CPlayer, component.CPosition) {
		if TryMove(w, gmap, id, dx, dy) == MoveOK {
			result = MoveOK
		}
	}
	return result
}
