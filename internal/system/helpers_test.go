package system

import (
	"spriggan/internal/component"
	"spriggan/internal/ecs"
	"spriggan/internal/gamemap"
)

// openMap returns a w×h map of floor.
func openMap(w, h int) *gamemap.Map {
	return gamemap.New(w, h)
}

func addPlayer(w *ecs.World, x, y, hp int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Player{HP: hp})
	return id
}

func addMonster(w *ecs.World, x, y, hp int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Monster{HP: hp})
	return id
}

func posOf(w *ecs.World, id ecs.EntityID) component.Position {
	return w.Get(id, component.CPosition).(component.Position)
}

func playerHP(w *ecs.World, id ecs.EntityID) int {
	return w.Get(id, component.CPlayer).(component.Player).HP
}

func monsterHP(w *ecs.World, id ecs.EntityID) int {
	return w.Get(id, component.CMonster).(component.Monster).HP
}
