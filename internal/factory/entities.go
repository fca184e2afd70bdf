package factory

import (
	"spriggan/internal/component"
	"spriggan/internal/ecs"
	"spriggan/internal/generate"

	"github.com/gdamore/tcell/v2"
)

const (
	PlayerHP  = 10
	MonsterHP = 2
)

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       '@',
		FGColor:     tcell.ColorYellow,
		BGColor:     tcell.ColorBlack,
		RenderOrder: 10,
	})
	w.Add(id, component.Player{HP: PlayerHP})
	return id
}

// NewMonster creates a monster entity from a spawn entry.
func NewMonster(w *ecs.World, spawn generate.MonsterSpawn) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: spawn.X, Y: spawn.Y})
	w.Add(id, component.Renderable{
		Glyph:       spawn.Glyph,
		FGColor:     tcell.ColorRed,
		BGColor:     tcell.ColorBlack,
		RenderOrder: 5,
	})
	w.Add(id, component.Monster{HP: MonsterHP})
	return id
}

// Spawn creates every entity described by pop and returns the player's ID.
func Spawn(w *ecs.World, pop generate.PopulateResult) ecs.EntityID {
	player := NewPlayer(w, pop.Player.X, pop.Player.Y)
	for _, m := range pop.Monsters {
		NewMonster(w, m)
	}
	return player
}
