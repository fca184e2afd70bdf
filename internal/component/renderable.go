package component

import (
	"spriggan/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

type Renderable struct {
	Glyph       rune
	FGColor     tcell.Color
	BGColor     tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
