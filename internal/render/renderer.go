package render

import (
	"sort"

	"spriggan/internal/component"
	"spriggan/internal/ecs"
	"spriggan/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is how many screen rows below the map the HUD uses.
const hudRows = 5

// HelpText is the static key reminder on the last row.
const HelpText = "Arrows to move - Space to attack around you"

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for a map of the given size.
func NewRenderer(screen tcell.Screen, worldW, worldH int) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, max(1, h-hudRows), worldW, worldH),
	}
}

// Resize re-reads the screen size after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(1, h-hudRows))
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// DrawFrame clears the screen and renders tiles then entities.
func (r *Renderer) DrawFrame(w *ecs.World, gmap *gamemap.Map) {
	r.screen.Clear()
	r.drawMap(gmap)
	r.drawEntities(w)
}

func (r *Renderer) drawMap(gmap *gamemap.Map) {
	for idx, tile := range gmap.Tiles {
		x, y := gmap.Coord(idx)
		sx, sy, onScreen := r.camera.WorldToScreen(x, y)
		if !onScreen {
			continue
		}
		glyph, style := tileLook(tile)
		r.putGlyph(sx, sy, glyph, style)
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	pos  component.Position
	rend component.Renderable
}

// drawEntities renders every entity with Renderable + Position, lowest RenderOrder first.
func (r *Renderer) drawEntities(w *ecs.World) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, renderableEntity{
			pos:  w.Get(id, component.CPosition).(component.Position),
			rend: w.Get(id, component.CRenderable).(component.Renderable),
		})
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].rend.RenderOrder < entities[j].rend.RenderOrder
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(e.rend.BGColor)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// putGlyph draws one glyph, blanking the second column of wide runes.
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
