package render

import (
	"strings"
	"testing"

	"spriggan/internal/component"
	"spriggan/internal/ecs"
	"spriggan/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func TestDrawFrameTilesAndEntities(t *testing.T) {
	s := newSimScreen(t, 80, 55)
	gmap := gamemap.New(80, 50)
	gmap.ApplyWall(gamemap.NewRect(10, 10, 6, 1))

	w := ecs.NewWorld()
	p := w.CreateEntity()
	w.Add(p, component.Position{X: 3, Y: 4})
	w.Add(p, component.Renderable{Glyph: '@', FGColor: tcell.ColorYellow, RenderOrder: 10})
	m := w.CreateEntity()
	w.Add(m, component.Position{X: 3, Y: 4})
	w.Add(m, component.Renderable{Glyph: 'X', FGColor: tcell.ColorRed, RenderOrder: 5})

	r := NewRenderer(s, gmap.Width, gmap.Height)
	r.CenterOn(3, 4)
	r.DrawFrame(w, gmap)

	if got := runeAt(s, 10, 10); got != '#' {
		t.Errorf("wall cell = %q, want '#'", got)
	}
	if got := runeAt(s, 0, 0); got != '.' {
		t.Errorf("floor cell = %q, want '.'", got)
	}
	if got := runeAt(s, 3, 4); got != '@' {
		t.Errorf("shared cell = %q, want the higher render order '@'", got)
	}
}

func TestDrawHUD(t *testing.T) {
	s := newSimScreen(t, 80, 55)
	r := NewRenderer(s, 80, 50)
	r.DrawHUD(Status{HP: 7, Turn: 3, MonstersLeft: 4, Seed: 9}, []string{"old", "first", "second"})

	if row := rowText(s, 51, 80); !strings.Contains(row, "HP: 7  Turn: 3  Monsters: 4") {
		t.Errorf("status row = %q", row)
	}
	if row := rowText(s, 52, 80); !strings.HasPrefix(row, "first") {
		t.Errorf("message row = %q, want the second-newest message", row)
	}
	if row := rowText(s, 53, 80); !strings.HasPrefix(row, "second") {
		t.Errorf("message row = %q, want the newest message", row)
	}
	if row := rowText(s, 54, 80); !strings.Contains(row, HelpText) {
		t.Errorf("help row = %q", row)
	}
}

func TestDrawHUDDeathBanner(t *testing.T) {
	s := newSimScreen(t, 80, 55)
	r := NewRenderer(s, 80, 50)
	r.DrawHUD(Status{GameOver: true}, nil)

	if row := rowText(s, 25, 80); !strings.Contains(row, "You died.") {
		t.Errorf("banner row = %q", row)
	}
}

func TestDrawFrameScrollsOnSmallScreen(t *testing.T) {
	s := newSimScreen(t, 40, 25)
	gmap := gamemap.New(80, 50)
	w := ecs.NewWorld()
	p := w.CreateEntity()
	w.Add(p, component.Position{X: 79, Y: 49})
	w.Add(p, component.Renderable{Glyph: '@'})

	r := NewRenderer(s, gmap.Width, gmap.Height)
	r.CenterOn(79, 49)
	r.DrawFrame(w, gmap)

	// Viewport is 40×20, so the bottom-right tile lands in the bottom-right cell.
	if got := runeAt(s, 39, 19); got != '@' {
		t.Fatalf("corner cell = %q, want '@'", got)
	}
}
