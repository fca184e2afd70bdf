package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is what the HUD shows besides the message log.
type Status struct {
	HP           int
	Turn         int
	MonstersLeft int
	Seed         int64
	GameOver     bool
}

// DrawHUD renders the status line, the last messages and the help line, then
// flushes the screen.
func (r *Renderer) DrawHUD(st Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	status := fmt.Sprintf("HP: %d  Turn: %d  Monsters: %d  Seed: %d", st.HP, st.Turn, st.MonstersLeft, st.Seed)
	r.drawText(0, hudY+1, status, hudStyle)

	start := max(0, len(messages)-2)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, msgStyle)
	}

	r.drawText(17, screenH-1, HelpText, helpStyle)

	if st.GameOver {
		r.drawBanner("You died. Press q to quit.")
	}
	r.screen.Show()
}

// drawBanner centres text over the map viewport.
func (r *Renderer) drawBanner(text string) {
	w, h := r.screen.Size()
	text = " " + text + " "
	x := max(0, (w-runewidth.StringWidth(text))/2)
	y := max(0, (h-hudRows)/2)
	r.drawText(x, y, text, deathStyle)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
