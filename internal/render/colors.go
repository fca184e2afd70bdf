package render

import (
	"spriggan/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

var (
	floorStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 128, 128)).Background(tcell.ColorBlack)
	wallStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 0)).Background(tcell.ColorBlack)
	helpStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	hudStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	msgStyle   = tcell.StyleDefault.Foreground(tcell.ColorLightYellow).Background(tcell.ColorBlack)
	deathStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

// tileLook returns the glyph and style for a tile kind.
func tileLook(t gamemap.Tile) (rune, tcell.Style) {
	if t == gamemap.TileWall {
		return '#', wallStyle
	}
	return '.', floorStyle
}
