package game

import (
	"github.com/gdamore/tcell/v2"

	"spriggan/internal/turn"
)

// keyToTurn maps a tcell key event to a turn key. quit is true for the keys
// that end the game instead of feeding the turn controller.
func keyToTurn(ev *tcell.EventKey) (key turn.Key, quit bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return turn.KeyLeft, false
	case tcell.KeyRight:
		return turn.KeyRight, false
	case tcell.KeyUp:
		return turn.KeyUp, false
	case tcell.KeyDown:
		return turn.KeyDown, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return turn.KeyNone, true
	case tcell.KeyRune:
	default:
		return turn.KeyOther, false
	}

	switch ev.Rune() {
	case ' ':
		return turn.KeyAttack, false
	case 'h':
		return turn.KeyLeft, false
	case 'l':
		return turn.KeyRight, false
	case 'k':
		return turn.KeyUp, false
	case 'j':
		return turn.KeyDown, false
	case 'q', 'Q':
		return turn.KeyNone, true
	}
	return turn.KeyOther, false
}
