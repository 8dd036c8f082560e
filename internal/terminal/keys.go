package terminal

import (
	"sokoban/internal/input"

	"github.com/gdamore/tcell/v2"
)

// KeyFromEvent maps a tcell key event to a game key.
func KeyFromEvent(ev *tcell.EventKey) input.Key {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyQuit
	case tcell.KeyRune:
	default:
		return input.KeyNone
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K', 'w', 'W':
		return input.KeyUp
	case 'j', 'J', 's', 'S':
		return input.KeyDown
	case 'l', 'L', 'd', 'D':
		return input.KeyRight
	case 'h', 'H', 'a', 'A':
		return input.KeyLeft
	case 'r', 'R':
		return input.KeyRestart
	case 'n', 'N', '>':
		return input.KeyNextLevel
	case 'p', 'P', '<':
		return input.KeyPrevLevel
	case 'q', 'Q':
		return input.KeyQuit
	}
	return input.KeyNone
}
