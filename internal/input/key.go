package input

import "sokoban/internal/gamemap"

// Key is an abstract key code produced by an input collaborator.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyRestart
	KeyNextLevel
	KeyPrevLevel
	KeyQuit
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyRestart:   "Restart",
	KeyNextLevel: "NextLevel",
	KeyPrevLevel: "PrevLevel",
	KeyQuit:      "Quit",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// Direction maps a key to a movement direction. Keys that are not
// directions map to gamemap.DirNone.
func (k Key) Direction() gamemap.Direction {
	switch k {
	case KeyUp:
		return gamemap.DirUp
	case KeyDown:
		return gamemap.DirDown
	case KeyLeft:
		return gamemap.DirLeft
	case KeyRight:
		return gamemap.DirRight
	}
	return gamemap.DirNone
}
