package render

import (
	"sokoban/internal/resource"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the colours of the board backdrop and the HUD for one
// gameplay mode. Emoji carry their own colours, so the mode is shown
// through the backdrop and status text instead.
type Palette struct {
	Backdrop  tcell.Color // behind every board cell
	Status    tcell.Color // status line text
	Separator tcell.Color
	Message   tcell.Color
}

// Palettes maps each gameplay mode to its colours.
var Palettes = map[resource.Mode]Palette{
	resource.Playing: {
		Backdrop:  tcell.ColorBlack,
		Status:    tcell.ColorWhite,
		Separator: tcell.ColorGray,
		Message:   tcell.ColorLightYellow,
	},
	resource.Won: {
		Backdrop:  tcell.ColorDarkGreen,
		Status:    tcell.ColorLightGreen,
		Separator: tcell.ColorGreen,
		Message:   tcell.ColorLightYellow,
	},
}

// PaletteFor returns the palette for mode, falling back to Playing.
func PaletteFor(mode resource.Mode) Palette {
	if p, ok := Palettes[mode]; ok {
		return p
	}
	return Palettes[resource.Playing]
}
