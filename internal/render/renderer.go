// Package render draws game snapshots and status onto a tcell screen.
package render

import (
	"sokoban/internal/game"
	"sokoban/internal/level"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved at the bottom for the HUD.
const HUDRows = 5

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, max(h-HUDRows, 0)),
	}
}

// Camera exposes the camera for coordinate conversion.
func (r *Renderer) Camera() *Camera { return r.camera }

// Draw renders one complete frame: board, HUD and messages.
func (r *Renderer) Draw(g *game.Game, messages []string) {
	st := g.Status()
	r.DrawFrame(g.Snapshot(), st)
	r.DrawHUD(st, messages)
	r.screen.Show()
}

// DrawFrame clears the screen and paints the sprites. Sprites must be in
// paint order, as returned by Game.Snapshot.
func (r *Renderer) DrawFrame(sprites []game.Sprite, st game.Status) {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(h-HUDRows, 0))

	fx, fy := st.Width/2, st.Height/2
	for _, s := range sprites {
		if s.Kind == level.KindPlayer {
			fx, fy = s.Pos.X, s.Pos.Y
		}
	}
	r.camera.Frame(st.Width, st.Height, fx, fy)

	r.screen.Clear()
	backdrop := PaletteFor(st.Mode).Backdrop
	for _, s := range sprites {
		sx, sy, onScreen := r.camera.WorldToScreen(s.Pos.X, s.Pos.Y)
		if !onScreen {
			continue
		}
		bg := s.Renderable.BGColor
		if bg == tcell.ColorDefault {
			bg = backdrop
		}
		style := tcell.StyleDefault.Foreground(s.Renderable.FGColor).Background(bg)
		r.putGlyph(sx, sy, s.Renderable.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Fill the second column so narrow glyphs keep the grid aligned.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
