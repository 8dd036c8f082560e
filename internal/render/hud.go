package render

import (
	"fmt"
	"time"

	"sokoban/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HelpLine lists the controls; it is drawn on the last HUD row.
const HelpLine = "arrows/hjkl/wasd move  r restart  n/p level  q quit"

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(st game.Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows
	if hudY < 0 {
		return
	}
	pal := PaletteFor(st.Mode)

	r.drawHLine(hudY, pal.Separator)
	r.drawText(0, hudY+1, StatusLine(st), tcell.StyleDefault.Foreground(pal.Status))

	// Message log (last 2 messages).
	start := len(messages) - 2
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(pal.Message))
	}
	r.drawText(0, hudY+4, HelpLine, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// StatusLine formats the one-line gameplay summary.
func StatusLine(st game.Status) string {
	level := st.Level
	if st.LevelCount > 0 {
		level = fmt.Sprintf("%d/%d %s", st.LevelIndex+1, st.LevelCount, st.Level)
	}
	return fmt.Sprintf("Level %s  Moves: %d  Boxes: %d/%d  Time: %s  %s",
		level, st.Moves, st.Satisfied, st.Boxes,
		st.Elapsed.Truncate(100*time.Millisecond), st.Mode)
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
		col += runewidth.RuneWidth(ch)
	}
}
