package render

import (
	"fmt"
	"sync"

	"sokoban/internal/event"
)

// DefaultMessageCap bounds how many lines a MessageLog keeps.
const DefaultMessageCap = 50

// MessageLog is an event.Consumer that turns gameplay events into
// human-readable HUD lines. It is safe for concurrent use.
type MessageLog struct {
	mu    sync.Mutex
	lines []string
	cap   int
}

// NewMessageLog creates a log keeping at most capacity lines.
func NewMessageLog(capacity int) *MessageLog {
	if capacity <= 0 {
		capacity = DefaultMessageCap
	}
	return &MessageLog{cap: capacity}
}

// Consume implements event.Consumer. Unknown kinds are ignored.
func (l *MessageLog) Consume(e event.Event) {
	switch e.Kind {
	case event.BoxEnteredSpot:
		l.Add(fmt.Sprintf("Box placed on spot at (%d,%d).", e.Pos.X, e.Pos.Y))
	case event.BoxLeftSpot:
		l.Add(fmt.Sprintf("Box pushed off spot at (%d,%d).", e.Pos.X, e.Pos.Y))
	case event.PuzzleSolved:
		l.Add("Puzzle solved! Press n for the next level.")
	}
}

// Add appends a line, dropping the oldest when full.
func (l *MessageLog) Add(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, msg)
	if over := len(l.lines) - l.cap; over > 0 {
		l.lines = append(l.lines[:0:0], l.lines[over:]...)
	}
}

// Lines returns a copy of the retained lines, oldest first.
func (l *MessageLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Clear drops every line.
func (l *MessageLog) Clear() {
	l.mu.Lock()
	l.lines = nil
	l.mu.Unlock()
}
