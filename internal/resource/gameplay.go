package resource

import "time"

// Mode is the two-valued gameplay state.
type Mode uint8

const (
	Playing Mode = iota
	Won
)

func (m Mode) String() string {
	switch m {
	case Playing:
		return "Playing"
	case Won:
		return "Won"
	}
	return "Unknown"
}

// Gameplay tracks aggregate puzzle state. Mode is written only by the win
// evaluator and Moves only by movement resolution.
type Gameplay struct {
	Mode  Mode
	Moves uint32
}

// Time accumulates elapsed wall-clock time across ticks.
type Time struct {
	Delta time.Duration
}

// Advance adds dt to the accumulated time.
func (t *Time) Advance(dt time.Duration) {
	if dt > 0 {
		t.Delta += dt
	}
}
