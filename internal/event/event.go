// Package event carries semantic gameplay notifications from the
// simulation to presentation and audio consumers.
package event

import (
	"fmt"

	"sokoban/internal/component"
)

// Kind identifies an event variant. Consumers must ignore kinds they do
// not know.
type Kind uint8

const (
	BoxEnteredSpot Kind = iota + 1
	BoxLeftSpot
	PuzzleSolved
)

func (k Kind) String() string {
	switch k {
	case BoxEnteredSpot:
		return "BoxEnteredSpot"
	case BoxLeftSpot:
		return "BoxLeftSpot"
	case PuzzleSolved:
		return "PuzzleSolved"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Event is pure data. Pos is the affected cell; it is zero for PuzzleSolved.
type Event struct {
	Kind Kind
	Pos  component.Position
}

func (e Event) String() string {
	if e.Kind == PuzzleSolved {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%d,%d)", e.Kind, e.Pos.X, e.Pos.Y)
}

// Consumer receives drained events, once each, in insertion order.
type Consumer interface {
	Consume(Event)
}

// ConsumerFunc adapts a plain function to Consumer.
type ConsumerFunc func(Event)

func (f ConsumerFunc) Consume(e Event) { f(e) }
