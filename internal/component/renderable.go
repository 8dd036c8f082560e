package component

import (
	"sokoban/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

// Paint order when several entities share a cell; higher draws on top.
const (
	OrderFloor  = 0
	OrderWall   = 1
	OrderSpot   = 2
	OrderBox    = 3
	OrderPlayer = 4
)

// Renderable is how an entity is drawn.
type Renderable struct {
	Sprite      string // visual identity, e.g. "box"
	Glyph       string
	FGColor     tcell.Color
	BGColor     tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
