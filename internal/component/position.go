package component

import "sokoban/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is the (column, row) grid cell an entity occupies.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
