package component

import "sokoban/internal/ecs"

const (
	CTagPlayer  ecs.ComponentType = 3
	CTagBox     ecs.ComponentType = 4
	CTagBoxSpot ecs.ComponentType = 5
	CTagWall    ecs.ComponentType = 6
	CTagFloor   ecs.ComponentType = 7
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagBox marks a pushable crate.
type TagBox struct{}

func (TagBox) Type() ecs.ComponentType { return CTagBox }

// TagBoxSpot marks a cell a crate must reach.
type TagBoxSpot struct{}

func (TagBoxSpot) Type() ecs.ComponentType { return CTagBoxSpot }

// TagWall marks an impassable cell.
type TagWall struct{}

func (TagWall) Type() ecs.ComponentType { return CTagWall }

// TagFloor marks open floor. It only matters to renderers.
type TagFloor struct{}

func (TagFloor) Type() ecs.ComponentType { return CTagFloor }
