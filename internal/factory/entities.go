package factory

import (
	"fmt"

	"sokoban/assets"
	"sokoban/internal/component"
	"sokoban/internal/ecs"
	"sokoban/internal/level"

	"github.com/gdamore/tcell/v2"
)

func renderable(sprite string, order int) component.Renderable {
	def := assets.Sprites[sprite]
	return component.Renderable{
		Sprite:      sprite,
		Glyph:       def.Glyph,
		FGColor:     def.FGColor,
		BGColor:     tcell.ColorDefault,
		RenderOrder: order,
	}
}

// NewFloor creates an open floor cell entity.
func NewFloor(w *ecs.World, x, y int) (ecs.EntityID, error) {
	return w.Spawn(
		component.Position{X: x, Y: y},
		renderable(assets.SpriteFloor, component.OrderFloor),
		component.TagFloor{},
	)
}

// NewWall creates an impassable wall entity.
func NewWall(w *ecs.World, x, y int) (ecs.EntityID, error) {
	return w.Spawn(
		component.Position{X: x, Y: y},
		renderable(assets.SpriteWall, component.OrderWall),
		component.TagWall{},
	)
}

// NewBoxSpot creates a crate target.
func NewBoxSpot(w *ecs.World, x, y int) (ecs.EntityID, error) {
	return w.Spawn(
		component.Position{X: x, Y: y},
		renderable(assets.SpriteSpot, component.OrderSpot),
		component.TagBoxSpot{},
	)
}

// NewBox creates a pushable crate.
func NewBox(w *ecs.World, x, y int) (ecs.EntityID, error) {
	return w.Spawn(
		component.Position{X: x, Y: y},
		renderable(assets.SpriteBox, component.OrderBox),
		component.TagBox{},
	)
}

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int) (ecs.EntityID, error) {
	return w.Spawn(
		component.Position{X: x, Y: y},
		renderable(assets.SpritePlayer, component.OrderPlayer),
		component.TagPlayer{},
	)
}

// Populate spawns every descriptor of lvl into w and returns the player.
func Populate(w *ecs.World, lvl *level.Level) (ecs.EntityID, error) {
	player := ecs.NilEntity
	for _, s := range lvl.Spawns {
		var (
			id  ecs.EntityID
			err error
		)
		x, y := s.Pos.X, s.Pos.Y
		switch s.Kind {
		case level.KindFloor:
			id, err = NewFloor(w, x, y)
		case level.KindWall:
			id, err = NewWall(w, x, y)
		case level.KindBoxSpot:
			id, err = NewBoxSpot(w, x, y)
		case level.KindBox:
			id, err = NewBox(w, x, y)
		case level.KindPlayer:
			id, err = NewPlayer(w, x, y)
			player = id
		default:
			err = fmt.Errorf("unknown spawn kind %v", s.Kind)
		}
		if err != nil {
			return ecs.NilEntity, fmt.Errorf("spawn %v at (%d,%d): %w", s.Kind, x, y, err)
		}
	}
	if player == ecs.NilEntity {
		return ecs.NilEntity, fmt.Errorf("level has no player")
	}
	return player, nil
}
