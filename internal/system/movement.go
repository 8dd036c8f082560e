package system

import (
	"sokoban/internal/component"
	"sokoban/internal/ecs"
	"sokoban/internal/event"
	"sokoban/internal/gamemap"
	"sokoban/internal/resource"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveNone    MoveResult = iota // no direction requested
	MoveOK                        // player stepped onto open floor
	MovePushed                    // player stepped and pushed a box
	MoveBlocked                   // wall, box jam, or edge of the grid
	MoveFrozen                    // puzzle already solved
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MovePushed:
		return "pushed"
	case MoveBlocked:
		return "blocked"
	case MoveFrozen:
		return "frozen"
	}
	return "none"
}

// Board is the spatial state movement works on.
type Board struct {
	World  *ecs.World
	Map    *gamemap.GameMap
	Player ecs.EntityID
}

// cell summarises what occupies one grid cell.
type cell struct {
	wall bool
	box  ecs.EntityID
	spot bool
}

func (b Board) cellAt(x, y int) cell {
	var c cell
	if !b.Map.IsWalkable(x, y) {
		c.wall = true
	}
	for _, id := range b.World.Query(component.CTagWall, component.CPosition) {
		if p := b.World.Get(id, component.CPosition).(component.Position); p.X == x && p.Y == y {
			c.wall = true
			break
		}
	}
	for _, id := range b.World.Query(component.CTagBox, component.CPosition) {
		if p := b.World.Get(id, component.CPosition).(component.Position); p.X == x && p.Y == y {
			c.box = id
			break
		}
	}
	for _, id := range b.World.Query(component.CTagBoxSpot, component.CPosition) {
		if p := b.World.Get(id, component.CPosition).(component.Position); p.X == x && p.Y == y {
			c.spot = true
			break
		}
	}
	return c
}

// TryMove attempts to move the player one cell in dir, pushing a box if
// one is in the way. Rejected moves change nothing and emit nothing.
// Successful moves bump gp.Moves; pushes append spot events to events.
func TryMove(b Board, gp *resource.Gameplay, events *event.Queue, dir gamemap.Direction) MoveResult {
	if dir == gamemap.DirNone {
		return MoveNone
	}
	posComp := b.World.Get(b.Player, component.CPosition)
	if posComp == nil {
		return MoveBlocked
	}
	pos := posComp.(component.Position)
	tx, ty := dir.Step(pos.X, pos.Y)

	target := b.cellAt(tx, ty)
	if target.wall {
		return MoveBlocked
	}

	if target.box == ecs.NilEntity {
		b.World.Set(b.Player, component.Position{X: tx, Y: ty})
		gp.Moves++
		return MoveOK
	}

	// Push: the cell beyond the box must be free of walls and boxes.
	bx, by := dir.Step(tx, ty)
	beyond := b.cellAt(bx, by)
	if beyond.wall || beyond.box != ecs.NilEntity {
		return MoveBlocked
	}

	b.World.Set(target.box, component.Position{X: bx, Y: by})
	b.World.Set(b.Player, component.Position{X: tx, Y: ty})
	gp.Moves++

	if target.spot {
		events.Push(event.Event{Kind: event.BoxLeftSpot, Pos: component.Position{X: tx, Y: ty}})
	}
	if beyond.spot {
		events.Push(event.Event{Kind: event.BoxEnteredSpot, Pos: component.Position{X: bx, Y: by}})
	}
	return MovePushed
}
