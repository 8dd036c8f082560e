package game

import (
	"sort"
	"time"

	"sokoban/internal/component"
	"sokoban/internal/ecs"
	"sokoban/internal/level"
	"sokoban/internal/resource"
	"sokoban/internal/system"
)

// Sprite is one renderable entity as seen by a renderer. Kind comes
// from the entity's tag component.
type Sprite struct {
	ID         ecs.EntityID
	Kind       level.Kind
	Pos        component.Position
	Renderable component.Renderable
}

// kindTags maps tag components to entity kinds, most specific first.
var kindTags = []struct {
	tag  ecs.ComponentType
	kind level.Kind
}{
	{component.CTagPlayer, level.KindPlayer},
	{component.CTagBox, level.KindBox},
	{component.CTagBoxSpot, level.KindBoxSpot},
	{component.CTagWall, level.KindWall},
	{component.CTagFloor, level.KindFloor},
}

func kindOf(w *ecs.World, id ecs.EntityID) level.Kind {
	for _, kt := range kindTags {
		if w.Has(id, kt.tag) {
			return kt.kind
		}
	}
	return level.KindFloor
}

// Snapshot returns a copy of every renderable entity, sorted by row,
// column, then render order, so later entries paint over earlier ones.
func (g *Game) Snapshot() []Sprite {
	w := g.board.World
	if w == nil {
		return nil
	}
	ids := w.Query(component.CRenderable, component.CPosition)
	out := make([]Sprite, 0, len(ids))
	for _, id := range ids {
		out = append(out, Sprite{
			ID:         id,
			Kind:       kindOf(w, id),
			Pos:        w.Get(id, component.CPosition).(component.Position),
			Renderable: w.Get(id, component.CRenderable).(component.Renderable),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Pos.Y != b.Pos.Y {
			return a.Pos.Y < b.Pos.Y
		}
		if a.Pos.X != b.Pos.X {
			return a.Pos.X < b.Pos.X
		}
		if a.Renderable.RenderOrder != b.Renderable.RenderOrder {
			return a.Renderable.RenderOrder < b.Renderable.RenderOrder
		}
		return a.ID < b.ID
	})
	return out
}

// Status is the aggregate state shown by status displays.
type Status struct {
	Level      string
	LevelID    uint64
	LevelIndex int
	LevelCount int
	Width      int
	Height     int
	Mode       resource.Mode
	Moves      uint32
	Elapsed    time.Duration
	Boxes      int
	Satisfied  int
}

// Status reports the current gameplay status.
func (g *Game) Status() Status {
	s := Status{
		LevelIndex: g.levelIndex,
		Mode:       g.gameplay.Mode,
		Moves:      g.gameplay.Moves,
		Elapsed:    g.time.Delta,
	}
	if g.pack != nil {
		s.LevelCount = g.pack.Len()
	}
	if g.level != nil {
		s.Level = g.level.Name
		s.LevelID = g.level.ID
		s.Width = g.level.Width
		s.Height = g.level.Height
	}
	if w := g.board.World; w != nil {
		s.Boxes = len(w.Query(component.CTagBox))
		s.Satisfied = system.Satisfied(w)
	}
	return s
}
