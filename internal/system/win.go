package system

import (
	"sokoban/internal/component"
	"sokoban/internal/ecs"
	"sokoban/internal/event"
	"sokoban/internal/resource"
)

// EvaluateWin flips gp to Won and emits PuzzleSolved when the set of box
// positions equals the set of spot positions. Once Won it does nothing.
func EvaluateWin(w *ecs.World, gp *resource.Gameplay, events *event.Queue) bool {
	if gp.Mode == resource.Won {
		return false
	}
	spots := positionSet(w, component.CTagBoxSpot)
	boxes := positionSet(w, component.CTagBox)
	if len(boxes) != len(spots) {
		return false
	}
	for p := range boxes {
		if _, ok := spots[p]; !ok {
			return false
		}
	}
	gp.Mode = resource.Won
	events.Push(event.Event{Kind: event.PuzzleSolved})
	return true
}

func positionSet(w *ecs.World, tag ecs.ComponentType) map[component.Position]struct{} {
	ids := w.Query(tag, component.CPosition)
	set := make(map[component.Position]struct{}, len(ids))
	for _, id := range ids {
		set[w.Get(id, component.CPosition).(component.Position)] = struct{}{}
	}
	return set
}

// Satisfied returns how many boxes rest on a spot.
func Satisfied(w *ecs.World) int {
	spots := positionSet(w, component.CTagBoxSpot)
	n := 0
	for p := range positionSet(w, component.CTagBox) {
		if _, ok := spots[p]; ok {
			n++
		}
	}
	return n
}
