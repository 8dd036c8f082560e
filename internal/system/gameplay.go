package system

import (
	"sokoban/internal/event"
	"sokoban/internal/gamemap"
	"sokoban/internal/resource"

	"go.uber.org/zap"
)

// GameplayStateSystem resolves the tick's movement request and then
// evaluates the win condition. Gameplay freezes once the puzzle is won.
type GameplayStateSystem struct {
	Log *zap.Logger
}

// Run executes one gameplay-state pass.
func (s GameplayStateSystem) Run(b Board, gp *resource.Gameplay, events *event.Queue, dir gamemap.Direction) MoveResult {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}

	result := MoveNone
	switch {
	case dir == gamemap.DirNone:
	case gp.Mode == resource.Won:
		result = MoveFrozen
	default:
		result = TryMove(b, gp, events, dir)
	}
	if result == MoveBlocked || result == MoveFrozen {
		log.Debug("move rejected", zap.Stringer("dir", dir), zap.Stringer("result", result))
	}

	if EvaluateWin(b.World, gp, events) {
		log.Info("puzzle solved", zap.Uint32("moves", gp.Moves))
	}
	return result
}
