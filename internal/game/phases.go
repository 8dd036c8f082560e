package game

import (
	"sokoban/internal/gamemap"
	"sokoban/internal/input"

	"go.uber.org/zap"
)

// Phase is one step of the frame pipeline.
type Phase struct {
	Name string
	Run  func(*Game)
}

// Phase names, in execution order. Rendering happens after Tick returns.
const (
	PhaseInput    = "input-apply"
	PhaseGameplay = "gameplay-state"
	PhaseClock    = "clock-advance"
	PhaseEvents   = "event-drain"
)

func defaultPhases() []Phase {
	return []Phase{
		{Name: PhaseInput, Run: (*Game).applyInput},
		{Name: PhaseGameplay, Run: (*Game).runGameplay},
		{Name: PhaseClock, Run: (*Game).advanceClock},
		{Name: PhaseEvents, Run: (*Game).drainEvents},
	}
}

// Phases returns the phase names in execution order.
func (g *Game) Phases() []string {
	names := make([]string, len(g.phases))
	for i, p := range g.phases {
		names[i] = p.Name
	}
	return names
}

// applyInput consumes at most one queued key.
func (g *Game) applyInput() {
	k, ok := g.input.Pop()
	if !ok {
		return
	}
	if dir := k.Direction(); dir != gamemap.DirNone {
		g.pending = dir
		return
	}

	var err error
	switch k {
	case input.KeyRestart:
		err = g.Restart()
	case input.KeyNextLevel:
		if g.pack != nil {
			err = g.LoadIndex((g.levelIndex + 1) % g.pack.Len())
		}
	case input.KeyPrevLevel:
		if g.pack != nil {
			err = g.LoadIndex((g.levelIndex - 1 + g.pack.Len()) % g.pack.Len())
		}
	case input.KeyQuit:
		g.quit = true
	}
	if err != nil {
		g.log.Warn("control key failed", zap.Stringer("key", k), zap.Error(err))
	}
}

func (g *Game) runGameplay() {
	g.lastMove = g.gameplaySys.Run(g.board, &g.gameplay, &g.events, g.pending)
	g.pending = gamemap.DirNone
}

func (g *Game) advanceClock() {
	g.time.Advance(g.dt)
}

// drainEvents hands every event of this tick to each consumer in order,
// leaving the queue empty for the next tick.
func (g *Game) drainEvents() {
	for _, ev := range g.events.Drain() {
		g.log.Debug("event", zap.Stringer("event", ev), zap.Uint64("tick", g.ticks))
		for _, c := range g.consumers {
			c.Consume(ev)
		}
	}
}
