// Package terminal drives a Game on a tcell screen: it polls keys, ticks
// the simulation at a fixed rate and redraws after every tick.
package terminal

import (
	"context"
	"time"

	"sokoban/internal/game"
	"sokoban/internal/input"
	"sokoban/internal/render"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// DefaultFPS is used when Options.FPS is not positive.
const DefaultFPS = 30

// Options configures Run.
type Options struct {
	FPS      int
	Messages *render.MessageLog // optional HUD log, shown under the status line
	Log      *zap.Logger
}

// Run plays g on screen until a quit key is applied, the screen is closed
// or ctx is cancelled. Only the cancellation case returns an error.
func Run(ctx context.Context, screen tcell.Screen, g *game.Game, opts Options) error {
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	r := render.NewRenderer(screen)

	// Start an async input reader goroutine.
	done := make(chan struct{})
	defer close(done)
	eventCh := make(chan tcell.Event, 32)
	go func() {
		defer close(eventCh)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	draw(r, g, opts.Messages)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventCh:
			if !ok {
				log.Debug("screen closed")
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				draw(r, g, opts.Messages)
			case *tcell.EventKey:
				if k := KeyFromEvent(ev); k != input.KeyNone {
					g.Press(k)
				}
			}

		case now := <-ticker.C:
			g.Tick(now.Sub(last))
			last = now
			if g.Quit() {
				log.Info("quit requested", zap.String("level", g.Status().Level))
				return nil
			}
			draw(r, g, opts.Messages)
		}
	}
}

func draw(r *render.Renderer, g *game.Game, messages *render.MessageLog) {
	var lines []string
	if messages != nil {
		lines = messages.Lines()
	}
	r.Draw(g, lines)
}
