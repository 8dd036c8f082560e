package terminal

import (
	"context"
	"errors"
	"testing"
	"time"

	"sokoban/internal/game"
	"sokoban/internal/input"
	"sokoban/internal/level"
	"sokoban/internal/render"
	"sokoban/internal/resource"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap/zaptest"
)

func TestKeyFromEvent(t *testing.T) {
	cases := []struct {
		name string
		key  tcell.Key
		r    rune
		want input.Key
	}{
		{"arrow up", tcell.KeyUp, 0, input.KeyUp},
		{"arrow down", tcell.KeyDown, 0, input.KeyDown},
		{"arrow left", tcell.KeyLeft, 0, input.KeyLeft},
		{"arrow right", tcell.KeyRight, 0, input.KeyRight},
		{"vi k", tcell.KeyRune, 'k', input.KeyUp},
		{"wasd d", tcell.KeyRune, 'd', input.KeyRight},
		{"wasd A", tcell.KeyRune, 'A', input.KeyLeft},
		{"restart", tcell.KeyRune, 'r', input.KeyRestart},
		{"next", tcell.KeyRune, 'n', input.KeyNextLevel},
		{"prev", tcell.KeyRune, '<', input.KeyPrevLevel},
		{"quit q", tcell.KeyRune, 'q', input.KeyQuit},
		{"escape", tcell.KeyEscape, 0, input.KeyQuit},
		{"ctrl-c", tcell.KeyCtrlC, 0, input.KeyQuit},
		{"unmapped rune", tcell.KeyRune, 'x', input.KeyNone},
		{"enter", tcell.KeyEnter, 0, input.KeyNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tc.key, tc.r, tcell.ModNone)
			if got := KeyFromEvent(ev); got != tc.want {
				t.Errorf("KeyFromEvent(%v, %q) = %v, want %v", tc.key, tc.r, got, tc.want)
			}
		})
	}
}

func newSession(t *testing.T) (tcell.SimulationScreen, *game.Game) {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)

	lvl, err := level.Decode("W W W W W\nW P RB BS W\nW W W W W")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	g := game.New(game.WithLogger(zaptest.NewLogger(t)))
	if err := g.LoadLevel(lvl); err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	return ss, g
}

func runAsync(ctx context.Context, ss tcell.Screen, g *game.Game, opts Options) <-chan error {
	errc := make(chan error, 1)
	go func() { errc <- Run(ctx, ss, g, opts) }()
	return errc
}

func TestRunAppliesKeysUntilQuit(t *testing.T) {
	ss, g := newSession(t)
	defer ss.Fini()
	msgs := render.NewMessageLog(0)
	g.AddConsumer(msgs)

	ss.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	ss.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	select {
	case err := <-runAsync(ctx, ss, g, Options{FPS: 120, Messages: msgs}):
		if err != nil {
			t.Fatalf("Run returned %v; want nil after quit", err)
		}
	case <-time.After(6 * time.Second):
		t.Fatal("Run did not return")
	}

	st := g.Status()
	if st.Moves != 1 || st.Mode != resource.Won {
		t.Fatalf("status = %+v; want one move and Won", st)
	}
	if len(msgs.Lines()) == 0 {
		t.Fatal("expected HUD messages from drained events")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ss, g := newSession(t)
	defer ss.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	errc := runAsync(ctx, ss, g, Options{})
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned %v; want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
