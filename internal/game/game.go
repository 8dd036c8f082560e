package game

import (
	"fmt"
	"time"

	"sokoban/internal/ecs"
	"sokoban/internal/event"
	"sokoban/internal/factory"
	"sokoban/internal/gamemap"
	"sokoban/internal/input"
	"sokoban/internal/level"
	"sokoban/internal/resource"
	"sokoban/internal/system"

	"go.uber.org/zap"
)

// Game owns one puzzle world and its resources, and runs the fixed
// per-frame phase pipeline over them. It is not safe for concurrent use:
// Press and Tick must be called from the frame loop goroutine.
type Game struct {
	log  *zap.Logger
	pack *level.Pack

	levelIndex int
	level      *level.Level
	board      system.Board

	gameplay resource.Gameplay
	time     resource.Time
	input    input.Queue
	events   event.Queue

	consumers   []event.Consumer
	onLoad      []func(*level.Level)
	phases      []Phase
	gameplaySys system.GameplayStateSystem

	// per-tick scratch
	dt       time.Duration
	pending  gamemap.Direction
	lastMove system.MoveResult
	ticks    uint64
	quit     bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithPack enables level stepping and LoadIndex over p.
func WithPack(p *level.Pack) Option {
	return func(g *Game) { g.pack = p }
}

// WithConsumers registers event consumers in drain order.
func WithConsumers(cs ...event.Consumer) Option {
	return func(g *Game) { g.consumers = append(g.consumers, cs...) }
}

// New creates a Game with no level loaded.
func New(opts ...Option) *Game {
	g := &Game{log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	g.gameplaySys = system.GameplayStateSystem{Log: g.log}
	g.phases = defaultPhases()
	return g
}

// AddConsumer registers an event consumer after construction.
func (g *Game) AddConsumer(c event.Consumer) {
	g.consumers = append(g.consumers, c)
}

// OnLevelLoaded registers fn to run after every successful LoadLevel,
// including restarts and level changes.
func (g *Game) OnLevelLoaded(fn func(*level.Level)) {
	g.onLoad = append(g.onLoad, fn)
}

// LoadLevel tears down the current world and builds a new one from lvl.
// On error the previous world is left untouched.
func (g *Game) LoadLevel(lvl *level.Level) error {
	w := ecs.NewWorld()
	player, err := factory.Populate(w, lvl)
	if err != nil {
		return fmt.Errorf("load level %q: %w", lvl.Name, err)
	}
	g.level = lvl
	g.board = system.Board{World: w, Map: lvl.Map, Player: player}
	g.gameplay = resource.Gameplay{}
	g.time = resource.Time{}
	g.events = event.Queue{}
	g.pending = gamemap.DirNone
	g.lastMove = system.MoveNone

	g.log.Info("level loaded",
		zap.String("level", lvl.Name),
		zap.String("level_id", fmt.Sprintf("%016x", lvl.ID)),
		zap.Int("width", lvl.Width),
		zap.Int("height", lvl.Height),
		zap.Int("entities", w.Len()),
	)
	for _, fn := range g.onLoad {
		fn(lvl)
	}
	return nil
}

// LoadIndex loads the i-th level of the configured pack.
func (g *Game) LoadIndex(i int) error {
	if g.pack == nil {
		return fmt.Errorf("load index %d: no level pack", i)
	}
	lvl, err := g.pack.Level(i)
	if err != nil {
		return err
	}
	if err := g.LoadLevel(lvl); err != nil {
		return err
	}
	g.levelIndex = i
	return nil
}

// Restart reloads the current level from its decoded form.
func (g *Game) Restart() error {
	if g.level == nil {
		return fmt.Errorf("restart: no level loaded")
	}
	return g.LoadLevel(g.level)
}

// Press queues a key. Keys are applied one per tick in arrival order.
func (g *Game) Press(k input.Key) {
	g.log.Debug("key pressed", zap.Stringer("key", k))
	g.input.Push(k)
}

// Tick runs one frame: every phase, in order, to completion.
func (g *Game) Tick(dt time.Duration) {
	if g.level == nil {
		return
	}
	g.dt = dt
	g.ticks++
	for _, p := range g.phases {
		p.Run(g)
	}
}

// Quit reports whether a quit key has been applied.
func (g *Game) Quit() bool { return g.quit }

// Pending returns how many keys are still queued.
func (g *Game) Pending() int { return g.input.Len() }

// LastMove returns the movement outcome of the latest tick.
func (g *Game) LastMove() system.MoveResult { return g.lastMove }

// World exposes the world for read-only inspection.
func (g *Game) World() *ecs.World { return g.board.World }
