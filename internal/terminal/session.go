package terminal

import (
	"fmt"

	"sokoban/internal/config"
	"sokoban/internal/event"
	"sokoban/internal/game"
	"sokoban/internal/level"
	"sokoban/internal/render"
	"sokoban/internal/runlog"

	"go.uber.org/zap"
)

// Session bundles a Game with the consumers every front end attaches.
type Session struct {
	Game     *game.Game
	Messages *render.MessageLog
}

// NewSession builds a Game over pack, starting at cfg.Level (the first
// level when empty), with a HUD message log and, unless runLog is empty,
// a solve recorder. Extra consumers are registered after those two.
func NewSession(cfg config.Config, pack *level.Pack, runLog string, log *zap.Logger, extra ...event.Consumer) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := 0
	if cfg.Level != "" {
		i, ok := pack.Find(cfg.Level)
		if !ok {
			return nil, fmt.Errorf("level %q not found in pack %q", cfg.Level, pack.Name)
		}
		start = i
	}

	msgs := render.NewMessageLog(render.DefaultMessageCap)
	g := game.New(game.WithLogger(log), game.WithPack(pack), game.WithConsumers(msgs))
	g.OnLevelLoaded(func(lvl *level.Level) {
		msgs.Clear()
		msgs.Add(fmt.Sprintf("Level %s: push every box onto a spot.", lvl.Name))
	})
	if runLog != "" {
		g.AddConsumer(runlog.NewRecorder(runLog, func() runlog.Snapshot {
			st := g.Status()
			return runlog.Snapshot{Level: st.Level, LevelID: st.LevelID, Moves: st.Moves, Elapsed: st.Elapsed}
		}, log))
	}
	for _, c := range extra {
		g.AddConsumer(c)
	}

	if err := g.LoadIndex(start); err != nil {
		return nil, err
	}
	return &Session{Game: g, Messages: msgs}, nil
}

// LoadPack returns the pack at path, or the built-in pack when path is empty.
func LoadPack(path string) (*level.Pack, error) {
	if path == "" {
		return level.DefaultPack(), nil
	}
	return level.LoadPackFile(path)
}

// Options returns loop options that show the session's messages.
func (s *Session) Options(fps int, log *zap.Logger) Options {
	return Options{FPS: fps, Messages: s.Messages, Log: log}
}
