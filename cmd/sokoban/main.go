// sokoban runs the puzzle game in the local terminal. Build:
//
//	go build -o sokoban ./cmd/sokoban
//
// Usage:
//
//	./sokoban [--level easy] [--levels pack.yaml] [--fps 30] [--mute]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"sokoban/internal/audio"
	"sokoban/internal/config"
	"sokoban/internal/event"
	"sokoban/internal/logging"
	"sokoban/internal/runlog"
	"sokoban/internal/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(play).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newCommand builds the CLI. run receives the merged configuration.
func newCommand(run func(context.Context, config.Config) error) *cli.Command {
	return &cli.Command{
		Name:  "sokoban",
		Usage: "push every box onto a spot",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "level", Aliases: []string{"l"}, Usage: "level name to start at"},
			&cli.StringFlag{Name: "levels", Usage: "YAML level pack (default: built-in)"},
			&cli.IntFlag{Name: "fps", Usage: "frames per second"},
			&cli.BoolFlag{Name: "mute", Usage: "disable sound"},
			&cli.FloatFlag{Name: "volume", Usage: "sound volume 0..1"},
			&cli.StringFlag{Name: "run-log", Usage: "solve history file (default: XDG data dir)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, error or off"},
			&cli.StringFlag{Name: "log-file", Usage: "log destination (default: XDG data dir)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(ctx, cfg)
		},
	}
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("level") {
		cfg.Level = cmd.String("level")
	}
	if cmd.IsSet("levels") {
		cfg.LevelPack = cmd.String("levels")
	}
	if cmd.IsSet("fps") {
		cfg.FPS = int(cmd.Int("fps"))
	}
	if cmd.Bool("mute") {
		cfg.Audio.Enabled = false
	}
	if cmd.IsSet("volume") {
		cfg.Audio.Volume = cmd.Float("volume")
	}
	if cmd.IsSet("run-log") {
		cfg.RunLog = cmd.String("run-log")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-file") {
		cfg.Log.File = cmd.String("log-file")
	}
}

// resolvePaths fills in the run log and log file locations the config
// leaves empty. The log file goes next to the run log.
func resolvePaths(cfg *config.Config) error {
	if cfg.RunLog == "" {
		path, err := runlog.DefaultPath()
		if err != nil {
			return fmt.Errorf("data dir: %w", err)
		}
		cfg.RunLog = path
	}
	if cfg.Log.File == "" {
		// stdout is the screen, so logs go next to the solve history
		dir := filepath.Dir(cfg.RunLog)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("log dir: %w", err)
		}
		cfg.Log.File = filepath.Join(dir, "sokoban.log")
	}
	return nil
}

// play runs one local game until the player quits.
func play(ctx context.Context, cfg config.Config) error {
	if err := resolvePaths(&cfg); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	pack, err := terminal.LoadPack(cfg.LevelPack)
	if err != nil {
		return fmt.Errorf("level pack: %w", err)
	}

	var extra []event.Consumer
	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio.Volume, log.Named("audio"))
		if err := player.Start(); err != nil {
			log.Warn("audio unavailable, playing silently", zap.Error(err))
		} else {
			defer player.Close()
			extra = append(extra, player)
		}
	}

	sess, err := terminal.NewSession(cfg, pack, cfg.RunLog, log, extra...)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	log.Info("game started", zap.String("pack", pack.Name), zap.Int("fps", cfg.FPS))
	err = terminal.Run(ctx, screen, sess.Game, sess.Options(cfg.FPS, log))
	if ctx.Err() != nil {
		return nil
	}
	return err
}
