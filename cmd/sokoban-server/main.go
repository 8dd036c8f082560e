// sokoban-server serves the puzzle game over SSH. Every connection plays
// its own independent game. Build:
//
//	go build -o sokoban-server ./cmd/sokoban-server
//
// Usage:
//
//	./sokoban-server [--addr :2222] [--host-key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sokoban/internal/config"
	"sokoban/internal/logging"
	"sokoban/internal/terminal"

	gossh "github.com/gliderlabs/ssh"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(serve).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newCommand builds the CLI. run receives the merged configuration.
func newCommand(run func(context.Context, config.Config) error) *cli.Command {
	return &cli.Command{
		Name:  "sokoban-server",
		Usage: "serve sokoban over SSH",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "addr", Usage: "listen address"},
			&cli.StringFlag{Name: "host-key", Usage: "PEM host key (generated if absent)"},
			&cli.StringFlag{Name: "levels", Usage: "YAML level pack (default: built-in)"},
			&cli.IntFlag{Name: "fps", Usage: "frames per second for every session"},
			&cli.StringFlag{Name: "run-log", Usage: "solve history file (default: none)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, error or off"},
			&cli.StringFlag{Name: "log-file", Usage: "log destination (default: stderr)"},
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
	if cmd.IsSet("addr") {
		cfg.SSH.Addr = cmd.String("addr")
	}
	if cmd.IsSet("host-key") {
		cfg.SSH.HostKey = cmd.String("host-key")
	}
	if cmd.IsSet("levels") {
		cfg.LevelPack = cmd.String("levels")
	}
	if cmd.IsSet("fps") {
		cfg.FPS = int(cmd.Int("fps"))
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
	// The server has no speaker; sessions never get an audio consumer.
	cfg.Audio.Enabled = false
}

// serve runs the SSH server until ctx is cancelled.
func serve(ctx context.Context, cfg config.Config) error {
	log, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	pack, err := terminal.LoadPack(cfg.LevelPack)
	if err != nil {
		return fmt.Errorf("level pack: %w", err)
	}
	signer, err := loadOrCreateHostKey(cfg.SSH.HostKey, log)
	if err != nil {
		return err
	}

	h := &handler{cfg: cfg, pack: pack, log: log}
	srv := &gossh.Server{
		Addr:    cfg.SSH.Addr,
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: every visitor gets a fresh puzzle.
		HostSigners: []gossh.Signer{signer},
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Info("ssh server listening",
		zap.String("addr", cfg.SSH.Addr),
		zap.String("pack", pack.Name),
		zap.Int("levels", pack.Len()),
	)

	select {
	case err := <-errc:
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
