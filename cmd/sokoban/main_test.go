package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sokoban/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()
	var got config.Config
	cmd := newCommand(func(_ context.Context, cfg config.Config) error {
		got = cfg
		return nil
	})
	err := cmd.Run(context.Background(), append([]string{"sokoban"}, args...))
	return got, err
}

func TestDefaultsWithoutFlags(t *testing.T) {
	cfg, err := runWith(t)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sokoban.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: 20\nlevel: easy\naudio:\n  volume: 0.9\n"), 0o644))

	cfg, err := runWith(t, "--config", path, "--fps", "60", "--mute", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, "easy", cfg.Level)
	assert.False(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.9, cfg.Audio.Volume, 1e-9)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInvalidFlagValueRejected(t *testing.T) {
	_, err := runWith(t, "--volume", "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := runWith(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResolvePathsDefaultsToDataDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	cfg := config.Default()
	require.NoError(t, resolvePaths(&cfg))
	assert.Equal(t, filepath.Join(tmp, "sokoban", "solves.jsonl"), cfg.RunLog)
	assert.Equal(t, filepath.Join(tmp, "sokoban", "sokoban.log"), cfg.Log.File)
	assert.DirExists(t, filepath.Join(tmp, "sokoban"))
}

func TestResolvePathsKeepsExplicitPaths(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.RunLog = filepath.Join(dir, "runs", "history.jsonl")
	cfg.Log.File = filepath.Join(dir, "game.log")

	require.NoError(t, resolvePaths(&cfg))
	assert.Equal(t, filepath.Join(dir, "runs", "history.jsonl"), cfg.RunLog)
	assert.Equal(t, filepath.Join(dir, "game.log"), cfg.Log.File)
}
