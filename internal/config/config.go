// Package config loads the game's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every tunable of the commands.
type Config struct {
	FPS       int    `yaml:"fps"`
	Level     string `yaml:"level"`      // level name within the pack; empty means first
	LevelPack string `yaml:"level_pack"` // YAML pack path; empty means built-in
	RunLog    string `yaml:"run_log"`    // solve history path; empty means XDG default
	Audio     Audio  `yaml:"audio"`
	Log       Log    `yaml:"log"`
	SSH       SSH    `yaml:"ssh"`
}

// Audio configures sound effects.
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// Log configures the zap logger.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SSH configures the remote server.
type SSH struct {
	Addr    string `yaml:"addr"`
	HostKey string `yaml:"host_key"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FPS:   30,
		Audio: Audio{Enabled: true, Volume: 0.5},
		Log:   Log{Level: "info"},
		SSH:   SSH{Addr: ":2222", HostKey: "server_host_key"},
	}
}

// Decode reads YAML from r on top of Default() and validates the result.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the config file at path. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("%w: fps %d outside [1,240]", ErrInvalidConfig, c.FPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %.2f outside [0,1]", ErrInvalidConfig, c.Audio.Volume)
	}
	if c.SSH.Addr == "" {
		return fmt.Errorf("%w: empty ssh addr", ErrInvalidConfig)
	}
	return nil
}
