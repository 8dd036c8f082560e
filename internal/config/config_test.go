package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDecodeOverridesDefaults(t *testing.T) {
	src := `
fps: 60
level: easy-2
audio:
  enabled: false
log:
  level: debug
  file: /tmp/sokoban.log
`
	c, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 60, c.FPS)
	assert.Equal(t, "easy-2", c.Level)
	assert.False(t, c.Audio.Enabled)
	assert.Equal(t, 0.5, c.Audio.Volume, "unset fields keep defaults")
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, ":2222", c.SSH.Addr)
}

func TestDecodeEmptyDocument(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"zero fps", "fps: 0"},
		{"huge fps", "fps: 1000"},
		{"loud volume", "audio: {volume: 1.5}"},
		{"empty ssh addr", "ssh: {addr: \"\"}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDecodeMalformedYAML(t *testing.T) {
	_, err := Decode(strings.NewReader("fps: [nope"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(t.TempDir(), "sokoban.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: 24\n"), 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 24, c.FPS)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
