package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, err := New("debug", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("key pressed", zap.String("key", "Up"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimSpace(string(data))
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q", line)
	}
	if entry["msg"] != "key pressed" || entry["key"] != "Up" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	log, err := New("warn", filepath.Join(t.TempDir(), "w.log"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info should be disabled at warn level")
	}
	if !log.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("error should be enabled at warn level")
	}
}

func TestNewOff(t *testing.T) {
	log, err := New("OFF", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("off should disable every level")
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New("loud", ""); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
