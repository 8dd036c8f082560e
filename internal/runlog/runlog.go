// Package runlog keeps a history of solved puzzles as JSON lines.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"sokoban/internal/event"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FileName is the history file inside Dir().
const FileName = "solves.jsonl"

// Record is one solved puzzle.
type Record struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	LevelID   string    `json:"level_id"`
	Moves     uint32    `json:"moves"`
	ElapsedMS int64     `json:"elapsed_ms"`
	SolvedAt  time.Time `json:"solved_at"`
}

// Snapshot is the gameplay state captured when a solve is recorded.
type Snapshot struct {
	Level   string
	LevelID uint64
	Moves   uint32
	Elapsed time.Duration
}

// Recorder appends a Record for every PuzzleSolved event it consumes.
// Write errors are logged and otherwise ignored so a disk problem never
// interrupts play.
type Recorder struct {
	path   string
	source func() Snapshot
	log    *zap.Logger
	now    func() time.Time
}

// NewRecorder returns a Recorder writing to path. source is called at
// solve time to capture the level and move count.
func NewRecorder(path string, source func() Snapshot, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{path: path, source: source, log: log, now: time.Now}
}

// Consume implements event.Consumer.
func (r *Recorder) Consume(e event.Event) {
	if e.Kind != event.PuzzleSolved {
		return
	}
	s := r.source()
	rec := Record{
		ID:        uuid.NewString(),
		Level:     s.Level,
		LevelID:   fmt.Sprintf("%016x", s.LevelID),
		Moves:     s.Moves,
		ElapsedMS: s.Elapsed.Milliseconds(),
		SolvedAt:  r.now().UTC(),
	}
	if err := Append(r.path, rec); err != nil {
		r.log.Warn("run log write failed", zap.String("path", r.path), zap.Error(err))
		return
	}
	r.log.Info("solve recorded", zap.String("level", rec.Level), zap.Uint32("moves", rec.Moves))
}

// appendMu serialises writers sharing a history file within one process.
var appendMu sync.Mutex

// Append writes rec as a single JSON line to the file at path.
func Append(path string, rec Record) error {
	appendMu.Lock()
	defer appendMu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// Dir returns the directory where solve history is stored.
// Uses $XDG_DATA_HOME/sokoban,
// defaulting to ~/.local/share/sokoban.
func Dir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "sokoban"), nil
}

// DefaultPath returns Dir()/FileName.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}
