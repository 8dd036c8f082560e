// Package audio turns drained gameplay events into short synthesized
// jingles played through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"sokoban/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// Player is an event.Consumer that plays one jingle per known event.
// Until Start succeeds it drops every event.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	started bool
	log     *zap.Logger
}

// NewPlayer creates a Player at the given linear volume (0..1).
func NewPlayer(volume float64, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{mixer: &beep.Mixer{}, volume: volume, log: log}
}

// Start opens the speaker and begins streaming the mixer.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Close silences every playing jingle. Further events are dropped.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.started = false
}

// Consume implements event.Consumer. Unknown kinds are ignored.
func (p *Player) Consume(e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	s := Sound(e.Kind, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.log.Debug("sound queued", zap.Stringer("event", e.Kind), zap.Duration("length", Duration(e.Kind)))
}

// Playing returns how many jingles are still in the mixer.
func (p *Player) Playing() int {
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}
