package audio

import (
	"math"
	"time"

	"sokoban/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the output rate of every generated sound.
const SampleRate = beep.SampleRate(44100)

// note is one enveloped tone of a jingle.
type note struct {
	freq float64
	dur  time.Duration
}

// Jingles per event kind. Kinds without an entry are silent.
var jingles = map[event.Kind][]note{
	event.BoxEnteredSpot: {{660, 70 * time.Millisecond}, {880, 110 * time.Millisecond}},
	event.BoxLeftSpot:    {{440, 70 * time.Millisecond}, {330, 110 * time.Millisecond}},
	event.PuzzleSolved: {
		{523.25, 120 * time.Millisecond},
		{659.25, 120 * time.Millisecond},
		{783.99, 120 * time.Millisecond},
		{1046.5, 320 * time.Millisecond},
	},
}

// oscillator generates a sine wave of fixed length.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(duration), rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream so tones
// start and stop without clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	edge := rate.N(5 * time.Millisecond)
	if 2*edge > total {
		edge = total / 2
	}
	return &envelope{streamer: s, attack: edge, release: edge, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol; vol <= 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound returns the jingle for kind at the given volume, or nil when the
// kind has no sound.
func Sound(kind event.Kind, volume float64) beep.Streamer {
	notes, ok := jingles[kind]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newEnvelope(newOscillator(n.freq, n.dur, SampleRate), n.dur, SampleRate))
	}
	return newVolume(beep.Seq(parts...), volume)
}

// Duration returns the total length of kind's jingle.
func Duration(kind event.Kind) time.Duration {
	var d time.Duration
	for _, n := range jingles[kind] {
		d += n.dur
	}
	return d
}
