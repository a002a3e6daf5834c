package sound

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/poopsnake/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Synth plays cues as sine tone sequences through the beep speaker.
type Synth struct {
	volume float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynth initializes the speaker. It fails when no audio device is available.
func NewSynth(volume float64) (*Synth, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("%w: speaker: %v", ErrNoBackend, err)
	}
	return &Synth{
		volume: volume,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Play queues the cue on the speaker mixer and returns immediately.
func (s *Synth) Play(cue core.Cue) {
	s.mu.Lock()
	ns := Tones(cue, s.rng)
	s.mu.Unlock()
	if len(ns) == 0 {
		return
	}
	st, err := Stream(ns, s.volume)
	if err != nil {
		return
	}
	speaker.Play(st)
}

// Close releases the audio device.
func (s *Synth) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}

// Stream renders notes into a finite streamer at the given volume (0..1).
func Stream(ns []Note, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(ns))
	for _, n := range ns {
		samples := sampleRate.N(n.Dur)
		if n.Freq <= 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sampleRate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("sound: tone %.0fHz: %w", n.Freq, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales s linearly; math.Log2(0) is -Inf, so zero means silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
