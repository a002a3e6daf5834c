package sound

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/poopsnake/internal/core"
)

// Note is one tone of a cue. A zero frequency is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

func notes(d time.Duration, freqs ...float64) []Note {
	out := make([]Note, len(freqs))
	for i, f := range freqs {
		out[i] = Note{Freq: f, Dur: d}
	}
	return out
}

// Tones returns the tone sequence for a cue. Bites pick a random chirp pair.
func Tones(cue core.Cue, rng *rand.Rand) []Note {
	switch cue {
	case core.CueBite:
		a := 700 + float64(rng.Intn(500))
		b := 700 + float64(rng.Intn(500))
		return notes(40*time.Millisecond, a, b)
	case core.CueChomp:
		return notes(20*time.Millisecond, 440)
	case core.CueSeedDropped:
		// Descending rumble
		var out []Note
		for f := 220.0; f >= 120; f -= 10 {
			out = append(out, Note{Freq: f, Dur: 12 * time.Millisecond})
		}
		return out
	case core.CueHazardEaten:
		return notes(60*time.Millisecond, 660, 880)
	case core.CueHazardDisarmed:
		return []Note{
			{Freq: 300, Dur: 50 * time.Millisecond},
			{Dur: 20 * time.Millisecond},
			{Freq: 300, Dur: 50 * time.Millisecond},
		}
	case core.CueHazardExpired:
		return notes(60*time.Millisecond, 110, 90, 70)
	case core.CueGroupComplete:
		return notes(70*time.Millisecond, 523, 659, 784, 1047)
	case core.CueLevelUp:
		return []Note{
			{Freq: 1568, Dur: 80 * time.Millisecond},
			{Freq: 1760, Dur: 110 * time.Millisecond},
		}
	case core.CueGameOver:
		return notes(150*time.Millisecond, 392, 330, 262, 196)
	case core.CueSplash:
		return notes(110*time.Millisecond, 440, 554, 659, 740, 659, 554)
	default:
		return nil
	}
}

// Duration returns the total length of a note sequence.
func Duration(ns []Note) time.Duration {
	var d time.Duration
	for _, n := range ns {
		d += n.Dur
	}
	return d
}
