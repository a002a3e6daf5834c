// Package sound plays game cues. The game never waits for audio: cues are
// handed to a Dispatcher that drops them when the player falls behind.
package sound

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/poopsnake/internal/config"
	"github.com/vovakirdan/poopsnake/internal/core"
)

// ErrNoBackend is returned when no way to make sound was found.
var ErrNoBackend = errors.New("sound: no audio backend available")

// Player is a SoundSink that holds audio resources.
type Player interface {
	core.SoundSink
	Close() error
}

// Nop discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Cue) {}

// Close does nothing.
func (Nop) Close() error { return nil }

// New selects a player from cfg.
// With backend "auto" it tries the synthesizer, then the system player, and
// falls back to silence. An explicitly chosen backend that is unavailable is an error.
func New(cfg config.SoundConfig, logger *log.Logger) (Player, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}

	switch cfg.Backend {
	case "off":
		return Nop{}, nil
	case "synth":
		s, err := NewSynth(cfg.Volume)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "system":
		s, err := NewSystem(logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "", "auto":
		synth, err := NewSynth(cfg.Volume)
		if err == nil {
			logger.Debug("sound backend selected", "backend", "synth")
			return synth, nil
		}
		logger.Debug("synth unavailable", "error", err)

		sys, err := NewSystem(logger)
		if err == nil {
			logger.Debug("sound backend selected", "backend", "system", "player", sys.Name())
			return sys, nil
		}
		logger.Info("no audio backend found, playing silently", "error", err)
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("sound: unknown backend %q", cfg.Backend)
	}
}
