package sound

import (
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/poopsnake/internal/core"
)

// Built-in macOS alert sounds per cue. Several names mean one is picked at random.
var macSounds = map[core.Cue][]string{
	core.CueBite:           {"Pop", "Bottle", "Funk", "Tink", "Ping"},
	core.CueChomp:          {"Tink"},
	core.CueSeedDropped:    {"Submarine"},
	core.CueHazardEaten:    {"Pop"},
	core.CueHazardDisarmed: {"Morse"},
	core.CueHazardExpired:  {"Basso"},
	core.CueGroupComplete:  {"Hero"},
	core.CueLevelUp:        {"Glass"},
	core.CueGameOver:       {"Sosumi"},
	core.CueSplash:         {"Purr"},
}

// freedesktop sound theme names per cue.
var freedesktopSounds = map[core.Cue][]string{
	core.CueBite:           {"message-new-instant", "message"},
	core.CueChomp:          {"audio-volume-change"},
	core.CueSeedDropped:    {"device-removed"},
	core.CueHazardEaten:    {"message"},
	core.CueHazardDisarmed: {"dialog-information"},
	core.CueHazardExpired:  {"dialog-warning"},
	core.CueGroupComplete:  {"complete"},
	core.CueLevelUp:        {"service-login"},
	core.CueGameOver:       {"suspend-error"},
	core.CueSplash:         {"bell"},
}

// backendSpec describes an external player command and where its sound files live.
type backendSpec struct {
	Name  string
	Path  string
	Dir   string
	Ext   string
	Names map[core.Cue][]string
}

// file returns the sound file for a name.
func (b backendSpec) file(name string) string {
	return filepath.Join(b.Dir, name+b.Ext)
}

// DetectSystem searches for a player command and a sound theme.
// Priority: afplay (macOS) > paplay > pw-play > aplay.
func DetectSystem() (backendSpec, error) {
	if path, err := exec.LookPath("afplay"); err == nil {
		return backendSpec{
			Name:  "afplay",
			Path:  path,
			Dir:   "/System/Library/Sounds",
			Ext:   ".aiff",
			Names: macSounds,
		}, nil
	}

	const themeDir = "/usr/share/sounds/freedesktop/stereo"
	if _, err := os.Stat(themeDir); err != nil {
		return backendSpec{}, ErrNoBackend
	}
	for _, name := range []string{"paplay", "pw-play"} {
		if path, err := exec.LookPath(name); err == nil {
			return backendSpec{Name: name, Path: path, Dir: themeDir, Ext: ".oga", Names: freedesktopSounds}, nil
		}
	}
	// aplay cannot decode Ogg; the theme also ships .wav on some distros.
	if path, err := exec.LookPath("aplay"); err == nil {
		if _, err := os.Stat(filepath.Join(themeDir, "bell.wav")); err == nil {
			return backendSpec{Name: "aplay", Path: path, Dir: themeDir, Ext: ".wav", Names: freedesktopSounds}, nil
		}
	}
	return backendSpec{}, ErrNoBackend
}

// System plays cues by spawning the platform's sound player.
type System struct {
	spec   backendSpec
	logger *log.Logger
	start  func(name string, args ...string) error

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSystem detects a system player.
func NewSystem(logger *log.Logger) (*System, error) {
	spec, err := DetectSystem()
	if err != nil {
		return nil, err
	}
	return newSystem(spec, logger, startDetached), nil
}

func newSystem(spec backendSpec, logger *log.Logger, start func(string, ...string) error) *System {
	return &System{
		spec:   spec,
		logger: logger,
		start:  start,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Name returns the player command name.
func (s *System) Name() string {
	return s.spec.Name
}

// Play spawns the player for the cue without waiting for it.
func (s *System) Play(cue core.Cue) {
	file, ok := s.fileFor(cue)
	if !ok {
		return
	}
	args := []string{file}
	if s.spec.Name == "aplay" {
		args = []string{"-q", file}
	}
	if err := s.start(s.spec.Path, args...); err != nil {
		s.logger.Debug("sound player failed", "cue", cue, "player", s.spec.Name, "error", err)
	}
}

func (s *System) fileFor(cue core.Cue) (string, bool) {
	names := s.spec.Names[cue]
	if len(names) == 0 {
		return "", false
	}
	s.mu.Lock()
	name := names[s.rng.Intn(len(names))]
	s.mu.Unlock()
	return s.spec.file(name), true
}

// Close does nothing: spawned players finish on their own.
func (s *System) Close() error {
	return nil
}

// startDetached starts a process and reaps it in the background.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck // exit status of a sound player is irrelevant
	return nil
}
