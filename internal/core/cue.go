package core

// Cue names a sound or feedback event emitted by the simulation.
type Cue string

const (
	CueBite           Cue = "bite"
	CueChomp          Cue = "chomp"
	CueSeedDropped    Cue = "seed-dropped"
	CueHazardEaten    Cue = "hazard-eaten"
	CueHazardDisarmed Cue = "hazard-disarmed"
	CueHazardExpired  Cue = "hazard-expired"
	CueGroupComplete  Cue = "group-complete"
	CueLevelUp        Cue = "level-up"
	CueGameOver       Cue = "game-over"
	CueSplash         Cue = "splash"
)

// AllCues lists every cue the game can emit.
func AllCues() []Cue {
	return []Cue{
		CueBite, CueChomp, CueSeedDropped, CueHazardEaten, CueHazardDisarmed,
		CueHazardExpired, CueGroupComplete, CueLevelUp, CueGameOver, CueSplash,
	}
}

// SoundSink plays named cues. Implementations must not block the caller
// for longer than it takes to hand the cue off, and must swallow playback errors.
type SoundSink interface {
	Play(cue Cue)
}

// SoundSinkFunc adapts a function to SoundSink.
type SoundSinkFunc func(Cue)

// Play calls f(cue).
func (f SoundSinkFunc) Play(cue Cue) { f(cue) }
