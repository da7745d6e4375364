package sequencer

import (
	"time"

	"git.lost.host/meutraa/pusher/internal/melody"
)

type Sequencer interface {
	// Start plays the tune from step 0, replacing whatever was playing.
	Start(tune *melody.Tune)
	// Stop silences the driver and returns to Idle, from any state.
	Stop()
	IsPlaying() bool

	// Advance moves playback forward by the time elapsed since the last call.
	Advance(elapsed time.Duration)

	State() State
	Tune() *melody.Tune
	// Step is the index of the current step, meaningless unless playing
	Step() int
	// Played is the playback time consumed since Start
	Played() time.Duration
}
