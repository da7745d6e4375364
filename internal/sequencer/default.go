package sequencer

import (
	"time"

	"git.lost.host/meutraa/pusher/internal/melody"
	"git.lost.host/meutraa/pusher/internal/tone"
)

// DefaultSequencer walks a tune's tables in lock step and drives a tone
// driver. It never blocks and never allocates after construction. It is not
// safe for concurrent use.
//
// A rest step is spent in the Gap state for its whole duration.
type DefaultSequencer struct {
	driver tone.Driver
	timing Timing

	tune      *melody.Tune
	state     State
	step      int
	remaining time.Duration // left in the current span
	played    time.Duration
}

func New(driver tone.Driver, timing Timing) (*DefaultSequencer, error) {
	if err := timing.Validate(); nil != err {
		return nil, err
	}
	return &DefaultSequencer{driver: driver, timing: timing}, nil
}

func (s *DefaultSequencer) Timing() Timing {
	return s.timing
}

func (s *DefaultSequencer) Start(tune *melody.Tune) {
	if s.state == PlayingNote {
		s.driver.Silence()
	}
	s.tune = tune
	s.step = 0
	s.played = 0
	s.enter(0)
}

func (s *DefaultSequencer) Stop() {
	s.driver.Silence()
	s.state = Idle
	s.remaining = 0
}

func (s *DefaultSequencer) IsPlaying() bool {
	return s.state == PlayingNote || s.state == Gap
}

func (s *DefaultSequencer) State() State {
	return s.state
}

func (s *DefaultSequencer) Tune() *melody.Tune {
	return s.tune
}

func (s *DefaultSequencer) Step() int {
	return s.step
}

func (s *DefaultSequencer) Played() time.Duration {
	return s.played
}

func (s *DefaultSequencer) Advance(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	// Spans can be zero long, so a zero advance still moves past them
	for s.IsPlaying() {
		if elapsed < s.remaining {
			s.remaining -= elapsed
			s.played += elapsed
			return
		}
		elapsed -= s.remaining
		s.played += s.remaining
		s.next()
	}
}

// next leaves the current span
func (s *DefaultSequencer) next() {
	if s.state == PlayingNote {
		s.driver.Silence()
		_, _, gap := s.timing.Split(s.tune.DurationCodeAt(s.step))
		if gap > 0 {
			s.state = Gap
			s.remaining = gap
			return
		}
	}
	s.enter(s.step + 1)
}

func (s *DefaultSequencer) enter(step int) {
	if nil == s.tune || step >= s.tune.Len() {
		s.driver.Silence()
		s.state = Finished
		s.remaining = 0
		return
	}

	s.step = step
	full, audible, _ := s.timing.Split(s.tune.DurationCodeAt(step))
	pitch := s.tune.PitchAt(step)
	if pitch == melody.Rest {
		s.driver.Silence()
		s.state = Gap
		s.remaining = full
		return
	}
	s.driver.Activate(pitch)
	s.state = PlayingNote
	s.remaining = audible
}
