package sequencer

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTiming = errors.New("invalid timing")
	ErrInvalidTick   = errors.New("invalid tick")
)

// Timing converts duration codes to spans. A step lasts WholeNote / code and
// the last GapPermille thousandths of it are silent. Every division
// truncates toward zero and the audible part takes the remainder, so
// audible + gap == step exactly.
type Timing struct {
	WholeNote   time.Duration
	GapPermille uint16
}

func (t Timing) Validate() error {
	if t.WholeNote <= 0 {
		return fmt.Errorf("%w: whole note %v is not positive", ErrInvalidTiming, t.WholeNote)
	}
	if t.GapPermille > 1000 {
		return fmt.Errorf("%w: gap %v‰ is more than the whole step", ErrInvalidTiming, t.GapPermille)
	}
	return nil
}

// Split returns the step duration for a code and its audible and gap parts.
func (t Timing) Split(code uint8) (step, audible, gap time.Duration) {
	step = t.WholeNote / time.Duration(code)
	gap = step * time.Duration(t.GapPermille) / 1000
	audible = step - gap
	return step, audible, gap
}
