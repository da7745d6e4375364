package tone

import (
	"math"

	"git.lost.host/meutraa/pusher/internal/melody"
)

// oscillator produces a square wave of +1/-1 samples from an integer phase
// accumulator, or 0 while silent.
type oscillator struct {
	rate  uint32
	freq  uint32
	phase uint32
}

func (o *oscillator) set(p melody.Pitch) {
	if p == melody.Rest {
		o.phase = 0
	}
	o.freq = uint32(p)
}

func (o *oscillator) next() int8 {
	if o.freq == 0 || o.rate == 0 {
		return 0
	}
	o.phase = (o.phase + o.freq) % o.rate
	if o.phase < o.rate/2 {
		return 1
	}
	return -1
}

// amplitude clamps a volume flag to [0, 1], NaN counts as silent.
func amplitude(volume float64) float64 {
	if math.IsNaN(volume) {
		return 0
	}
	return math.Min(1, math.Max(0, volume))
}
