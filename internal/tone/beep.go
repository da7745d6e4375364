//go:build !baremetal

package tone

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/pusher/internal/melody"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// BeepDriver streams the square wave to the default audio device through
// the beep speaker. There is only one speaker per process.
type BeepDriver struct {
	osc    oscillator
	volume float64
}

func NewBeepDriver(sampleRate int, buffer time.Duration, volume float64) (*BeepDriver, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(buffer)); nil != err {
		return nil, fmt.Errorf("unable to open speaker: %w", err)
	}
	d := &BeepDriver{
		osc:    oscillator{rate: uint32(sampleRate)},
		volume: amplitude(volume),
	}
	speaker.Play(beep.StreamerFunc(d.stream))
	return d, nil
}

// stream runs with the speaker locked
func (d *BeepDriver) stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := float64(d.osc.next()) * d.volume
		samples[i][0], samples[i][1] = v, v
	}
	return len(samples), true
}

func (d *BeepDriver) Activate(hz melody.Pitch) {
	speaker.Lock()
	d.osc.set(hz)
	speaker.Unlock()
}

func (d *BeepDriver) Silence() {
	speaker.Lock()
	d.osc.set(melody.Rest)
	speaker.Unlock()
}

func (d *BeepDriver) Close() error {
	d.Silence()
	return nil
}
