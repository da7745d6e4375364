//go:build baremetal

package tone

import (
	"fmt"
	"machine"

	"git.lost.host/meutraa/pusher/internal/melody"
	pwmtone "tinygo.org/x/drivers/tone"
)

// PWMDriver drives a piezo buzzer from a PWM peripheral on a TinyGo target.
type PWMDriver struct {
	speaker pwmtone.Speaker
}

func NewPWMDriver(pwm pwmtone.PWM, pin machine.Pin) (*PWMDriver, error) {
	s, err := pwmtone.New(pwm, pin)
	if nil != err {
		return nil, fmt.Errorf("unable to configure buzzer on pin %v: %w", pin, err)
	}
	s.Stop()
	return &PWMDriver{speaker: s}, nil
}

func (d *PWMDriver) Activate(hz melody.Pitch) {
	if hz == melody.Rest {
		d.speaker.Stop()
		return
	}
	// period in nanoseconds
	d.speaker.SetPeriod(1e9 / uint64(hz))
}

func (d *PWMDriver) Silence() {
	d.speaker.Stop()
}
