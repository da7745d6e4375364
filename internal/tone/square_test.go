package tone

import (
	"math"
	"testing"

	"git.lost.host/meutraa/pusher/internal/melody"
)

func TestOscillatorPeriod(t *testing.T) {
	o := oscillator{rate: 8}
	o.set(2)
	expected := []int8{1, -1, -1, 1, 1, -1, -1, 1}
	for i, e := range expected {
		if v := o.next(); v != e {
			t.Errorf("sample %v = %v, expected %v", i, v, e)
		}
	}
}

func TestOscillatorDutyCycle(t *testing.T) {
	o := oscillator{rate: 44100}
	o.set(melody.A4)
	high, low := 0, 0
	for i := 0; i < 44100; i++ {
		if o.next() > 0 {
			high++
		} else {
			low++
		}
	}
	if d := high - low; d < -441 || d > 441 {
		t.Errorf("high %v low %v, expected about half each", high, low)
	}
}

func TestOscillatorSilent(t *testing.T) {
	o := oscillator{rate: 44100}
	o.set(melody.A4)
	o.next()
	o.set(melody.Rest)
	for i := 0; i < 100; i++ {
		if v := o.next(); v != 0 {
			t.Fatalf("sample %v = %v while silent", i, v)
		}
	}
}

var amplitudes = map[float64]float64{
	-1:          0,
	0:           0,
	0.2:         0.2,
	1:           1,
	3:           1,
	math.Inf(1): 1,
}

func TestAmplitude(t *testing.T) {
	for volume, expected := range amplitudes {
		if a := amplitude(volume); a != expected {
			t.Errorf("amplitude(%v) = %v, expected %v", volume, a, expected)
		}
	}
	if a := amplitude(math.NaN()); a != 0 {
		t.Errorf("amplitude(NaN) = %v, expected 0", a)
	}
}
