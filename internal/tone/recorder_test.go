package tone

import (
	"testing"
	"time"

	"git.lost.host/meutraa/pusher/internal/melody"
	"github.com/benbjohnson/clock"
)

func TestRecorder(t *testing.T) {
	clk := clock.NewMock()
	r := NewRecorder(clk)
	r.Activate(melody.A4)
	clk.Add(10 * time.Millisecond)
	r.Silence()
	r.Silence()

	if r.Active() != melody.Rest {
		t.Errorf("Active() = %v, expected REST", r.Active())
	}
	if r.Activations() != 1 {
		t.Errorf("Activations() = %v, expected 1", r.Activations())
	}
	expected := []Call{{0, melody.A4}, {10 * time.Millisecond, melody.Rest}, {10 * time.Millisecond, melody.Rest}}
	if len(r.Calls) != len(expected) {
		t.Fatalf("Calls = %v, expected %v", r.Calls, expected)
	}
	for i := range expected {
		if r.Calls[i] != expected[i] {
			t.Errorf("call %v = %v, expected %v", i, r.Calls[i], expected[i])
		}
	}

	r.Reset()
	if len(r.Calls) != 0 || r.Activations() != 0 {
		t.Errorf("Reset left %v", r.Calls)
	}
}

func TestNopDriver(t *testing.T) {
	var d Driver = Nop{}
	d.Activate(melody.A4)
	d.Silence()
	d.Silence()
}
