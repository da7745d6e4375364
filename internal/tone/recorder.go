package tone

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/pusher/internal/melody"
	"github.com/benbjohnson/clock"
)

// Call is one driver call. Silence is recorded with the Rest pitch.
type Call struct {
	At    time.Duration // since the recorder was created
	Pitch melody.Pitch
}

func (c Call) String() string {
	if c.Pitch == melody.Rest {
		return fmt.Sprintf("%v silence", c.At)
	}
	return fmt.Sprintf("%v activate %d", c.At, uint16(c.Pitch))
}

// Recorder keeps every call with its time on the given clock.
type Recorder struct {
	Calls []Call

	clock  clock.Clock
	start  time.Time
	active melody.Pitch
}

func NewRecorder(clk clock.Clock) *Recorder {
	return &Recorder{clock: clk, start: clk.Now()}
}

func (r *Recorder) Activate(hz melody.Pitch) {
	r.active = hz
	r.Calls = append(r.Calls, Call{At: r.clock.Since(r.start), Pitch: hz})
}

func (r *Recorder) Silence() {
	r.active = melody.Rest
	r.Calls = append(r.Calls, Call{At: r.clock.Since(r.start), Pitch: melody.Rest})
}

// Active is the pitch currently sounding, Rest if silent.
func (r *Recorder) Active() melody.Pitch {
	return r.active
}

func (r *Recorder) Activations() int {
	n := 0
	for _, c := range r.Calls {
		if c.Pitch != melody.Rest {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.start = r.clock.Now()
	r.active = melody.Rest
}
