package game

import (
	"time"

	"git.lost.host/meutraa/pusher/internal/sequencer"
	"git.lost.host/meutraa/pusher/internal/tunes"
)

type Outcome string

const (
	Finished  Outcome = "finished"
	Cancelled Outcome = "cancelled"
	Preempted Outcome = "preempted"
)

// Ending describes a jingle that stopped playing.
type Ending struct {
	Jingle  Jingle
	Outcome Outcome
	Played  time.Duration
	Steps   int // steps reached, counting the one playing when it ended
}

// Director decides which jingle the sequencer plays when events arrive.
type Director struct {
	seq      sequencer.Sequencer
	registry *tunes.Registry
	jingles  Jingles

	current Jingle
	active  bool

	// OnEnd is called for every jingle that stops, however it stops
	OnEnd func(Ending)
}

func NewDirector(seq sequencer.Sequencer, registry *tunes.Registry, jingles Jingles) *Director {
	return &Director{
		seq:      seq,
		registry: registry,
		jingles:  jingles,
		OnEnd:    func(Ending) {},
	}
}

// Trigger starts the event's jingle unless a higher priority one is still
// playing. It reports whether the jingle started.
func (d *Director) Trigger(e Event) bool {
	d.Update()

	j, ok := d.jingles[e]
	if !ok {
		return false
	}
	tune, ok := d.registry.Get(j.Tune)
	if !ok {
		return false
	}
	if d.active && d.current.Priority > j.Priority {
		return false
	}
	if d.active {
		d.end(Preempted)
	}

	d.seq.Start(tune)
	d.current = j
	d.active = true
	d.Update()
	return true
}

// Cancel silences whatever is playing.
func (d *Director) Cancel() {
	if !d.active {
		d.seq.Stop()
		return
	}
	d.seq.Stop()
	d.end(Cancelled)
}

// Update reports a jingle that finished since the last call. The host
// calls it after advancing the sequencer.
func (d *Director) Update() {
	if d.active && !d.seq.IsPlaying() {
		if d.seq.State() == sequencer.Finished {
			d.end(Finished)
		} else {
			d.end(Cancelled)
		}
	}
}

// Current returns the playing jingle.
func (d *Director) Current() (Jingle, bool) {
	return d.current, d.active
}

func (d *Director) end(outcome Outcome) {
	d.active = false
	steps := d.seq.Step() + 1
	if outcome == Finished {
		steps = d.seq.Tune().Len()
	}
	d.OnEnd(Ending{
		Jingle:  d.current,
		Outcome: outcome,
		Played:  d.seq.Played(),
		Steps:   steps,
	})
}
