package tone

import "git.lost.host/meutraa/pusher/internal/melody"

// Driver is a single square wave output. Both calls must be safe to repeat,
// Silence while already silent does nothing.
type Driver interface {
	Activate(hz melody.Pitch)
	Silence()
}

// Nop discards every call.
type Nop struct{}

func (Nop) Activate(melody.Pitch) {}
func (Nop) Silence()              {}
