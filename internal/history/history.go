package history

import "time"

type History interface {
	Init(path string) error
	Deinit()

	// Save records one play of a tune
	Save(play Play) error

	// Load returns previous plays of the named tune, every play if name is
	// empty, oldest first
	Load(name string) ([]Play, error)

	Summary() ([]Summary, error)
}

type Play struct {
	Sum     string // content hash of the tune tables
	Tune    string
	Event   string
	Outcome string
	Started time.Time
	Played  time.Duration
	Steps   int
}

type Summary struct {
	Tune    string
	Outcome string
	Count   int
	Played  time.Duration
}
