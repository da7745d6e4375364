package game

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"git.lost.host/meutraa/pusher/internal/tunes"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownTune  = errors.New("unknown tune")
	ErrMissingEvent = errors.New("jingle has no event")
)

// Jingle is the tune played for an event. A playing jingle can only be
// interrupted by one of equal or higher priority.
type Jingle struct {
	Event    Event  `yaml:"event"`
	Tune     string `yaml:"tune"`
	Priority int    `yaml:"priority"`
}

type Jingles map[Event]Jingle

func DefaultJingles() Jingles {
	return Jingles{
		Attract: {Event: Attract, Tune: tunes.NameMoney, Priority: 0},
		Coin:    {Event: Coin, Tune: tunes.NameHotCrossBuns, Priority: 1},
		Win:     {Event: Win, Tune: tunes.NamePenniesFromHeaven, Priority: 2},
		Bonus:   {Event: Bonus, Tune: tunes.NamePopGoesTheWeasel, Priority: 2},
		Jackpot: {Event: Jackpot, Tune: tunes.NameGoldDiggers, Priority: 3},
		Tilt:    {Event: Tilt, Tune: tunes.NameTilt, Priority: 4},
	}
}

// jingleEntry is a Jingle as written in a file. Event is a pointer so a
// missing key is not read as Coin.
type jingleEntry struct {
	Event    *Event `yaml:"event"`
	Tune     string `yaml:"tune"`
	Priority int    `yaml:"priority"`
}

type jingleFile struct {
	Jingles []jingleEntry `yaml:"jingles"`
}

// ReadJingles decodes a YAML jingle table over the defaults, e.g.
//
//	jingles:
//	  - event: coin
//	    tune: tilt
//	    priority: 1
func ReadJingles(r io.Reader, registry *tunes.Registry) (Jingles, error) {
	var f jingleFile
	if err := yaml.NewDecoder(r).Decode(&f); nil != err && err != io.EOF {
		return nil, fmt.Errorf("unable to decode jingles: %w", err)
	}

	jingles := DefaultJingles()
	for i, j := range f.Jingles {
		if nil == j.Event {
			return nil, fmt.Errorf("%w: entry %v for tune %q", ErrMissingEvent, i, j.Tune)
		}
		jingles[*j.Event] = Jingle{Event: *j.Event, Tune: j.Tune, Priority: j.Priority}
	}
	if err := jingles.Validate(registry); nil != err {
		return nil, err
	}
	return jingles, nil
}

func LoadJingles(path string, registry *tunes.Registry) (Jingles, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, fmt.Errorf("unable to open jingles: %w", err)
	}
	defer f.Close()
	return ReadJingles(f, registry)
}

func (js Jingles) Validate(registry *tunes.Registry) error {
	for _, j := range js.Sorted() {
		if _, ok := registry.Get(j.Tune); !ok {
			return fmt.Errorf("%w: %q for %v", ErrUnknownTune, j.Tune, j.Event)
		}
	}
	return nil
}

// Sorted returns the jingles in event order.
func (js Jingles) Sorted() []Jingle {
	sorted := make([]Jingle, 0, len(js))
	for _, j := range js {
		sorted = append(sorted, j)
	}
	sort.Slice(sorted, func(a, b int) bool {
		return sorted[a].Event < sorted[b].Event
	})
	return sorted
}
