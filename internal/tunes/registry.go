package tunes

import (
	"errors"
	"fmt"
	"sort"

	"git.lost.host/meutraa/pusher/internal/melody"
)

var ErrDuplicateTune = errors.New("duplicate tune name")

const (
	NameGoldDiggers       = "gold-diggers"
	NamePenniesFromHeaven = "pennies-from-heaven"
	NameHotCrossBuns      = "hot-cross-buns"
	NamePopGoesTheWeasel  = "pop-goes-the-weasel"
	NameMoney             = "money"
	NameTilt              = "tilt"
)

type Entry struct {
	Name string
	Tune *melody.Tune
}

// Registry maps names to tunes. It has no mutation path once built.
type Registry struct {
	tunes map[string]*melody.Tune
}

func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{tunes: make(map[string]*melody.Tune, len(entries))}
	for _, e := range entries {
		if _, ok := r.tunes[e.Name]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateTune, e.Name)
		}
		if nil == e.Tune {
			return nil, fmt.Errorf("%w: %v has no tune", melody.ErrMalformedTune, e.Name)
		}
		r.tunes[e.Name] = e.Tune
	}
	return r, nil
}

func (r *Registry) Get(name string) (*melody.Tune, bool) {
	t, ok := r.tunes[name]
	return t, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tunes))
	for name := range r.tunes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	return len(r.tunes)
}

var defaultRegistry *Registry

func init() {
	var err error
	defaultRegistry, err = NewRegistry(
		Entry{NameGoldDiggers, GoldDiggers},
		Entry{NamePenniesFromHeaven, PenniesFromHeaven},
		Entry{NameHotCrossBuns, HotCrossBuns},
		Entry{NamePopGoesTheWeasel, PopGoesTheWeasel},
		Entry{NameMoney, Money},
		Entry{NameTilt, Tilt},
	)
	if nil != err {
		panic(err)
	}
}

// Default returns the registry of the compiled in coin pusher tunes.
func Default() *Registry {
	return defaultRegistry
}
