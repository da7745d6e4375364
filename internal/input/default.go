package input

import (
	"errors"
	"fmt"

	"git.lost.host/meutraa/pusher/internal/game"
	"github.com/eiannone/keyboard"
)

var ErrBindings = errors.New("invalid key bindings")

type Kind uint8

const (
	Trigger Kind = iota
	Cancel
	Quit
)

type Command struct {
	Kind  Kind
	Event game.Event // only for Trigger
}

// Bindings maps each rune of keys to the event at the same position in
// game.Events().
func Bindings(keys string) (map[rune]game.Event, error) {
	runes := []rune(keys)
	events := game.Events()
	if len(runes) != len(events) {
		return nil, fmt.Errorf("%w: %v keys for %v events", ErrBindings, len(runes), len(events))
	}
	bindings := make(map[rune]game.Event, len(runes))
	for i, r := range runes {
		if _, ok := bindings[r]; ok {
			return nil, fmt.Errorf("%w: %q bound twice", ErrBindings, r)
		}
		bindings[r] = events[i]
	}
	return bindings, nil
}

type DefaultInput struct {
	bindings map[rune]game.Event
	keys     <-chan keyboard.KeyEvent
}

func (in *DefaultInput) Init(bindings map[rune]game.Event) error {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	in.bindings = bindings
	in.keys = keys
	return nil
}

func (in *DefaultInput) Deinit() error {
	return keyboard.Close()
}

// Poll returns the commands for keys pressed since the last call without
// blocking.
func (in *DefaultInput) Poll() []Command {
	commands := []Command{}
	for i := len(in.keys); i > 0; i-- {
		key := <-in.keys
		if nil != key.Err {
			continue
		}
		if c, ok := Translate(in.bindings, key); ok {
			commands = append(commands, c)
		}
	}
	return commands
}

func Translate(bindings map[rune]game.Event, key keyboard.KeyEvent) (Command, bool) {
	switch key.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Command{Kind: Quit}, true
	case keyboard.KeySpace:
		return Command{Kind: Cancel}, true
	}
	if e, ok := bindings[key.Rune]; ok {
		return Command{Kind: Trigger, Event: e}, true
	}
	return Command{}, false
}
