package input

import (
	"errors"
	"testing"

	"git.lost.host/meutraa/pusher/internal/game"
	"github.com/eiannone/keyboard"
)

func TestBindings(t *testing.T) {
	b, err := Bindings("cwbjat")
	if nil != err {
		t.Fatal(err)
	}
	if b['c'] != game.Coin || b['t'] != game.Tilt || b['j'] != game.Jackpot {
		t.Errorf("bindings %v", b)
	}
	for _, keys := range []string{"cwb", "cwbjatx", "ccbjat"} {
		if _, err := Bindings(keys); !errors.Is(err, ErrBindings) {
			t.Errorf("Bindings(%q) error %v, expected ErrBindings", keys, err)
		}
	}
}

var translateTests = map[keyboard.KeyEvent]Command{
	{Key: keyboard.KeyEsc}:   {Kind: Quit},
	{Key: keyboard.KeyCtrlC}: {Kind: Quit},
	{Key: keyboard.KeySpace}: {Kind: Cancel},
	{Rune: 'c'}:              {Kind: Trigger, Event: game.Coin},
	{Rune: 'a'}:              {Kind: Trigger, Event: game.Attract},
}

func TestTranslate(t *testing.T) {
	b, _ := Bindings("cwbjat")
	for key, expected := range translateTests {
		c, ok := Translate(b, key)
		if !ok || c != expected {
			t.Errorf("Translate(%+v) = %+v, %v, expected %+v", key, c, ok, expected)
		}
	}
	if _, ok := Translate(b, keyboard.KeyEvent{Rune: 'z'}); ok {
		t.Error("unbound key translated")
	}
}
