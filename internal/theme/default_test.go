package theme

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/pusher/internal/game"
	"git.lost.host/meutraa/pusher/internal/melody"
	"git.lost.host/meutraa/pusher/internal/sequencer"
)

func TestCodeColor(t *testing.T) {
	th := DefaultTheme{}
	if c := th.CodeColor(4); c != codeColors[4] {
		t.Errorf("quarter color %v", c)
	}
	if c := th.CodeColor(5); c != other {
		t.Errorf("unknown code color %v, expected white", c)
	}
}

var barLengths = map[uint8]int{1: 32, 2: 16, 3: 10, 4: 8, 16: 2, 32: 1, 64: 1}

func TestRenderStep(t *testing.T) {
	th := DefaultTheme{}
	for code, length := range barLengths {
		s := th.RenderStep(melody.A4, code)
		if n := strings.Count(s, string(barSym)); n != length {
			t.Errorf("code %v drew %v cells, expected %v", code, n, length)
		}
		if !strings.Contains(s, "A4") {
			t.Errorf("%q has no note name", s)
		}
	}
	if s := th.RenderStep(melody.Rest, 4); !strings.Contains(s, restSym) {
		t.Errorf("%q has no rest symbol", s)
	}
}

func TestRenderState(t *testing.T) {
	th := DefaultTheme{}
	if s := th.RenderState(sequencer.PlayingNote); s != "♪ playing" {
		t.Errorf("RenderState = %q", s)
	}
	if s := th.Banner(game.Attract); s != "attract" {
		t.Errorf("Banner = %q", s)
	}
}
