package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/pusher/internal/game"
	"git.lost.host/meutraa/pusher/internal/melody"
	"git.lost.host/meutraa/pusher/internal/sequencer"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) CodeColor(code uint8) color.RGBA {
	col, ok := codeColors[code]
	if !ok {
		return other
	}
	return col
}

// RenderStep draws a note as its name over a bar as long as its duration.
func (t *DefaultTheme) RenderStep(pitch melody.Pitch, code uint8) string {
	c := t.CodeColor(code)
	name := pitch.String()
	if pitch == melody.Rest {
		name = restSym
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%-4v %v\033[0m", c.R, c.G, c.B, name, bar(code))
}

func (t *DefaultTheme) RenderState(state sequencer.State) string {
	return stateSyms[state] + " " + state.String()
}

func (t *DefaultTheme) Banner(event game.Event) string {
	b, ok := banners[event]
	if !ok {
		return event.String()
	}
	return b
}

// bar is 32 cells for a whole note
func bar(code uint8) string {
	n := 32 / int(code)
	if n < 1 {
		n = 1
	}
	s := make([]rune, n)
	for i := range s {
		s[i] = barSym
	}
	return string(s)
}

const (
	restSym = "𝄽"
	barSym  = '█'
)

var (
	other      = color.RGBA{255, 255, 255, 255}
	codeColors = map[uint8]color.RGBA{
		1:  {236, 30, 0, 255},    // whole red
		2:  {0, 118, 236, 255},   // half blue
		3:  {106, 0, 236, 255},   // dotted half purple
		4:  {236, 195, 0, 255},   // quarter yellow
		6:  {236, 0, 106, 255},   // dotted quarter pink
		8:  {236, 128, 0, 255},   // eighth orange
		12: {173, 236, 236, 255}, // dotted eighth light blue
		16: {0, 236, 128, 255},   // sixteenth green
		24: {106, 106, 106, 255}, // grey
		32: {110, 147, 89, 255},  // olive
	}
	stateSyms = map[sequencer.State]string{
		sequencer.Idle:        "■",
		sequencer.PlayingNote: "♪",
		sequencer.Gap:         "·",
		sequencer.Finished:    "✓",
	}
	banners = map[game.Event]string{
		game.Coin:    "\033[1;33mCOIN\033[0m",
		game.Win:     "\033[1;32mWINNER\033[0m",
		game.Bonus:   "\033[1;35mBONUS\033[0m",
		game.Jackpot: "\033[1;31mJ\033[38;5;208mA\033[1;33mC\033[1;32mK\033[38;5;153mP\033[1;35mO\033[1;36mT\033[0m",
		game.Tilt:    "\033[1;31mTILT\033[0m",
	}
)
