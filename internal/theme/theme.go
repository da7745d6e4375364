package theme

import (
	"image/color"

	"git.lost.host/meutraa/pusher/internal/game"
	"git.lost.host/meutraa/pusher/internal/melody"
	"git.lost.host/meutraa/pusher/internal/sequencer"
)

type Theme interface {
	CodeColor(code uint8) color.RGBA
	RenderStep(pitch melody.Pitch, code uint8) string
	RenderState(state sequencer.State) string
	Banner(event game.Event) string
}
