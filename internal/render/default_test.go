package render

import (
	"bytes"
	"image/color"
	"testing"
	"time"
)

func TestFill(t *testing.T) {
	var out bytes.Buffer
	r := DefaultRenderer{Out: &out}
	r.Fill(3, 10, "coin")
	r.FillColor(4, 2, color.RGBA{R: 236, G: 30, B: 0}, "A4")
	r.flush()

	expected := "\033[3;10Hcoin\033[4;2H\033[38;2;236;30;0mA4\033[0m"
	if out.String() != expected {
		t.Errorf("wrote %q, expected %q", out.String(), expected)
	}
}

func TestDecorationExpires(t *testing.T) {
	var out bytes.Buffer
	r := DefaultRenderer{Out: &out}
	r.AddDecoration(5, 1, "TILT", 1)
	r.tickDecorations()
	r.tickDecorations()
	r.flush()

	expected := "\033[1;5HTILT\033[1;5H    "
	if out.String() != expected {
		t.Errorf("wrote %q, expected %q", out.String(), expected)
	}
	if len(r.decorations) != 0 {
		t.Errorf("%v decorations left", len(r.decorations))
	}
}

func TestRenderLoopStops(t *testing.T) {
	var out bytes.Buffer
	r := DefaultRenderer{Out: &out}
	frames := 0
	r.RenderLoop(time.Millisecond, func(duration time.Duration) bool {
		frames++
		r.Fill(1, 1, "x")
		return frames < 3
	})
	if frames != 3 {
		t.Errorf("%v frames, expected 3", frames)
	}
	if out.String() != "\033[1;1Hx\033[1;1Hx\033[1;1Hx" {
		t.Errorf("wrote %q", out.String())
	}
}
