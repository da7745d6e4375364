package sequencer

import (
	"testing"
	"time"
)

func TestSplitIsExact(t *testing.T) {
	wholes := []time.Duration{1000, 1601, time.Second, 1234567 * time.Microsecond}
	gaps := []uint16{0, 1, 100, 333, 999, 1000}
	for _, whole := range wholes {
		for _, gap := range gaps {
			timing := Timing{WholeNote: whole, GapPermille: gap}
			for code := 1; code <= 255; code++ {
				step, audible, g := timing.Split(uint8(code))
				if step != whole/time.Duration(code) {
					t.Fatalf("%+v code %v: step %v", timing, code, step)
				}
				if audible+g != step || audible < 0 || g < 0 {
					t.Fatalf("%+v code %v: %v + %v != %v", timing, code, audible, g, step)
				}
			}
		}
	}
}

var splitTests = map[uint8][3]time.Duration{
	1:  {1000, 900, 100},
	3:  {333, 300, 33},
	4:  {250, 225, 25},
	6:  {166, 150, 16},
	16: {62, 56, 6},
}

func TestSplit(t *testing.T) {
	timing := Timing{WholeNote: 1000, GapPermille: 100}
	for code, expected := range splitTests {
		step, audible, gap := timing.Split(code)
		if step != expected[0] || audible != expected[1] || gap != expected[2] {
			t.Errorf("Split(%v) = %v %v %v, expected %v", code, step, audible, gap, expected)
		}
	}
}
