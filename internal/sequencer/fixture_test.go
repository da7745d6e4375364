package sequencer

import (
	"errors"
	"testing"
	"time"

	"git.lost.host/meutraa/pusher/internal/melody"
	"git.lost.host/meutraa/pusher/internal/tone"
	"git.lost.host/meutraa/pusher/internal/testdata"
)

var fixtureErrors = map[string]error{
	"rest-between-notes": nil,
	"dotted":             nil,
	"empty":              nil,
	"mismatched":         melody.ErrMalformedTune,
	"zero-code":          melody.ErrMalformedTune,
	"negative-code":      melody.ErrMalformedTune,
}

func TestFixtures(t *testing.T) {
	for name, expected := range fixtureErrors {
		tune, err := testdata.GetTune(name)
		if !errors.Is(err, expected) {
			t.Errorf("%v: error %v, expected %v", name, err, expected)
			continue
		}
		if nil != err {
			continue
		}

		seq, err := New(tone.Nop{}, tenth)
		if nil != err {
			t.Fatal(err)
		}
		seq.Start(tune)
		for seq.IsPlaying() {
			seq.Advance(3 * time.Millisecond)
		}

		// sum of wholeNote / code, each truncated
		var expectedPlayed time.Duration
		for i := 0; i < tune.Len(); i++ {
			expectedPlayed += tenth.WholeNote / time.Duration(tune.DurationCodeAt(i))
		}
		if seq.Played() != expectedPlayed {
			t.Errorf("%v: played %v, expected %v", name, seq.Played(), expectedPlayed)
		}
	}
}
