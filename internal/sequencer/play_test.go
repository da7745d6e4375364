package sequencer

import (
	"context"
	"errors"
	"testing"
	"time"

	"git.lost.host/meutraa/pusher/internal/melody"
	"git.lost.host/meutraa/pusher/internal/tone"
	"github.com/benbjohnson/clock"
)

// drive moves the mock clock forward until Play returns
func drive(t *testing.T, clk *clock.Mock, done <-chan error, step time.Duration) error {
	t.Helper()
	for i := 0; i < 10000; i++ {
		select {
		case err := <-done:
			return err
		default:
			clk.Add(step)
		}
	}
	t.Fatal("Play did not return")
	return nil
}

func TestPlay(t *testing.T) {
	clk := clock.NewMock()
	rec := tone.NewRecorder(clk)
	seq, err := New(rec, tenth)
	if nil != err {
		t.Fatal(err)
	}
	tune := melody.MustNew([]melody.Pitch{440, melody.Rest, 440}, []uint8{4, 4, 4})

	done := make(chan error, 1)
	go func() {
		done <- Play(context.Background(), seq, clk, 5*time.Millisecond, tune)
	}()
	if err := drive(t, clk, done, 5*time.Millisecond); nil != err {
		t.Errorf("Play returned %v", err)
	}

	if seq.State() != Finished {
		t.Errorf("state %v, expected finished", seq.State())
	}
	if seq.Played() != 750*time.Millisecond {
		t.Errorf("played %v, expected 750ms", seq.Played())
	}
	if rec.Activations() != 2 || rec.Active() != melody.Rest {
		t.Errorf("%v activations, %v sounding", rec.Activations(), rec.Active())
	}
}

func TestPlayCancelled(t *testing.T) {
	clk := clock.NewMock()
	rec := tone.NewRecorder(clk)
	seq, err := New(rec, tenth)
	if nil != err {
		t.Fatal(err)
	}
	tune := melody.MustNew([]melody.Pitch{melody.C4}, []uint8{1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Play(ctx, seq, clk, 5*time.Millisecond, tune)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Play returned %v, expected context.Canceled", err)
	}
	if seq.State() != Idle || rec.Active() != melody.Rest {
		t.Errorf("state %v, %v sounding after cancel", seq.State(), rec.Active())
	}
}

func TestPlayInvalidTick(t *testing.T) {
	clk := clock.NewMock()
	rec := tone.NewRecorder(clk)
	seq, err := New(rec, tenth)
	if nil != err {
		t.Fatal(err)
	}
	tune := melody.MustNew([]melody.Pitch{melody.C4}, []uint8{4})
	for _, tick := range []time.Duration{0, -time.Millisecond} {
		if err := Play(context.Background(), seq, clk, tick, tune); !errors.Is(err, ErrInvalidTick) {
			t.Errorf("Play with tick %v returned %v, expected ErrInvalidTick", tick, err)
		}
	}
	if seq.State() != Idle || len(rec.Calls) != 0 {
		t.Errorf("state %v with %v driver calls, expected nothing to start", seq.State(), len(rec.Calls))
	}
}

func TestPlayEmpty(t *testing.T) {
	clk := clock.NewMock()
	seq, err := New(tone.Nop{}, tenth)
	if nil != err {
		t.Fatal(err)
	}
	if err := Play(context.Background(), seq, clk, time.Millisecond, melody.MustNew(nil, nil)); nil != err {
		t.Errorf("Play returned %v", err)
	}
	if seq.State() != Finished {
		t.Errorf("state %v, expected finished", seq.State())
	}
}
