package sequencer

import (
	"context"
	"fmt"
	"time"

	"git.lost.host/meutraa/pusher/internal/melody"
	"github.com/benbjohnson/clock"
)

// Play starts the tune and drives Advance from a ticker until the tune
// finishes, the sequencer is stopped, or ctx is done. Elapsed time is
// measured on clk, so a late tick does not slow the tune down.
func Play(ctx context.Context, s Sequencer, clk clock.Clock, tick time.Duration, tune *melody.Tune) error {
	if tick <= 0 {
		return fmt.Errorf("%w: %v is not positive", ErrInvalidTick, tick)
	}

	ticker := clk.Ticker(tick)
	defer ticker.Stop()

	last := clk.Now()
	s.Start(tune)
	s.Advance(0)
	for s.IsPlaying() {
		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()
		case <-ticker.C:
			now := clk.Now()
			s.Advance(now.Sub(last))
			last = now
		}
	}
	return nil
}
