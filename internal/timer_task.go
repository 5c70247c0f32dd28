package internal

import (
	"context"
	"time"

	"github.com/juju/clock"
)

// TimerHandler is invoked once immediately on Start and then again on
// every tick until the task is stopped.
type TimerHandler func(context.Context)

// TimerTask runs a TimerHandler on a fixed period in its own goroutine,
// paced by an injected clock.Clock rather than time.NewTicker, so a
// retention sweep's cadence can be driven deterministically in tests
// instead of waiting out real wall-clock ticks.
type TimerTask struct {
	cancel context.CancelFunc
	done   DoneChan
}

func (t *TimerTask) loop(ctx context.Context, clk clock.Clock, handle TimerHandler, period time.Duration) {
	defer close(t.done)
	timer := clk.NewTimer(period)
	defer timer.Stop()
	handle(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.Chan():
			handle(ctx)
			timer.Reset(period)
		}
	}
}

// Start begins the periodic loop, scoped to ctx, firing every period
// according to clk.
func (t *TimerTask) Start(ctx context.Context, clk clock.Clock, handle TimerHandler, period time.Duration) {
	t.done = make(DoneChan)
	ctx, t.cancel = context.WithCancel(ctx)
	go t.loop(ctx, clk, handle, period)
}

// Stop cancels the loop and returns a DoneChan that closes once the
// current invocation of handle (if any) returns.
func (t *TimerTask) Stop() DoneChan {
	t.cancel()
	return t.done
}
