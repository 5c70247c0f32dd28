package cortex

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/juju/clock"
)

// attempt scopes cancellation to a single Executor run, distinguishing
// "the timeout fired" from "the worker is shutting down" so the
// Executor can classify the outcome per spec §9's open question: if the
// timeout timer fires before the shutdown context is done, the attempt
// is TimedOut; otherwise it is Cancelled.
type attempt struct {
	ctx       context.Context
	cancel    context.CancelFunc
	timedOut  atomic.Bool
	leaseLost atomic.Bool
}

// newAttempt derives an attempt-scoped context from shutdown, armed
// with a clock-driven timer that cancels it after timeout.
func newAttempt(shutdown context.Context, clk clock.Clock, timeout time.Duration) *attempt {
	ctx, cancel := context.WithCancel(shutdown)
	a := &attempt{ctx: ctx, cancel: cancel}
	timer := clk.NewTimer(timeout)
	go func() {
		select {
		case <-timer.Chan():
			a.timedOut.Store(true)
			cancel()
		case <-ctx.Done():
			timer.Stop()
		}
	}()
	return a
}

// lostLease forcibly cancels the attempt because the heartbeat observed
// that the lease is no longer held. This is not a timeout: it is
// reported to the handler as ordinary cancellation via ctx, classified
// by Executor.classify as command.Cancelled. The Executor's Cancel
// write is guarded only on the row still running and non-terminal, so
// it applies unless the row has already been terminated or returned to
// pending, in which case it fails with ErrCompleteFailed.
func (a *attempt) lostLease() {
	a.leaseLost.Store(true)
	a.cancel()
}
