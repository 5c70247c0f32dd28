package cortex

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/juju/clock"

	"github.com/fenwick/cortex/command"
	"github.com/fenwick/cortex/registry"
)

// Executor drives one command.Command to a terminal state: lease ->
// run -> heartbeat -> terminate -> chain (spec §4.5).
type Executor struct {
	Leaser      Leaser
	Terminator  Terminator
	Registry    registry.Registry
	Clock       clock.Clock
	Log         *slog.Logger
	Lease       time.Duration // lock_timeout_buffer; heartbeat fires at Lease/2
	WriteBudget time.Duration // terminal-write timeout once the attempt ends
}

// Run executes cmd to completion. shutdown is the worker's own
// cancellation context; Run returns once the terminal write has been
// attempted, regardless of shutdown state.
func (e *Executor) Run(shutdown context.Context, cmd *command.Command) {
	def, ok := e.Registry.Lookup(cmd.Name)
	if !ok {
		e.terminate(shutdown, cmd, command.NotFound, nil, registry.Chain{}, false)
		return
	}

	at := newAttempt(shutdown, e.Clock, cmd.Timeout)
	defer at.cancel()

	stopHeartbeat := e.startHeartbeat(at, cmd.Id)
	output, err := def.Handler(at.ctx, cmd.Input)
	stopHeartbeat()

	outcome, immediate := e.classify(err, shutdown, at)
	e.terminate(shutdown, cmd, outcome, output, def.Chain, immediate)
}

func (e *Executor) classify(err error, shutdown context.Context, at *attempt) (command.Outcome, bool) {
	if err == nil {
		return command.Success, false
	}
	if errors.Is(err, registry.ErrCancelled) {
		return command.Cancelled, false
	}
	if at.timedOut.Load() {
		return command.TimedOut, false
	}
	if at.leaseLost.Load() {
		return command.Cancelled, false
	}
	if shutdown.Err() != nil {
		return command.Cancelled, false
	}
	if errors.Is(err, registry.ErrAbandon) {
		return command.Failed, true
	}
	return command.Failed, false
}

// startHeartbeat extends the command's lease on a timer at half the
// lease duration. It stops when Extend reports the lease is lost
// (forcibly cancelling the attempt so the handler observes it) or when
// the attempt's context is done for any other reason.
func (e *Executor) startHeartbeat(at *attempt, id uuid.UUID) func() {
	done := make(chan struct{})
	go func() {
		ticker := e.Clock.NewTimer(e.Lease / 2)
		defer ticker.Stop()
		for {
			select {
			case <-at.ctx.Done():
				return
			case <-done:
				return
			case <-ticker.Chan():
				ok, err := e.Leaser.Extend(at.ctx, id, e.Lease)
				if err != nil {
					e.Log.Error("lease extend failed", "id", id, "err", err)
				}
				if !ok {
					e.Log.Warn("lease lost during attempt", "id", id)
					at.lostLease()
					return
				}
				ticker.Reset(e.Lease / 2)
			}
		}
	}()
	return func() { close(done) }
}

func (e *Executor) terminate(shutdown context.Context, cmd *command.Command, outcome command.Outcome, output *string, chain registry.Chain, immediate bool) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(shutdown), e.writeBudget())
	defer cancel()

	switch outcome {
	case command.Success:
		if err := e.Terminator.Complete(ctx, cmd.Id, output, chain); err != nil {
			e.Log.Error("cannot complete command", "id", cmd.Id, "err", err)
		}
	case command.Cancelled:
		if err := e.Terminator.Cancel(ctx, cmd.Id, chain); err != nil {
			e.Log.Error("cannot cancel command", "id", cmd.Id, "err", err)
		}
	default: // Failed, NotFound, TimedOut all route through Fail.
		if err := e.Terminator.Fail(ctx, cmd.Id, chain, immediate); err != nil {
			if errors.Is(err, ErrLeaseLost) {
				e.Log.Warn("lease superseded before fail transition", "id", cmd.Id)
				return
			}
			e.Log.Error("cannot fail command", "id", cmd.Id, "err", err)
		}
	}
}

func (e *Executor) writeBudget() time.Duration {
	if e.WriteBudget > 0 {
		return e.WriteBudget
	}
	return 5 * time.Second
}
