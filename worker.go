package cortex

import (
	"context"
	"log/slog"
	"time"

	"github.com/juju/clock"

	"github.com/fenwick/cortex/command"
	"github.com/fenwick/cortex/internal"
	"github.com/fenwick/cortex/registry"
)

// Worker coordinates acquiring, dispatching, and terminating commands
// for one InstanceKey (spec §4.6).
//
// Worker implements an at-least-once processing model: repeatedly
// Acquire a command for this worker's target, spawn an Executor for it
// up to Config.MaxInFlight concurrently, and sleep up to
// Config.PollInterval between idle cycles — interruptible by a local
// Enqueue notification.
//
// Worker has a strict lifecycle: Start may only be called once; Stop
// waits for in-flight Executors to attempt their terminal writes,
// subject to a timeout.
type Worker struct {
	lifecycle internal.Lifecycle

	store    Store
	registry registry.Registry
	clock    clock.Clock
	log      *slog.Logger
	cfg      *Config

	pool     *internal.WorkerPool[*command.Command]
	wake     *internal.Wake
	pollTask context.CancelFunc
	pollDone internal.DoneChan
	backoff  internal.PollBackoff
	misses   uint32
}

// NewWorker creates a Worker. The worker is not started automatically;
// call Start to begin processing.
func NewWorker(store Store, reg registry.Registry, clk clock.Clock, cfg *Config, log *slog.Logger) *Worker {
	cfg = cfg.withDefaults()
	return &Worker{
		store:    store,
		registry: reg,
		clock:    clk,
		log:      log,
		cfg:      cfg,
		pool:     internal.NewWorkerPool[*command.Command](cfg.MaxInFlight, cfg.MaxInFlight, log),
		wake:     internal.NewWake(),
		backoff:  internal.PollBackoff{PollBackoffConfig: cfg.PollBackoff},
	}
}

// Notify wakes the worker's idle sleep immediately, used by an Enqueuer
// sharing this worker's process to avoid waiting out a full
// PollInterval for newly-visible work.
func (w *Worker) Notify() {
	w.wake.Signal()
}

func (w *Worker) executor() *Executor {
	return &Executor{
		Leaser:     w.store,
		Terminator: w.store,
		Registry:   w.registry,
		Clock:      w.clock,
		Log:        w.log,
		Lease:      w.cfg.LockTimeoutBuffer,
	}
}

// dispatch is the pool's work handler: it runs one acquired command
// through a fresh Executor on a pool goroutine.
func (w *Worker) dispatch(ctx context.Context, cmd *command.Command) {
	exec := w.executor()
	exec.Run(ctx, cmd)
}

// pollOnce implements the Polling state: acquire repeatedly (draining
// available work) until none remains, Acquire fails, or the pool is
// closed. While the pool's buffer is full, Push blocks until a slot
// frees.
func (w *Worker) pollOnce(ctx context.Context) {
	for {
		cmd, ok, err := w.store.Acquire(ctx, w.cfg.InstanceKey, w.cfg.LockTimeoutBuffer)
		if err != nil {
			w.misses++
			delay := w.backoff.Next(w.misses)
			w.log.Error("acquire failed, backing off", "err", err, "delay", delay)
			return
		}
		w.misses = 0
		if !ok {
			return
		}
		if !w.pool.Push(cmd) {
			w.log.Debug("dispatch interrupted by shutdown", "id", cmd.Id)
			return
		}
	}
}

// Start begins background polling and processing. It returns
// ErrDoubleStarted if the worker has already been started.
func (w *Worker) Start(ctx context.Context) error {
	if !w.lifecycle.TryStart() {
		return ErrDoubleStarted
	}
	w.pool.Start(ctx, w.dispatch)

	pollCtx, cancel := context.WithCancel(ctx)
	w.pollTask = cancel
	w.pollDone = make(internal.DoneChan)
	go w.pollLoop(pollCtx)
	return nil
}

// pollLoop is the Idle/Polling cycle: poll, then sleep up to
// PollInterval (or the current backoff delay after a transient store
// error), interruptible by shutdown or Notify.
func (w *Worker) pollLoop(ctx context.Context) {
	defer close(w.pollDone)
	for {
		// Take the wake channel before polling so a Notify that lands
		// while pollOnce runs still interrupts the sleep that follows.
		wakeC := w.wake.C()
		w.pollOnce(ctx)

		interval := w.cfg.PollInterval
		if w.misses > 0 {
			interval = w.backoff.Next(w.misses)
		}
		timer := w.clock.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-wakeC:
			timer.Stop()
		case <-timer.Chan():
		}
	}
}

func (w *Worker) doStop() internal.DoneChan {
	w.pollTask()
	poolDone := w.pool.Stop()
	return internal.Combine(internal.DoneChan(w.pollDone), poolDone)
}

// Stop initiates graceful shutdown: stops polling, cancels the pool,
// and waits for in-flight Executors to attempt their terminal writes.
// It returns ErrStopTimeout if shutdown does not complete within
// timeout (background goroutines may still be terminating), or
// ErrDoubleStopped if the worker was not running.
func (w *Worker) Stop(timeout time.Duration) error {
	if !w.lifecycle.TryStop() {
		return ErrDoubleStopped
	}
	if internal.AwaitShutdown(w.doStop(), timeout) {
		return nil
	}
	return ErrStopTimeout
}
