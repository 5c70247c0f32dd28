package cortex

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/juju/clock"

	"github.com/fenwick/cortex/command"
	"github.com/fenwick/cortex/internal"
	"github.com/fenwick/cortex/registry"
)

// Host starts and stops a Worker (and, if configured, a background
// retention sweep) as a single supervised unit, and exposes a local
// Enqueuer that wakes the Host's own Worker immediately after a
// successful insert rather than waiting out a full poll cycle.
//
// Start/Stop are idempotent: calling either twice without an
// intervening call to the other returns ErrDoubleStarted/
// ErrDoubleStopped.
type Host struct {
	lifecycle internal.Lifecycle

	store  Store
	worker *Worker
	log    *slog.Logger
	clk    clock.Clock

	sweep    *internal.TimerTask
	sweepCfg *RetentionConfig
}

// RetentionConfig configures the Host's optional background Cleaner
// sweep. A nil *RetentionConfig passed to NewHost disables the sweep —
// Clean may still be invoked directly via the Store.
type RetentionConfig struct {
	// Status restricts the sweep to one terminal status; command.Unknown
	// sweeps every terminal status.
	Status command.Status
	// Interval is how often the sweep runs.
	Interval time.Duration
	// Before, if non-nil, restricts deletion to commands whose terminal
	// timestamp falls at or before the Host clock's Now().Add(-*Before).
	Before *time.Duration
}

// NewHost builds a Host around store, wiring one Worker per cfg.
// sweep may be nil to disable background retention cleanup.
func NewHost(store Store, reg registry.Registry, clk clock.Clock, cfg *Config, sweep *RetentionConfig, log *slog.Logger) *Host {
	return &Host{
		store:    store,
		worker:   NewWorker(store, reg, clk, cfg, log),
		log:      log,
		clk:      clk,
		sweepCfg: sweep,
	}
}

// Enqueuer returns an Enqueuer that inserts through the Host's Store and
// wakes its Worker's idle sleep immediately on success.
func (h *Host) Enqueuer() Enqueuer {
	return &localEnqueuer{store: h.store, worker: h.worker}
}

// Start begins the Host's Worker and, if configured, its retention
// sweep. It returns ErrDoubleStarted if already running.
func (h *Host) Start(ctx context.Context) error {
	if !h.lifecycle.TryStart() {
		return ErrDoubleStarted
	}
	if err := h.worker.Start(ctx); err != nil {
		return err
	}
	if h.sweepCfg != nil {
		h.sweep = &internal.TimerTask{}
		h.sweep.Start(ctx, h.clk, h.runSweep, h.sweepCfg.Interval)
	}
	return nil
}

func (h *Host) runSweep(ctx context.Context) {
	var before *time.Time
	if h.sweepCfg.Before != nil {
		t := h.clk.Now().Add(-*h.sweepCfg.Before)
		before = &t
	}
	if _, err := h.store.Clean(ctx, h.sweepCfg.Status, before); err != nil {
		h.log.Error("retention sweep failed", "err", err)
	}
}

// Stop cancels the Worker and, if running, the retention sweep, and
// waits for both to finish or timeout elapses.
func (h *Host) Stop(timeout time.Duration) error {
	if !h.lifecycle.TryStop() {
		return ErrDoubleStopped
	}
	done := h.worker.doStop()
	if h.sweep != nil {
		done = internal.Combine(done, h.sweep.Stop())
	}
	if internal.AwaitShutdown(done, timeout) {
		return nil
	}
	return ErrStopTimeout
}

type localEnqueuer struct {
	store  Enqueuer
	worker *Worker
}

func (e *localEnqueuer) Enqueue(ctx context.Context, spec EnqueueSpec) (uuid.UUID, error) {
	id, err := e.store.Enqueue(ctx, spec)
	if err != nil {
		return uuid.Nil, err
	}
	e.worker.Notify()
	return id, nil
}
