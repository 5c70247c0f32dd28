package cortex_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/juju/clock"

	"github.com/fenwick/cortex"
	"github.com/fenwick/cortex/command"
	"github.com/fenwick/cortex/registry"
)

func TestHostEnqueuerWakesWorkerImmediately(t *testing.T) {
	cfg := cortex.DefaultConfig()
	cfg.PollInterval = time.Hour // would never fire in time without the wake-up
	cfg.LockTimeoutBuffer = 200 * time.Millisecond
	store := newTestStore(t, cfg)

	called := make(chan struct{}, 1)
	reg := registry.NewMapRegistry()
	reg.Register("send_email", registry.Definition{
		Handler: func(ctx context.Context, input *string) (*string, error) {
			called <- struct{}{}
			return nil, nil
		},
	})

	host := cortex.NewHost(store, reg, clock.WallClock, cfg, nil, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := host.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = host.Stop(time.Second) }()

	if _, err := host.Enqueuer().Enqueue(ctx, cortex.EnqueueSpec{Name: "send_email"}); err != nil {
		t.Fatal(err)
	}

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("worker was not woken by the local Enqueuer")
	}
}

func TestHostRetentionSweepDeletesOldTerminalCommands(t *testing.T) {
	cfg := cortex.DefaultConfig()
	cfg.PollInterval = 20 * time.Millisecond
	cfg.LockTimeoutBuffer = 200 * time.Millisecond
	store := newTestStore(t, cfg)

	reg := registry.NewMapRegistry()
	reg.Register("send_email", registry.Definition{
		Handler: func(ctx context.Context, input *string) (*string, error) {
			return nil, nil
		},
	})

	sweepInterval := 30 * time.Millisecond
	before := time.Duration(0)
	sweep := &cortex.RetentionConfig{
		Status:   command.Unknown,
		Interval: sweepInterval,
		Before:   &before,
	}
	host := cortex.NewHost(store, reg, clock.WallClock, cfg, sweep, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := host.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = host.Stop(time.Second) }()

	id, err := host.Enqueuer().Enqueue(ctx, cortex.EnqueueSpec{Name: "send_email"})
	if err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		cmd, err := store.Get(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if cmd == nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("retention sweep never removed the completed command")
}
