package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fenwick/cortex"
)

func TestEnqueueAppliesConfigDefaults(t *testing.T) {
	cfg := cortex.DefaultConfig()
	cfg.InstanceKey = "workers-eu"
	store := newTestStore(t, cfg)
	ctx := context.Background()

	id, err := store.Enqueue(ctx, cortex.EnqueueSpec{Name: "send_email"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Target != "workers-eu" {
		t.Fatalf("expected target workers-eu, got %s", got.Target)
	}
	if got.Timeout != cfg.DefaultTimeout {
		t.Fatalf("expected timeout %v, got %v", cfg.DefaultTimeout, got.Timeout)
	}
	if got.RetriesLeft != cfg.DefaultRetries {
		t.Fatalf("expected retries %d, got %d", cfg.DefaultRetries, got.RetriesLeft)
	}
}

func TestEnqueueHonorsClientChosenId(t *testing.T) {
	store := newTestStore(t, nil)
	ctx := context.Background()

	chosen := uuid.New()
	id, err := store.Enqueue(ctx, cortex.EnqueueSpec{Id: &chosen, Name: "send_email"})
	if err != nil {
		t.Fatal(err)
	}
	if id != chosen {
		t.Fatalf("expected returned id to equal client-chosen id %v, got %v", chosen, id)
	}

	got, err := store.Get(ctx, chosen)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected command to be retrievable by client-chosen id")
	}
}

func TestEnqueueDelaySetsFutureSchedule(t *testing.T) {
	store := newTestStore(t, nil)
	ctx := context.Background()

	before := time.Now()
	id, err := store.Enqueue(ctx, cortex.EnqueueSpec{Name: "send_email", Delay: time.Hour})
	if err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !got.ScheduledAt.After(before.Add(55 * time.Minute)) {
		t.Fatalf("expected ScheduledAt roughly an hour out, got %v", got.ScheduledAt)
	}
}
