package cortex

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fenwick/cortex/command"
)

// Leaser implements the atomic acquire/extend primitives of spec §4.4:
// distributed mutual exclusion over the command table via conditional
// updates.
type Leaser interface {
	// Acquire atomically picks one eligible command routed to target
	// (ScheduledAt <= now, no terminal flag set, lease free) and
	// transitions it to leased, setting IsRunning, RunningAt, and
	// RunExpiresAt = now + lease.
	//
	// It returns (nil, false, nil) if no eligible command exists, or if
	// the acquiring update lost a race to another worker — the caller
	// should simply try again on its next poll cycle rather than retry
	// within this call.
	Acquire(ctx context.Context, target string, lease time.Duration) (*command.Command, bool, error)

	// Extend atomically refreshes RunExpiresAt = now + lease, but only
	// if the command is still running and its current lease has not
	// expired. It reports false if the lease has already been lost.
	Extend(ctx context.Context, id uuid.UUID, lease time.Duration) (bool, error)
}
