package command

import (
	"time"

	"github.com/fenwick/cortex/envelope"
)

// Command represents a durable unit of work managed by cortex storage.
//
// It embeds envelope.Envelope and augments it with scheduling and
// delivery state: when it may run, how long a single attempt may take,
// how many attempts remain, and whether it is currently leased or has
// reached a terminal outcome.
//
// ScheduledAt is the earliest instant at which the command is eligible
// for lease; there is no separate creation timestamp — ScheduledAt
// together with the terminal *_at fields is sufficient to reconstruct a
// command's timeline, and spec's external table definition (§6) does
// not carry one.
//
// At most one of IsCompleted, IsCanceled, IsFailed is ever true. Once
// any of them is true, the command is terminal: it is never re-leased,
// re-run, or mutated again except by Cleaner.
//
// Command values returned by Observer or Leaser are snapshots. Mutating
// fields directly does not change the underlying storage state;
// transitions happen only through Leaser/Terminator calls.
type Command struct {
	envelope.Envelope

	Output *string

	ScheduledAt time.Time
	Timeout     time.Duration
	RetriesLeft int32

	IsRunning    bool
	RunningAt    *time.Time
	RunExpiresAt *time.Time

	IsCompleted bool
	CompletedAt *time.Time

	IsCanceled bool
	CanceledAt *time.Time

	IsFailed bool
	FailedAt *time.Time
}

// Terminal reports whether the command has reached any terminal state.
func (c *Command) Terminal() bool {
	return c.IsCompleted || c.IsCanceled || c.IsFailed
}

// Leased reports whether the command is currently held under a live
// lease as of now — i.e. IsRunning is set and RunExpiresAt has not yet
// passed.
func (c *Command) Leased(now time.Time) bool {
	return c.IsRunning && c.RunExpiresAt != nil && c.RunExpiresAt.After(now)
}

// Exhausted reports whether the command has no attempts remaining.
// A command reaches this state when RetriesLeft has been decremented
// to -1.
func (c *Command) Exhausted() bool {
	return c.RetriesLeft < 0
}
