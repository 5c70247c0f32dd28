// Package cortex provides a durable, database-backed background-command
// orchestrator with crash-safe at-least-once execution.
//
// # Overview
//
// Application code enqueues typed command records into a shared
// relational store via Enqueuer. One or more Worker processes pull
// those records, invoke a registry-resolved registry.Handler, and
// persist the outcome through Leaser and Terminator. cortex provides
// per-command timeouts, bounded retries, targeted routing to a specific
// worker instance, scheduled (delayed) execution, and conditional
// follow-up commands (chains) that together compose small workflows.
//
// # Delivery Semantics
//
// cortex provides at-least-once processing guarantees. A command may be
// executed more than once if a worker crashes before completing it, the
// lease expires, or a handler ignores its cancellation signal past the
// lease boundary. Handlers must therefore be idempotent.
//
// # Lease Model
//
// When a command is acquired by Leaser.Acquire, it transitions from
// pending to running and receives a visibility timeout (RunExpiresAt).
// While the lease is valid, the command is not eligible for lease by
// another worker. If the lease expires before a terminal transition, the
// command becomes eligible again — this is the primary crash-recovery
// mechanism (spec §5, §8 scenario S8).
//
// The Worker automatically extends the lease on a timer while a handler
// runs (Executor's heartbeat), at half the lease duration.
//
// # State Machine
//
// Commands follow this lifecycle (command.Status is a derived view, not
// a stored column):
//
//	Pending -> Running
//	Running -> Completed
//	Running -> Pending    (retry remaining, immediate re-eligibility)
//	Running -> Canceled
//	Running -> Failed
//
// Terminal states (Completed, Canceled, Failed) are never re-leased or
// mutated again except by Cleaner.
//
// # Retry Policy
//
// Unlike a typical work queue, cortex does not back off between
// per-command retries: spec's lifecycle table clears RunExpiresAt and
// decrements RetriesLeft on retry without touching ScheduledAt, so a
// retried command is immediately eligible again. Exponential backoff is
// instead applied to the Worker's own polling cadence after consecutive
// transient storage errors (see Config.PollBackoff) — the place spec §4.1
// actually calls for retry behavior ("the caller retries on the next
// poll cycle").
//
// RetriesLeft reaching -1 is what makes a command terminal-failed;
// registry.ErrAbandon lets a handler force that state immediately,
// skipping remaining attempts.
//
// # Chaining
//
// A registry.Definition pairs a Handler with a registry.Chain: three
// lists of registry.Successor describing commands to enqueue on
// success, failure, or cancellation. The Executor reads these
// collections directly — no dynamic dispatch — and Terminator inserts
// the resulting fresh, independent commands atomically with the
// parent's terminal transition.
//
// # Worker
//
// Worker coordinates acquiring, dispatching, heartbeating, and
// terminating commands. It:
//
//   - periodically polls storage for eligible commands via Leaser
//   - dispatches them to a bounded internal worker pool
//     (Config.MaxInFlight)
//   - extends each command's lease while its handler executes
//   - classifies the outcome and writes the terminal transition
//   - supports graceful shutdown: in-flight handlers are given a
//     detached context to attempt their terminal write even as the
//     worker's own shutdown context cancels
//
// Worker does not guarantee exactly-once delivery.
//
// # Concurrency Model
//
// Only the Store is shared between workers and processes. Within a
// single worker process, cortex uses a bounded channel plus a
// fixed-size goroutine pool to smooth load between acquiring commands
// and running handlers. The only shared in-process mutable state is a
// small re-armable wake signal (internal.Wake) that lets a local
// Enqueue call interrupt the Worker's idle sleep.
//
// # Non-goals
//
// Exactly-once execution; ordering guarantees between unrelated
// commands; priority queues; cron-style recurrence; fan-in/join of
// multiple predecessors; cross-database transactions spanning a
// handler's body.
package cortex
