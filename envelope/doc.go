// Package envelope defines the caller-supplied identity of a command
// routed through cortex.
//
// An Envelope is intentionally minimal: an id, a name used to look up a
// handler, a target identifying which worker instance may execute it,
// and an opaque input blob. It carries no delivery state, scheduling
// information, or retry counters — those live on command.Command, which
// embeds Envelope.
//
// Envelope values passed to Enqueue should be treated as immutable once
// submitted.
package envelope
