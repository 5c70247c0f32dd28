// Package command defines the stateful representation of a unit of work
// managed by cortex.
//
// A Command extends envelope.Envelope with scheduling and delivery
// metadata: attempt timeout, remaining retries, lease state, and the
// three mutually exclusive terminal flags (completed, canceled, failed).
//
// Unlike envelope.Envelope, Command contains state-machine fields
// maintained by storage and the lease manager. Command values are
// typically returned by Leaser.Acquire and Observer.Get/List, and
// passed back to a Terminator to drive transitions.
//
// Command is not intended to be constructed manually by application
// code outside of tests; its fields reflect authoritative storage
// state.
package command
