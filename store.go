package cortex

// Store is the single contract a storage backend implements: durable,
// key-addressable persistence of commands with conditional updates
// sufficient for the lease protocol, plus read and retention access.
//
// The only isolation requirement (spec §4.1) is that a conditional
// update intending to mutate a single row does so atomically. Bulk
// scans (List, Clean) need not be serializable.
type Store interface {
	Enqueuer
	Leaser
	Terminator
	Observer
	Cleaner
}
