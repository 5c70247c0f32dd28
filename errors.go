package cortex

import "errors"

var (
	// ErrCommandLost indicates that the referenced command no longer
	// exists in storage, or cannot be found in the state the caller
	// expected. This can happen if the command was concurrently removed
	// by a Cleaner.
	ErrCommandLost = errors.New("cortex: command lost")

	// ErrLeaseLost is returned by Terminator.Fail when the command is no
	// longer running and non-terminal — for example, it was already
	// terminated or already returned to pending. Fail's guard checks
	// only that the row is running, not which worker holds it.
	// Leaser.Extend reports a lost lease as false rather than as this
	// error.
	ErrLeaseLost = errors.New("cortex: lease lost")

	// ErrCompleteFailed is returned by Terminator.Complete and
	// Terminator.Cancel when the command is not in the running,
	// non-terminal state the caller expected — for example, it was
	// already terminal or already returned to pending.
	ErrCompleteFailed = errors.New("cortex: complete failed")

	// ErrBadStatus indicates a non-terminal command.Status was supplied
	// to Cleaner.Clean. Only terminal statuses (Completed, Canceled,
	// Failed) or the zero value (meaning "any terminal status") are
	// accepted.
	ErrBadStatus = errors.New("cortex: bad status for clean")

	// ErrDoubleStarted is returned when Start is called on a Worker or
	// Host that has already been started.
	ErrDoubleStarted = errors.New("cortex: double start")

	// ErrDoubleStopped is returned when Stop is called on a Worker or
	// Host that is not currently running.
	ErrDoubleStopped = errors.New("cortex: double stop")

	// ErrStopTimeout is returned when a Worker or Host fails to shut
	// down within the provided timeout. Background goroutines may still
	// be terminating in this case.
	ErrStopTimeout = errors.New("cortex: stop timeout")
)
