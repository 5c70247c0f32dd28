package cortex

import (
	"context"
	"time"

	"github.com/fenwick/cortex/command"
)

// Cleaner permanently removes terminal commands from storage. It is
// intended for retention management and must reject attempts to delete
// non-terminal commands.
type Cleaner interface {
	// Clean deletes commands matching status (command.Unknown means "any
	// terminal status") whose terminal timestamp is at or before
	// *before, if before is non-nil. The terminal timestamp column
	// compared depends on status: CompletedAt for Completed, CanceledAt
	// for Canceled, FailedAt for Failed, or whichever of the three is
	// set when status is Unknown. It returns the number of deleted rows.
	//
	// Clean returns ErrBadStatus if status refers to a non-terminal
	// state.
	Clean(ctx context.Context, status command.Status, before *time.Time) (int64, error)
}
