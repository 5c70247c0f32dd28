package cortex

import (
	"context"

	"github.com/google/uuid"

	"github.com/fenwick/cortex/registry"
)

// Terminator applies the terminal transitions of spec §4.4.3/§4.5.2.
// Each method is a single atomic transaction that both updates the
// owning command and inserts any chained successor commands — both
// happen, or neither does.
type Terminator interface {
	// Complete transitions a running, non-completed command to
	// completed, recording output, and — only if the update actually
	// affected the row — inserts chain.OnSuccess as fresh independent
	// commands.
	Complete(ctx context.Context, id uuid.UUID, output *string, chain registry.Chain) error

	// Cancel transitions a running, non-canceled command to canceled
	// and, only if the update affected the row, inserts
	// chain.OnCancellation.
	Cancel(ctx context.Context, id uuid.UUID, chain registry.Chain) error

	// Fail performs the two-stage transition of spec §4.5.2: first it
	// decrements RetriesLeft (or, if immediate is true, forces it
	// straight to -1 — the ErrAbandon path) and clears the running
	// state; then, only if RetriesLeft has reached -1, it marks the
	// command failed and inserts chain.OnFailure. Both stages commit
	// together or not at all.
	Fail(ctx context.Context, id uuid.UUID, chain registry.Chain, immediate bool) error
}
