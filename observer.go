package cortex

import (
	"context"

	"github.com/google/uuid"

	"github.com/fenwick/cortex/command"
)

// Observer provides read-only access to commands. It does not
// participate in lease or terminal-transition logic and is intended
// for diagnostics and administrative use.
type Observer interface {
	// Get returns the command identified by id, or (nil, nil) if no
	// such command exists.
	Get(ctx context.Context, id uuid.UUID) (*command.Command, error)

	// List returns up to limit commands matching status. The zero value
	// command.Unknown matches any status. limit <= 0 means no limit.
	List(ctx context.Context, status command.Status, limit int) ([]*command.Command, error)
}
