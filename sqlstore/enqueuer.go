package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fenwick/cortex"
)

// Enqueue inserts a new command row in the Pending state, as specified
// by cortex.Enqueuer.
//
// Absent optional fields in spec (Target, Timeout, Retries) are filled
// from the Store's Config before insertion. ScheduledAt is set to
// now + spec.Delay. If spec.Id is nil, a fresh uuid is assigned.
//
// Enqueue does not act on spec.Chain: chain rules live on the handler's
// registry.Definition and are read by the Executor at terminal-
// transition time, not persisted per command (see DESIGN.md).
func (s *Store) Enqueue(ctx context.Context, spec cortex.EnqueueSpec) (uuid.UUID, error) {
	resolved := spec.ApplyDefaults(s.cfg)

	id := uuid.New()
	if resolved.Id != nil {
		id = *resolved.Id
	}

	scheduledAt := s.clk.Now().Add(resolved.Delay)
	model := fromEnqueueSpec(id, resolved.Name, *resolved.Target, resolved.Input, scheduledAt, *resolved.Timeout, *resolved.Retries)
	_, err := s.db.NewInsert().
		Model(model).
		ModelTableExpr("?", bun.Ident(s.table)).
		Exec(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
