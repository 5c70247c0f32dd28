package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fenwick/cortex"
	"github.com/fenwick/cortex/registry"
)

// Complete implements cortex.Terminator. It transitions a running,
// non-terminal command to completed and, only if that update actually
// affected the row, inserts chain.OnSuccess as fresh independent
// commands in the same transaction.
func (s *Store) Complete(ctx context.Context, id uuid.UUID, output *string, chain registry.Chain) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := s.clk.Now()
		res, err := tx.NewUpdate().
			Model((*commandModel)(nil)).
			ModelTableExpr("?", bun.Ident(s.table)).
			Set("is_running = ?", false).
			Set("is_completed = ?", true).
			Set("completed_at = ?", now).
			Set("output = ?", output).
			Where("id = ?", id).
			Where("is_running = ?", true).
			Where("is_completed = ?", false).
			Where("is_canceled = ?", false).
			Where("is_failed = ?", false).
			Exec(ctx)
		if err != nil {
			return err
		}
		if !guardMatched(res) {
			return cortex.ErrCompleteFailed
		}
		return s.insertSuccessors(ctx, tx, chain.OnSuccess, output)
	})
}

// Cancel implements cortex.Terminator. It transitions a running,
// non-terminal command to canceled and, only if that update actually
// affected the row, inserts chain.OnCancellation.
func (s *Store) Cancel(ctx context.Context, id uuid.UUID, chain registry.Chain) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := s.clk.Now()
		res, err := tx.NewUpdate().
			Model((*commandModel)(nil)).
			ModelTableExpr("?", bun.Ident(s.table)).
			Set("is_running = ?", false).
			Set("is_canceled = ?", true).
			Set("canceled_at = ?", now).
			Where("id = ?", id).
			Where("is_running = ?", true).
			Where("is_completed = ?", false).
			Where("is_canceled = ?", false).
			Where("is_failed = ?", false).
			Exec(ctx)
		if err != nil {
			return err
		}
		if !guardMatched(res) {
			return cortex.ErrCompleteFailed
		}
		return s.insertSuccessors(ctx, tx, chain.OnCancellation, nil)
	})
}

// Fail implements cortex.Terminator's two-stage transition (spec
// §4.5.2). The first stage decrements retries_left and clears
// is_running and run_expires_at — or, if immediate is true (the registry.ErrAbandon
// path), forces retries_left straight to -1. The second stage, gated
// on retries_left having reached -1, marks the command failed and
// inserts chain.OnFailure. Both stages commit together or not at all.
func (s *Store) Fail(ctx context.Context, id uuid.UUID, chain registry.Chain, immediate bool) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := s.clk.Now()
		q := tx.NewUpdate().
			Model((*commandModel)(nil)).
			ModelTableExpr("?", bun.Ident(s.table)).
			Set("is_running = ?", false).
			Set("run_expires_at = NULL")
		if immediate {
			q = q.Set("retries_left = ?", -1)
		} else {
			q = q.Set("retries_left = retries_left - 1")
		}
		res, err := q.
			Where("id = ?", id).
			Where("is_running = ?", true).
			Where("is_completed = ?", false).
			Where("is_canceled = ?", false).
			Where("is_failed = ?", false).
			Exec(ctx)
		if err != nil {
			return err
		}
		if !guardMatched(res) {
			return cortex.ErrLeaseLost
		}

		var row commandModel
		err = tx.NewSelect().
			Model(&row).
			ModelTableExpr("?", bun.Ident(s.table)).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			return err
		}
		if row.RetriesLeft >= 0 {
			return nil
		}

		res, err = tx.NewUpdate().
			Model((*commandModel)(nil)).
			ModelTableExpr("?", bun.Ident(s.table)).
			Set("is_failed = ?", true).
			Set("failed_at = ?", now).
			Where("id = ?", id).
			Where("is_failed = ?", false).
			Exec(ctx)
		if err != nil {
			return err
		}
		if !guardMatched(res) {
			return nil
		}
		return s.insertSuccessors(ctx, tx, chain.OnFailure, nil)
	})
}

// insertSuccessors enqueues each Successor in list as a fresh, wholly
// independent command row, deriving its input from parentOutput via
// Successor.Input when set.
func (s *Store) insertSuccessors(ctx context.Context, tx bun.Tx, list []registry.Successor, parentOutput *string) error {
	if len(list) == 0 {
		return nil
	}
	now := s.clk.Now()
	models := make([]*commandModel, 0, len(list))
	for _, succ := range list {
		var input *string
		if succ.Input != nil {
			input = succ.Input(parentOutput)
		}
		models = append(models, fromEnqueueSpec(
			uuid.New(),
			succ.Name,
			succ.Target,
			input,
			now.Add(succ.Delay),
			succ.Timeout,
			succ.Retries,
		))
	}
	_, err := tx.NewInsert().
		Model(&models).
		ModelTableExpr("?", bun.Ident(s.table)).
		Exec(ctx)
	return err
}
