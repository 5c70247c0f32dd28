package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fenwick/cortex/command"
)

// Acquire implements cortex.Leaser using a single atomic UPDATE ...
// WHERE id IN (subquery) statement, so selection and state transition
// happen together and no two callers can win the same row.
//
// A command is eligible if target matches, scheduled_at <= now, no
// terminal flag is set, and either is_running is false or its
// run_expires_at has already passed (stale-lease recovery, spec §5).
func (s *Store) Acquire(ctx context.Context, target string, lease time.Duration) (*command.Command, bool, error) {
	now := s.clk.Now()
	expires := now.Add(lease)

	subQuery := s.db.NewSelect().
		Model((*commandModel)(nil)).
		ModelTableExpr("?", bun.Ident(s.table)).
		Column("id").
		Where("target = ?", target).
		Where("scheduled_at <= ?", now).
		Where("is_completed = ?", false).
		Where("is_canceled = ?", false).
		Where("is_failed = ?", false).
		WhereGroup("AND", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.
				Where("is_running = ?", false).
				WhereOr("run_expires_at < ?", now)
		}).
		Order("scheduled_at ASC").
		Limit(1)

	var rows []commandModel
	err := s.db.NewUpdate().
		Model((*commandModel)(nil)).
		ModelTableExpr("?", bun.Ident(s.table)).
		Set("is_running = ?", true).
		Set("running_at = ?", now).
		Set("run_expires_at = ?", expires).
		Where("id IN (?)", subQuery).
		Returning("*").
		Scan(ctx, &rows)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0].toCommand(), true, nil
}

// Extend implements cortex.Leaser. It refreshes run_expires_at only
// while is_running is still true and the current lease has not yet
// expired; otherwise it reports false without error.
func (s *Store) Extend(ctx context.Context, id uuid.UUID, lease time.Duration) (bool, error) {
	now := s.clk.Now()
	newExpiry := now.Add(lease)
	res, err := s.db.NewUpdate().
		Model((*commandModel)(nil)).
		ModelTableExpr("?", bun.Ident(s.table)).
		Set("run_expires_at = ?", newExpiry).
		Where("id = ?", id).
		Where("is_running = ?", true).
		Where("run_expires_at >= ?", now).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	return guardMatched(res), nil
}
