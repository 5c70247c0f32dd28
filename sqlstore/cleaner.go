package sqlstore

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/fenwick/cortex"
	"github.com/fenwick/cortex/command"
)

// Clean implements cortex.Cleaner. Only terminal statuses
// (command.Completed, command.Canceled, command.Failed) and
// command.Unknown ("any terminal status") are accepted; any other
// status returns cortex.ErrBadStatus.
//
// The bit-exact schema (spec §6) has no single updated-at column, so
// the time filter compares against whichever terminal timestamp column
// corresponds to status: completed_at, canceled_at, or failed_at. For
// command.Unknown, a row qualifies if any one of the three is at or
// before *before.
func (s *Store) Clean(ctx context.Context, status command.Status, before *time.Time) (int64, error) {
	query := s.db.NewDelete().
		Model((*commandModel)(nil)).
		ModelTableExpr("?", bun.Ident(s.table))

	switch status {
	case command.Unknown:
		query = query.Where("is_completed = ? OR is_canceled = ? OR is_failed = ?", true, true, true)
		if before != nil {
			query = query.Where(
				"(is_completed = ? AND completed_at <= ?) OR (is_canceled = ? AND canceled_at <= ?) OR (is_failed = ? AND failed_at <= ?)",
				true, *before, true, *before, true, *before,
			)
		}
	case command.Completed:
		query = query.Where("is_completed = ?", true)
		if before != nil {
			query = query.Where("completed_at <= ?", *before)
		}
	case command.Canceled:
		query = query.Where("is_canceled = ?", true)
		if before != nil {
			query = query.Where("canceled_at <= ?", *before)
		}
	case command.Failed:
		query = query.Where("is_failed = ?", true)
		if before != nil {
			query = query.Where("failed_at <= ?", *before)
		}
	default:
		return 0, cortex.ErrBadStatus
	}

	res, err := query.Exec(ctx)
	if err != nil {
		return 0, err
	}
	return deletedCount(res), nil
}
