package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fenwick/cortex/command"
)

// Get implements cortex.Observer. If no command with the given id
// exists, Get returns (nil, nil).
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*command.Command, error) {
	var row commandModel
	err := s.db.NewSelect().
		Model(&row).
		ModelTableExpr("?", bun.Ident(s.table)).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row.toCommand(), nil
}

// List implements cortex.Observer. status == command.Unknown applies no
// status filter; limit <= 0 applies no LIMIT clause.
func (s *Store) List(ctx context.Context, status command.Status, limit int) ([]*command.Command, error) {
	var rows []commandModel
	query := s.db.NewSelect().
		Model(&rows).
		ModelTableExpr("?", bun.Ident(s.table))
	switch status {
	case command.Pending:
		query = query.Where("is_running = ?", false).
			Where("is_completed = ?", false).
			Where("is_canceled = ?", false).
			Where("is_failed = ?", false)
	case command.Running:
		query = query.Where("is_running = ?", true)
	case command.Completed:
		query = query.Where("is_completed = ?", true)
	case command.Canceled:
		query = query.Where("is_canceled = ?", true)
	case command.Failed:
		query = query.Where("is_failed = ?", true)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	ret := make([]*command.Command, 0, len(rows))
	for i := range rows {
		ret = append(ret, rows[i].toCommand())
	}
	return ret, nil
}
