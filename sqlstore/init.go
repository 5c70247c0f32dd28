package sqlstore

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
)

func (s *Store) createTable(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().
		Model((*commandModel)(nil)).
		ModelTableExpr("?", bun.Ident(s.table)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (s *Store) createTargetIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*commandModel)(nil)).
		ModelTableExpr("?", bun.Ident(s.table)).
		Index("idx_" + s.table + "_target").
		Column("target").
		IfNotExists().
		Exec(ctx)
	return err
}

func (s *Store) createRunningIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*commandModel)(nil)).
		ModelTableExpr("?", bun.Ident(s.table)).
		Index("idx_" + s.table + "_running").
		Column("is_running").
		IfNotExists().
		Exec(ctx)
	return err
}

func (s *Store) createCompletedIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*commandModel)(nil)).
		ModelTableExpr("?", bun.Ident(s.table)).
		Index("idx_" + s.table + "_completed").
		Column("is_completed").
		IfNotExists().
		Exec(ctx)
	return err
}

func (s *Store) createFailedIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*commandModel)(nil)).
		ModelTableExpr("?", bun.Ident(s.table)).
		Index("idx_" + s.table + "_failed").
		Column("is_failed").
		IfNotExists().
		Exec(ctx)
	return err
}

func (s *Store) initSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := s.createTable(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if err := s.createTargetIndex(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if err := s.createRunningIndex(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if err := s.createCompletedIndex(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if err := s.createFailedIndex(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	return tx.Commit()
}

// Init initializes the database schema required by the Store.
//
// It creates the "<prefix>commands" table and its indexes (target,
// is_running, is_completed, is_failed) inside a single transaction. If
// any step fails, the transaction is rolled back.
//
// Init is idempotent and may be safely called multiple times. It does
// not drop or modify existing tables beyond creating missing objects.
func (s *Store) Init(ctx context.Context) error {
	return s.initSchema(ctx)
}

// MustInit behaves like Init but panics if initialization fails.
//
// This helper is intended for application bootstrap code where failure
// to initialize schema is considered unrecoverable.
func (s *Store) MustInit(ctx context.Context) {
	if err := s.initSchema(ctx); err != nil {
		panic(err)
	}
}
