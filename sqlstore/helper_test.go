package sqlstore_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/juju/clock"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"

	"github.com/fenwick/cortex"
	"github.com/fenwick/cortex/sqlstore"
)

func newTestStore(t *testing.T, cfg *cortex.Config) *sqlstore.Store {
	t.Helper()
	return newTestStoreWithClock(t, cfg, clock.WallClock)
}

func newTestStoreWithClock(t *testing.T, cfg *cortex.Config, clk clock.Clock) *sqlstore.Store {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", "file::memory:?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1) // important for sqlite
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	store := sqlstore.NewStore(db, cfg, clk)
	if err := store.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	return store
}
