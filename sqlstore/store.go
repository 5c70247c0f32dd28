package sqlstore

import (
	"github.com/juju/clock"
	"github.com/uptrace/bun"

	"github.com/fenwick/cortex"
)

// Store implements cortex.Store using a relational database via
// github.com/uptrace/bun.
//
// Store performs atomic state transitions using single-row conditional
// UPDATE statements (or, for Acquire, UPDATE ... WHERE id IN
// (subquery)) to ensure safe concurrent access across multiple
// worker processes.
//
// Every timestamp comparison or stamp Store performs — lease
// eligibility, lease expiry, ScheduledAt, the terminal *_at columns —
// reads the time from clk rather than calling time.Now() directly, so
// a Store shares the same notion of "now" as the Worker/Executor that
// drive it (spec §4.2).
type Store struct {
	db    *bun.DB
	table string
	cfg   *cortex.Config
	clk   clock.Clock
}

// NewStore builds a Store backed by db, using cfg's TablePrefix to name
// the commands table and cfg's remaining defaults to fill absent
// EnqueueSpec fields. cfg may be nil, in which case cortex.DefaultConfig
// applies. clk is the single clock source for every timestamp this
// Store reads or writes; pass clock.WallClock in production and
// testclock.NewClock(...) in tests that need deterministic lease/retry
// boundaries.
//
// The provided *bun.DB must be properly configured and connected.
// Call Init before using the returned Store.
func NewStore(db *bun.DB, cfg *cortex.Config, clk clock.Clock) *Store {
	resolved := cortex.ResolveConfig(cfg)
	return &Store{
		db:    db,
		table: resolved.TablePrefix + "commands",
		cfg:   resolved,
		clk:   clk,
	}
}
