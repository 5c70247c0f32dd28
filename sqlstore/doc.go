// Package sqlstore provides a bun-based SQL implementation of
// cortex.Store, against the bit-exact "<prefix>commands" table spec §6
// defines.
//
// # Overview
//
// The SQL backend provides:
//
//   - durable persistence of commands
//   - atomic lease acquire/extend via UPDATE ... WHERE id IN (subquery)
//   - terminal transitions (Complete, Cancel, and the two-stage Fail)
//     that also insert chained successor commands in the same
//     transaction
//   - status- and time-filtered retention cleanup
//
// It is compatible with SQLite, PostgreSQL and other bun-supported
// dialects, subject to their transactional guarantees.
//
// # Concurrency Model
//
// Acquire is implemented using a single atomic UPDATE statement with a
// subquery, so selection and state transition happen as one operation
// and concurrent workers cannot both win the same row.
//
// Correct behavior under concurrency depends on:
//
//   - proper indexing (see init.go)
//   - database isolation guarantees
//   - write contention characteristics of the chosen backend
//
// SQLite users are strongly encouraged to enable WAL mode and configure
// an appropriate busy_timeout; the tests in this package set both
// through _pragma parameters in their in-memory DSN.
//
// # Schema
//
// The backend expects a "<prefix>commands" table corresponding to
// commandModel. Init (or MustInit) creates:
//
//   - the commands table (if not exists)
//   - index on target
//   - index on is_running
//   - index on is_completed
//   - index on is_failed
//
// These indexes back Acquire's subquery and Cleaner's per-status scans.
//
// Init is idempotent and runs inside a transaction. It does not perform
// destructive migrations; schema evolution must be handled externally.
//
// # Database Lifecycle
//
// This package does not manage connection pooling, migrations, or
// database lifecycle. The caller is responsible for creating and
// configuring *bun.DB and for running Init before use.
package sqlstore
