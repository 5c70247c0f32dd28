package sqlstore

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// duration adapts time.Duration to database/sql, storing it as an
// integer count of nanoseconds in a bigint column. Both the SQLite and
// Postgres dialects bun supports here use the same bigint
// representation uniformly; a dialect-specific mapping onto a native
// Postgres "interval" column is possible (bun supports custom
// ColumnExpression types) but was not worth the added complexity for a
// value the core never does arithmetic on outside Go.
type duration time.Duration

func (d duration) Value() (driver.Value, error) {
	return int64(d), nil
}

func (d *duration) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*d = duration(v)
	case int32:
		*d = duration(v)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("sqlstore: cannot scan %T into duration", src)
	}
	return nil
}
