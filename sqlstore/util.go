package sqlstore

import "database/sql"

// guardMatched reports whether a guarded conditional UPDATE — one
// whose WHERE clause selects the single valid prior state for a
// command's transition — actually matched a row. A driver that can't
// report RowsAffected fails open (true) so a transition is never
// rejected purely because of a RowsAffected implementation gap.
func guardMatched(res sql.Result) bool {
	rows, err := res.RowsAffected()
	if err != nil {
		return true
	}
	return rows != 0
}

// deletedCount returns how many rows a retention sweep's DELETE
// removed, or -1 if the driver can't report it.
func deletedCount(res sql.Result) int64 {
	ret, err := res.RowsAffected()
	if err != nil {
		return -1
	}
	return ret
}
