package sqlite

import (
	"context"
	"database/sql"

	"github.com/aleksandrpnshkn/gnome-timer/internal/errors"
)

// databaseError wraps a driver failure as a structured app error
func databaseError(operation string, err error) error {
	return errors.NewDatabaseError(operation, err)
}

// insertCountdown runs an INSERT against the countdowns table and returns the
// generated row ID
func insertCountdown(ctx context.Context, db *sql.DB, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, databaseError("insert countdown", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, databaseError("get countdown ID", err)
	}

	return id, nil
}

// queryCountdowns runs a SELECT over the countdowns table and scans every row
func queryCountdowns(ctx context.Context, db *sql.DB, query string, args ...interface{}) ([]*Countdown, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, databaseError("query countdowns", err)
	}
	defer rows.Close()

	countdowns, err := scanCountdowns(rows)
	if err != nil {
		return nil, databaseError("scan countdowns", err)
	}

	return countdowns, nil
}
