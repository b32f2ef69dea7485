package sqlite

import (
	"database/sql"
)

// rowScanner abstracts the Scan call shared by sql.Row and sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// countdownRows abstracts the cursor behavior of sql.Rows
type countdownRows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanCountdown scans a single countdown record from a database row
func scanCountdown(scanner rowScanner) (*Countdown, error) {
	countdown := &Countdown{}
	var finishedAt sql.NullTime

	err := scanner.Scan(
		&countdown.ID,
		&countdown.ConfiguredSeconds,
		&countdown.StartedAt,
		&finishedAt,
		&countdown.Completed,
	)
	if err != nil {
		return nil, err
	}

	if finishedAt.Valid {
		countdown.FinishedAt = &finishedAt.Time
	}

	return countdown, nil
}

// scanCountdowns scans every countdown record from a query cursor
func scanCountdowns(rows countdownRows) ([]*Countdown, error) {
	var countdowns []*Countdown
	for rows.Next() {
		countdown, err := scanCountdown(rows)
		if err != nil {
			return nil, err
		}
		countdowns = append(countdowns, countdown)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return countdowns, nil
}
