package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aleksandrpnshkn/gnome-timer/internal/errors"
	"github.com/aleksandrpnshkn/gnome-timer/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SearchOptions contains all possible search parameters
type SearchOptions struct {
	StartedAfter  *time.Time
	StartedBefore *time.Time
	CompletedOnly bool
}

// Repository defines the interface for countdown history storage. Records are
// append-only: a countdown is written once when it finishes and the only
// mutation is clearing the whole history.
type Repository interface {
	CreateCountdown(ctx context.Context, countdown *Countdown) error
	ListCountdowns(ctx context.Context) ([]*Countdown, error)
	SearchCountdowns(ctx context.Context, opts SearchOptions) ([]*Countdown, error)
	DeleteAllCountdowns(ctx context.Context) (int64, error)
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.Apply(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("apply schema", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateCountdown inserts a new countdown record
func (r *SQLiteRepository) CreateCountdown(ctx context.Context, countdown *Countdown) error {
	query := `
	INSERT INTO countdowns (configured_seconds, started_at, finished_at, completed)
	VALUES (?, ?, ?, ?)`

	id, err := insertCountdown(ctx, r.db, query,
		countdown.ConfiguredSeconds,
		storeTime(countdown.StartedAt),
		storeNullableTime(countdown.FinishedAt),
		countdown.Completed,
	)
	if err != nil {
		return err
	}

	countdown.ID = id
	return nil
}

// ListCountdowns retrieves all countdown records, most recent first
func (r *SQLiteRepository) ListCountdowns(ctx context.Context) ([]*Countdown, error) {
	query := `
	SELECT id, configured_seconds, started_at, finished_at, completed
	FROM countdowns
	ORDER BY started_at DESC`

	return queryCountdowns(ctx, r.db, query)
}

// SearchCountdowns retrieves countdown records matching the given options
func (r *SQLiteRepository) SearchCountdowns(ctx context.Context, opts SearchOptions) ([]*Countdown, error) {
	query := `
	SELECT id, configured_seconds, started_at, finished_at, completed
	FROM countdowns`

	var conditions []string
	var args []interface{}

	if opts.StartedAfter != nil {
		conditions = append(conditions, "started_at >= ?")
		args = append(args, storeTime(*opts.StartedAfter))
	}
	if opts.StartedBefore != nil {
		conditions = append(conditions, "started_at <= ?")
		args = append(args, storeTime(*opts.StartedBefore))
	}
	if opts.CompletedOnly {
		conditions = append(conditions, "completed = 1")
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY started_at DESC"

	return queryCountdowns(ctx, r.db, query, args...)
}

// DeleteAllCountdowns deletes every countdown record and reports how many were removed
func (r *SQLiteRepository) DeleteAllCountdowns(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM countdowns`)
	if err != nil {
		return 0, databaseError("delete countdowns", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, databaseError("get rows affected", err)
	}
	return rows, nil
}
