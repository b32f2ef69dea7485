// Package migrations evolves the countdown history schema. Each step is an
// embedded SQL file applied in version order inside a transaction. The version
// already reached is tracked in the database's user_version pragma, so
// reopening an existing history only runs the steps added since.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/aleksandrpnshkn/gnome-timer/internal/logging"
)

//go:embed *.sql
var schemaFS embed.FS

type step struct {
	version int
	name    string
	sql     string
}

// Apply brings the countdown history schema up to date
func Apply(db *sql.DB) error {
	current, err := schemaVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	steps, err := loadSteps()
	if err != nil {
		return fmt.Errorf("failed to load schema steps: %w", err)
	}

	for _, s := range steps {
		if s.version <= current {
			continue
		}
		logging.Debugf("applying countdown schema step %d (%s)\n", s.version, s.name)
		if err := applyStep(db, s); err != nil {
			return fmt.Errorf("failed to apply schema step %d: %w", s.version, err)
		}
	}

	return nil
}

func schemaVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow("PRAGMA user_version").Scan(&version)
	return version, err
}

func loadSteps() ([]step, error) {
	entries, err := schemaFS.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var steps []step
	for _, entry := range entries {
		version := extractVersion(entry.Name())
		if version == 0 {
			continue
		}

		raw, err := schemaFS.ReadFile(entry.Name())
		if err != nil {
			return nil, err
		}

		steps = append(steps, step{
			version: version,
			name:    stepName(entry.Name()),
			sql:     string(raw),
		})
	}

	sort.Slice(steps, func(i, j int) bool {
		return steps[i].version < steps[j].version
	})

	return steps, nil
}

func applyStep(db *sql.DB, s step) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(s.sql); err != nil {
		tx.Rollback()
		return err
	}

	// PRAGMA does not take placeholders
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", s.version)); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func extractVersion(filename string) int {
	var version int
	fmt.Sscanf(filename, "%d_", &version)
	return version
}

func stepName(filename string) string {
	name := strings.TrimSuffix(filename, ".sql")
	if i := strings.Index(name, "_"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
