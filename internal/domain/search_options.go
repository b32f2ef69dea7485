package domain

import "time"

// SearchOptions represents search criteria for countdown history.
// This is a domain model that mirrors the database search options
// but belongs to the domain layer for proper separation of concerns.
type SearchOptions struct {
	StartedAfter  *time.Time
	StartedBefore *time.Time
	CompletedOnly bool
}
