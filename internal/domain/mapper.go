package domain

import (
	"time"

	"github.com/aleksandrpnshkn/gnome-timer/internal/repository/sqlite"
)

// CountdownMapper handles conversion between domain and database Countdown models.
type CountdownMapper struct{}

// NewCountdownMapper creates a new CountdownMapper instance.
func NewCountdownMapper() *CountdownMapper {
	return &CountdownMapper{}
}

// ToDatabase converts a domain Countdown to a database Countdown.
// The configured duration is flattened to a second count for storage.
func (m *CountdownMapper) ToDatabase(domainCountdown Countdown) sqlite.Countdown {
	return sqlite.Countdown{
		ID:                domainCountdown.ID,
		ConfiguredSeconds: int64(domainCountdown.Configured.Std() / time.Second),
		StartedAt:         domainCountdown.StartedAt,
		FinishedAt:        domainCountdown.FinishedAt,
		Completed:         domainCountdown.Completed,
	}
}

// FromDatabase converts a database Countdown to a domain Countdown.
func (m *CountdownMapper) FromDatabase(dbCountdown sqlite.Countdown) Countdown {
	return Countdown{
		ID:         dbCountdown.ID,
		Configured: DurationFromStd(time.Duration(dbCountdown.ConfiguredSeconds) * time.Second),
		StartedAt:  dbCountdown.StartedAt,
		FinishedAt: dbCountdown.FinishedAt,
		Completed:  dbCountdown.Completed,
	}
}

// ToDatabaseSlice converts a slice of domain Countdowns to database Countdowns.
func (m *CountdownMapper) ToDatabaseSlice(domainCountdowns []Countdown) []sqlite.Countdown {
	dbCountdowns := make([]sqlite.Countdown, len(domainCountdowns))
	for i, countdown := range domainCountdowns {
		dbCountdowns[i] = m.ToDatabase(countdown)
	}
	return dbCountdowns
}

// FromDatabaseSlice converts a slice of database Countdowns to domain Countdowns.
func (m *CountdownMapper) FromDatabaseSlice(dbCountdowns []sqlite.Countdown) []Countdown {
	domainCountdowns := make([]Countdown, len(dbCountdowns))
	for i, countdown := range dbCountdowns {
		domainCountdowns[i] = m.FromDatabase(countdown)
	}
	return domainCountdowns
}

// SearchOptionsMapper handles conversion between domain and database SearchOptions.
type SearchOptionsMapper struct{}

// NewSearchOptionsMapper creates a new SearchOptionsMapper instance.
func NewSearchOptionsMapper() *SearchOptionsMapper {
	return &SearchOptionsMapper{}
}

// ToDatabase converts domain SearchOptions to database SearchOptions.
func (m *SearchOptionsMapper) ToDatabase(domainOpts SearchOptions) sqlite.SearchOptions {
	return sqlite.SearchOptions{
		StartedAfter:  domainOpts.StartedAfter,
		StartedBefore: domainOpts.StartedBefore,
		CompletedOnly: domainOpts.CompletedOnly,
	}
}

// FromDatabase converts database SearchOptions to domain SearchOptions.
func (m *SearchOptionsMapper) FromDatabase(dbOpts sqlite.SearchOptions) SearchOptions {
	return SearchOptions{
		StartedAfter:  dbOpts.StartedAfter,
		StartedBefore: dbOpts.StartedBefore,
		CompletedOnly: dbOpts.CompletedOnly,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Countdown     *CountdownMapper
	SearchOptions *SearchOptionsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Countdown:     NewCountdownMapper(),
		SearchOptions: NewSearchOptionsMapper(),
	}
}
