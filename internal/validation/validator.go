package validation

import (
	"regexp"
	"strconv"
	"time"
)

// DefaultMaxCountdown is the longest countdown accepted without explicit configuration
const DefaultMaxCountdown = 100 * time.Hour

// Validator provides common validation utilities
type Validator struct {
	timeShorthandRegex *regexp.Regexp
	maxCountdown       time.Duration
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		timeShorthandRegex: regexp.MustCompile(`^(\d+)(m|h|d|w|mo|y)$`),
		maxCountdown:       DefaultMaxCountdown,
	}
}

// NewValidatorWithMaxCountdown creates a validator with a configured countdown limit
func NewValidatorWithMaxCountdown(max time.Duration) *Validator {
	v := NewValidator()
	if max > 0 {
		v.maxCountdown = max
	}
	return v
}

// IsValidCountdownDuration checks if a countdown duration is within accepted bounds
func (v *Validator) IsValidCountdownDuration(duration time.Duration) bool {
	return duration > 0 && duration <= v.maxCountdown
}

// IsValidTimeShorthand checks if a time shorthand format is valid
func (v *Validator) IsValidTimeShorthand(shorthand string) bool {
	matches := v.timeShorthandRegex.FindStringSubmatch(shorthand)
	if matches == nil {
		return false
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil || value <= 0 {
		return false
	}

	return true
}

// ParseTimeShorthand converts a shorthand like "2h" or "1w" into a point in the past
// relative to now. Returns false when the shorthand is not valid.
func (v *Validator) ParseTimeShorthand(shorthand string, now time.Time) (time.Time, bool) {
	matches := v.timeShorthandRegex.FindStringSubmatch(shorthand)
	if matches == nil {
		return time.Time{}, false
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil || value <= 0 {
		return time.Time{}, false
	}

	switch matches[2] {
	case "m":
		return now.Add(-time.Duration(value) * time.Minute), true
	case "h":
		return now.Add(-time.Duration(value) * time.Hour), true
	case "d":
		return now.AddDate(0, 0, -value), true
	case "w":
		return now.AddDate(0, 0, -value*7), true
	case "mo":
		return now.AddDate(0, -value, 0), true
	case "y":
		return now.AddDate(-value, 0, 0), true
	}

	return time.Time{}, false
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	// Allow dates from 10 years ago to 1 year in the future
	tenYearsAgo := now.AddDate(-10, 0, 0)
	oneYearFromNow := now.AddDate(1, 0, 0)

	return t.After(tenYearsAgo) && t.Before(oneYearFromNow)
}

// IsValidDateRange checks if a date range is logical
func (v *Validator) IsValidDateRange(startTime, endTime *time.Time) bool {
	if startTime == nil || endTime == nil {
		return true // Open-ended ranges are valid
	}
	return startTime.Before(*endTime) || startTime.Equal(*endTime)
}
