package validation

import (
	"time"

	"github.com/aleksandrpnshkn/gnome-timer/internal/domain"
)

// CountdownValidator provides validation for countdown-related operations
type CountdownValidator struct {
	validator *Validator
}

// NewCountdownValidator creates a new countdown validator
func NewCountdownValidator() *CountdownValidator {
	return &CountdownValidator{
		validator: NewValidator(),
	}
}

// NewCountdownValidatorWithMaxCountdown creates a countdown validator with a configured limit
func NewCountdownValidatorWithMaxCountdown(max time.Duration) *CountdownValidator {
	return &CountdownValidator{
		validator: NewValidatorWithMaxCountdown(max),
	}
}

// ValidateDurationForStart validates a duration before a countdown is started
func (cv *CountdownValidator) ValidateDurationForStart(d domain.Duration) error {
	validationError := NewValidationError()

	if d.IsZero() {
		validationError.AddRequiredError("duration")
	} else if !d.IsValid() {
		validationError.AddInvalidValueError("duration", d, "minutes and seconds must be between 0 and 59")
	} else if !cv.validator.IsValidCountdownDuration(d.Std()) {
		validationError.AddInvalidRangeError("duration", d, "must be positive and within the configured limit")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateSearchOptions validates search options for countdown history queries
func (cv *CountdownValidator) ValidateSearchOptions(opts domain.SearchOptions) error {
	validationError := NewValidationError()

	if opts.StartedAfter != nil && !cv.validator.IsReasonableDate(*opts.StartedAfter) {
		validationError.AddInvalidValueError("started_after", *opts.StartedAfter, "must be within reasonable date range")
	}

	if opts.StartedBefore != nil && !cv.validator.IsReasonableDate(*opts.StartedBefore) {
		validationError.AddInvalidValueError("started_before", *opts.StartedBefore, "must be within reasonable date range")
	}

	if !cv.validator.IsValidDateRange(opts.StartedAfter, opts.StartedBefore) {
		validationError.AddInvalidRangeError("date_range", opts, "started_after must not be later than started_before")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
