package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// colonFormat matches MM:SS and HH:MM:SS style input.
var colonFormat = regexp.MustCompile(`^(?:(\d+):)?([0-5]?\d):([0-5]?\d)$`)

// bareSeconds matches plain integer input, interpreted as a second count.
var bareSeconds = regexp.MustCompile(`^\d+$`)

// Duration represents a countdown duration split into display components.
// This is a pure domain model without presentation or storage concerns.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// NewDuration creates a Duration from its components.
func NewDuration(hours, minutes, seconds int) Duration {
	return Duration{
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
	}
}

// DurationFromStd converts a time.Duration into display components.
// Each component is derived by truncation, never rounding, so a countdown
// display only changes once a full unit has elapsed. Negative input is
// normalized to zero.
func DurationFromStd(d time.Duration) Duration {
	if d < 0 {
		d = 0
	}
	return Duration{
		Hours:   int(d / time.Hour),
		Minutes: int(d/time.Minute) % 60,
		Seconds: int(d/time.Second) % 60,
	}
}

// ParseDuration parses user input into a Duration. It accepts a bare second
// count ("90"), colon notation ("25:00", "1:30:00") and Go duration strings
// ("25m", "1h30m").
func ParseDuration(input string) (Duration, error) {
	if bareSeconds.MatchString(input) {
		seconds, err := strconv.Atoi(input)
		if err != nil {
			return Duration{}, fmt.Errorf("invalid duration format: %s", input)
		}
		return DurationFromStd(time.Duration(seconds) * time.Second), nil
	}

	if matches := colonFormat.FindStringSubmatch(input); matches != nil {
		hours, _ := strconv.Atoi(matches[1])
		minutes, _ := strconv.Atoi(matches[2])
		seconds, _ := strconv.Atoi(matches[3])
		return Duration{Hours: hours, Minutes: minutes, Seconds: seconds}, nil
	}

	if std, err := time.ParseDuration(input); err == nil {
		if std < 0 {
			return Duration{}, fmt.Errorf("duration cannot be negative: %s", input)
		}
		return DurationFromStd(std), nil
	}

	return Duration{}, fmt.Errorf("invalid duration format: %s", input)
}

// Std converts the Duration back into a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second
}

// IsZero returns true if the Duration has no length.
func (d Duration) IsZero() bool {
	return d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0
}

// IsValid checks that every component is non-negative and that minutes and
// seconds are bound to their modulus.
func (d Duration) IsValid() bool {
	if d.Hours < 0 {
		return false
	}
	if d.Minutes < 0 || d.Minutes > 59 {
		return false
	}
	if d.Seconds < 0 || d.Seconds > 59 {
		return false
	}
	return true
}

// String formats the Duration as a zero-padded HH:MM:SS string.
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}
