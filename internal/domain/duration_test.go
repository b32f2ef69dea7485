package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationFromStd(t *testing.T) {
	tests := []struct {
		name     string
		std      time.Duration
		expected Duration
	}{
		{
			name:     "zero duration",
			std:      0,
			expected: Duration{},
		},
		{
			name:     "seconds only",
			std:      42 * time.Second,
			expected: Duration{Seconds: 42},
		},
		{
			name:     "full components",
			std:      2*time.Hour + 30*time.Minute + 15*time.Second,
			expected: Duration{Hours: 2, Minutes: 30, Seconds: 15},
		},
		{
			name:     "truncates sub-second remainder",
			std:      4*time.Second + 999*time.Millisecond,
			expected: Duration{Seconds: 4},
		},
		{
			name:     "hours are unbounded",
			std:      100 * time.Hour,
			expected: Duration{Hours: 100},
		},
		{
			name:     "negative normalized to zero",
			std:      -3 * time.Second,
			expected: Duration{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DurationFromStd(tt.std)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Duration
		expectErr bool
	}{
		{
			name:     "bare seconds",
			input:    "90",
			expected: Duration{Minutes: 1, Seconds: 30},
		},
		{
			name:     "minutes and seconds",
			input:    "25:00",
			expected: Duration{Minutes: 25},
		},
		{
			name:     "hours minutes seconds",
			input:    "1:30:00",
			expected: Duration{Hours: 1, Minutes: 30},
		},
		{
			name:     "go duration string",
			input:    "1h30m",
			expected: Duration{Hours: 1, Minutes: 30},
		},
		{
			name:     "zero is allowed",
			input:    "0",
			expected: Duration{},
		},
		{
			name:      "minutes above modulus rejected",
			input:     "1:75:00",
			expectErr: true,
		},
		{
			name:      "negative go duration rejected",
			input:     "-5m",
			expectErr: true,
		},
		{
			name:      "garbage rejected",
			input:     "soon",
			expectErr: true,
		},
		{
			name:      "empty rejected",
			input:     "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDuration(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDuration_Std(t *testing.T) {
	d := Duration{Hours: 1, Minutes: 2, Seconds: 3}
	assert.Equal(t, time.Hour+2*time.Minute+3*time.Second, d.Std())
}

func TestDuration_StdRoundTrip(t *testing.T) {
	original := Duration{Hours: 3, Minutes: 59, Seconds: 59}
	assert.Equal(t, original, DurationFromStd(original.Std()))
}

func TestDuration_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		duration Duration
		expected bool
	}{
		{"zero duration", Duration{}, true},
		{"upper bounds", Duration{Hours: 99, Minutes: 59, Seconds: 59}, true},
		{"minutes above modulus", Duration{Minutes: 60}, false},
		{"seconds above modulus", Duration{Seconds: 60}, false},
		{"negative hours", Duration{Hours: -1}, false},
		{"negative seconds", Duration{Seconds: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.duration.IsValid())
		})
	}
}

func TestDuration_String(t *testing.T) {
	tests := []struct {
		name     string
		duration Duration
		expected string
	}{
		{"zero pads every component", Duration{Hours: 1, Minutes: 2, Seconds: 3}, "01:02:03"},
		{"zero duration", Duration{}, "00:00:00"},
		{"hours wider than two digits", Duration{Hours: 100}, "100:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.duration.String())
		})
	}
}
