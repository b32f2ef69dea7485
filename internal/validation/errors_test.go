package validation

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "duration", Message: "is required"}}, "validation error for field 'duration': is required"},
		{"Multiple errors", []FieldError{
			{Field: "duration", Message: "is required"},
			{Field: "started_after", Message: "must be within reasonable date range"},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.name == "Multiple errors" {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
			} else {
				if result != tt.expectError {
					t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
				}
			}
		})
	}
}

func TestValidationError_AddError(t *testing.T) {
	ve := NewValidationError()

	if ve.HasErrors() {
		t.Error("new ValidationError should have no errors")
	}

	ve.AddRequiredError("duration")
	ve.AddInvalidValueError("started_after", "bogus", "must be a valid time")

	if !ve.HasErrors() {
		t.Error("ValidationError should have errors after adding")
	}
	if len(ve.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d", len(ve.Errors))
	}

	durationErrors := ve.GetFieldErrors("duration")
	if len(durationErrors) != 1 {
		t.Errorf("expected 1 error for field 'duration', got %d", len(durationErrors))
	}
	if durationErrors[0].Type != ErrorTypeRequired {
		t.Errorf("expected required error type, got %v", durationErrors[0].Type)
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	tests := []struct {
		name          string
		setup         func() *ValidationError
		expectMessage string
		contains      bool
	}{
		{
			"No errors",
			func() *ValidationError { return NewValidationError() },
			"Input validation failed",
			false,
		},
		{
			"Single error",
			func() *ValidationError {
				ve := NewValidationError()
				ve.AddRequiredError("duration")
				return ve
			},
			"duration is required",
			false,
		},
		{
			"Multiple errors",
			func() *ValidationError {
				ve := NewValidationError()
				ve.AddRequiredError("duration")
				ve.AddInvalidFormatError("started_after", "x", "time shorthand like 2h")
				return ve
			},
			"Multiple validation errors occurred",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.setup().GetUserFriendlyMessage()

			if tt.contains {
				if !strings.Contains(result, tt.expectMessage) {
					t.Errorf("GetUserFriendlyMessage() = %v, expected to contain %v", result, tt.expectMessage)
				}
			} else {
				if result != tt.expectMessage {
					t.Errorf("GetUserFriendlyMessage() = %v, expected %v", result, tt.expectMessage)
				}
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("duration")

	if !IsValidationError(ve) {
		t.Error("IsValidationError should return true for ValidationError")
	}
	if IsValidationError(nil) {
		t.Error("IsValidationError should return false for nil")
	}
}
