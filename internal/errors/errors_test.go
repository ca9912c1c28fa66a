package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		wantType  ErrorType
		wantCode  string
		wantField string
	}{
		{"validation", NewValidationError("age", "must be positive"), ErrorTypeValidation, "VALIDATION", "age"},
		{"out of range", NewOutOfRangeError("weightKg", 400, 30, 300), ErrorTypeOutOfRange, "OUT_OF_RANGE", "weightKg"},
		{"invalid enum", NewInvalidEnumError("sex", "other"), ErrorTypeValidation, "INVALID_ENUM", "sex"},
		{"not found", NewNotFoundError("food", "unicorn"), ErrorTypeNotFound, "NOT_FOUND", ""},
		{"database", NewDatabaseError(errors.New("conn refused")), ErrorTypeDatabase, "DB_ERROR", ""},
		{"internal", NewInternalError(errors.New("boom")), ErrorTypeInternal, "INTERNAL", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.wantType {
				t.Errorf("Type = %s, want %s", tt.err.Type, tt.wantType)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", tt.err.Code, tt.wantCode)
			}
			if tt.err.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", tt.err.Field, tt.wantField)
			}
			if tt.err.Source == "" {
				t.Error("Source not captured")
			}
			if !IsType(tt.err, tt.wantType) {
				t.Errorf("IsType(%v, %s) = false", tt.err, tt.wantType)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := NewOutOfRangeError("age", 5, 10, 120)
	msg := err.Error()
	if !strings.Contains(msg, "age") || !strings.Contains(msg, "out_of_range") {
		t.Errorf("Error() = %q, want the type and field named", msg)
	}
}

func TestIsType_WrappedErrors(t *testing.T) {
	inner := NewNotFoundError("profile", "u1")
	wrapped := fmt.Errorf("refreshing snapshot: %w", inner)

	if !IsType(wrapped, ErrorTypeNotFound) {
		t.Error("IsType does not see through wrapping")
	}
	if IsType(wrapped, ErrorTypeDatabase) {
		t.Error("IsType matched the wrong type")
	}
	if IsType(errors.New("plain"), ErrorTypeInternal) {
		t.Error("IsType matched a non-AppError")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewDatabaseError(cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("slots", "too many").WithContext("user_id", "u1")
	fields := err.LogFields()

	var found bool
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i] == "user_id" && fields[i+1] == "u1" {
			found = true
		}
	}
	if !found {
		t.Errorf("LogFields() = %v, missing attached context", fields)
	}
}
