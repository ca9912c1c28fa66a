package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// ErrorType classifies engine errors for callers and for log routing.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeOutOfRange ErrorType = "out_of_range"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeDatabase   ErrorType = "database"
	ErrorTypeInternal   ErrorType = "internal"
)

// AppError is an application error carrying its classification, a stable
// code, the offending field (when known) and arbitrary context for logging.
type AppError struct {
	Type     ErrorType
	Code     string
	Field    string
	Message  string
	Internal error
	Context  map[string]interface{}
	Source   string
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Field, e.Message)
	}
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is matches on type and code so callers can compare against sentinels.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type && (t.Code == "" || e.Code == t.Code)
	}
	return errors.Is(e.Internal, target)
}

// WithContext attaches a key/value pair for structured logging.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// LogFields returns the error as slog key/value pairs.
func (e *AppError) LogFields() []interface{} {
	fields := []interface{}{
		"error_type", e.Type,
		"error_code", e.Code,
		"error_message", e.Message,
		"source", e.Source,
	}
	if e.Field != "" {
		fields = append(fields, "field", e.Field)
	}
	if e.Internal != nil {
		fields = append(fields, "internal_error", e.Internal.Error())
	}
	for k, v := range e.Context {
		fields = append(fields, k, v)
	}
	return fields
}

func caller() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d", file, line)
}

// New creates an AppError of the given type.
func New(errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Source:  caller(),
	}
}

// Wrap attaches classification to an existing error.
func Wrap(err error, errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:     errorType,
		Code:     code,
		Message:  message,
		Internal: err,
		Source:   caller(),
	}
}

// NewValidationError reports an invalid input on a named field. Every
// validation failure names the field and a human-readable reason so the
// caller can surface field-level feedback.
func NewValidationError(field, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    "VALIDATION",
		Field:   field,
		Message: reason,
		Source:  caller(),
	}
}

// NewOutOfRangeError reports a numeric input outside its allowed bounds.
func NewOutOfRangeError(field string, value, min, max float64) *AppError {
	return &AppError{
		Type:    ErrorTypeOutOfRange,
		Code:    "OUT_OF_RANGE",
		Field:   field,
		Message: fmt.Sprintf("%v is outside the allowed range [%v, %v]", value, min, max),
		Source:  caller(),
	}
}

// NewInvalidEnumError reports an unrecognized enum value on a named field.
func NewInvalidEnumError(field, value string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    "INVALID_ENUM",
		Field:   field,
		Message: fmt.Sprintf("unrecognized value %q", value),
		Source:  caller(),
	}
}

// NewNotFoundError reports a missing entity, e.g. an unknown food key.
func NewNotFoundError(entity, key string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s %q not found", entity, key),
		Source:  caller(),
	}
}

// NewDatabaseError wraps a store failure.
func NewDatabaseError(err error) *AppError {
	return &AppError{
		Type:     ErrorTypeDatabase,
		Code:     "DB_ERROR",
		Message:  "database operation failed",
		Internal: err,
		Source:   caller(),
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *AppError {
	return &AppError{
		Type:     ErrorTypeInternal,
		Code:     "INTERNAL",
		Message:  "internal error",
		Internal: err,
		Source:   caller(),
	}
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// Handler routes errors to the right log level by classification.
type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle logs an error according to its type. Validation-class errors are
// expected traffic and log at warn; store and internal failures at error.
func (h *Handler) Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		h.logger.ErrorContext(ctx, "unhandled error", "error", err.Error())
		return
	}
	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeOutOfRange, ErrorTypeNotFound:
		h.logger.WarnContext(ctx, "rejected request", appErr.LogFields()...)
	default:
		h.logger.ErrorContext(ctx, "operation failed", appErr.LogFields()...)
	}
}
