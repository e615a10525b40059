package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on the business error code so detailed copies compare equal.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return other.errorCode == e.errorCode
}

// Predefined error types
var (
	// Establishment-related errors
	ErrEstablishmentNotFound = NewBaseError(
		http.StatusNotFound,
		"ESTABLISHMENT_NOT_FOUND",
		"Establishment not found",
		"",
	)

	ErrEstablishmentUnmapped = NewBaseError(
		http.StatusUnprocessableEntity,
		"ESTABLISHMENT_UNMAPPED",
		"Establishment has no map coordinates",
		"",
	)

	// Dataset-related errors
	ErrDatasetUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"DATASET_UNAVAILABLE",
		"Failed to load restaurant data. Please try again later.",
		"",
	)

	ErrDatasetMalformed = NewBaseError(
		http.StatusInternalServerError,
		"DATASET_MALFORMED",
		"Restaurant data could not be parsed",
		"",
	)

	// Viewer session errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Viewer session not found or expired",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"Too many open viewer sessions",
		"",
	)

	ErrUnknownEvent = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_EVENT",
		"Unknown viewer event",
		"",
	)

	// Basemap errors
	ErrTileNotFound = NewBaseError(
		http.StatusNotFound,
		"TILE_NOT_FOUND",
		"Tile not found",
		"",
	)

	ErrBasemapDisabled = NewBaseError(
		http.StatusNotFound,
		"BASEMAP_DISABLED",
		"Self-hosted basemap is not enabled",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
