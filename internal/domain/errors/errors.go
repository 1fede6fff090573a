package errors

import (
	"net/http"

	"marketplace/internal/errors"
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
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Wrap attaches cause to the error. The result still matches e through
// errors.Is, and cause stays in the message and the unwrap chain.
func (e *BaseError) Wrap(cause error) error {
	return errors.Mark(cause, e)
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

// Is matches any BaseError with the same business code, so copies made by
// WithDetails still satisfy errors.Is against the original sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Location-related errors
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"LOCATION_PERMISSION_DENIED",
		"Location access was denied",
		"",
	)

	ErrPositionUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATION_POSITION_UNAVAILABLE",
		"Current position could not be determined",
		"",
	)

	ErrLocationTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"LOCATION_TIMEOUT",
		"Timed out while determining current position",
		"",
	)

	ErrLocationUnsupported = NewBaseError(
		http.StatusNotImplemented,
		"LOCATION_UNSUPPORTED",
		"Location services are not supported",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Coordinate is out of range",
		"latitude must be within [-90, 90] and longitude within [-180, 180]",
	)

	// Geocoding-related errors
	ErrGeocodingFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODING_FAILED",
		"Address lookup failed, please enter the address manually",
		"",
	)

	// Store location errors
	ErrResolutionFailed = NewBaseError(
		http.StatusBadGateway,
		"STORE_RESOLUTION_FAILED",
		"Store locations could not be resolved",
		"",
	)

	ErrRadiusOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"RADIUS_OUT_OF_RANGE",
		"Requested radius is out of range",
		"",
	)

	// Authentication-related errors
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired access token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
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

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap returns the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
