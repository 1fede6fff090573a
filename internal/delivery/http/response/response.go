// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "STORE_RESOLUTION_FAILED"
	Details string `json:"details,omitempty"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return write(c, statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return write(c, statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// AppError renders an application error with its own status and business code.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// write sends body as JSON. HEAD requests only get the status.
func write(c echo.Context, statusCode int, body Response) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(statusCode)
	}

	return c.JSON(statusCode, body)
}
