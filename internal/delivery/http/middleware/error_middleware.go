package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/delivery/http/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}

		m.logWriteFailure(response.AppError(c, appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.logWriteFailure(response.Error(c, httpErr.Code, "HTTP_ERROR", "", httpErrorMessage(httpErr)))

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.logWriteFailure(response.AppError(c, domainerrors.ErrInternalError))
}

func (m *ErrorMiddleware) logWriteFailure(err error) {
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	switch msg := httpErr.Message.(type) {
	case string:
		return msg
	case error:
		return msg.Error()
	case nil:
		return http.StatusText(httpErr.Code)
	default:
		return fmt.Sprint(msg)
	}
}
