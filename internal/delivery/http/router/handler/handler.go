// Package handler contains the HTTP handlers of the store proximity API.
package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/delivery/http/validator"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// bindAndValidate binds the request into req and runs struct validation.
// Failures are returned as ErrValidationFailed carrying the reason.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request input")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	return nil
}

// validateQuery turns a query binding error or a failed range check into
// ErrValidationFailed.
func validateQuery(c echo.Context, bindErr error, req any) error {
	if bindErr != nil {
		var be *echo.BindingError
		if errors.As(bindErr, &be) {
			return domainerrors.ErrValidationFailed.WithDetails(be.Field + ": " + httpErrorText(be.HTTPError))
		}

		return domainerrors.ErrValidationFailed.WithDetails(bindErr.Error())
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	return nil
}

func httpErrorText(he *echo.HTTPError) string {
	if he == nil {
		return "invalid value"
	}
	if msg, ok := he.Message.(string); ok {
		return msg
	}

	return http.StatusText(he.Code)
}

// handleAppError renders application errors and passes anything else on to
// the error middleware.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.AppError(c, appErr)
	}

	return errors.WithStack(err)
}
