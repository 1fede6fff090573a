// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"marketplace/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports json (or query) field names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	return &CustomValidator{validate: v}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// Describe renders validation failures as "field: rule" pairs.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}

	return strings.Join(parts, "; ")
}
