// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "sparestock/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator.Validate instance for use as echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New creates a validator ready to be assigned to echo.Echo.Validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the struct tags on i and converts failures into the
// application's validation error so the error middleware renders them as 400s.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
