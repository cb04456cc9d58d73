// Package validator plugs go-playground/validator into echo's binding flow.
package validator

import (
	"regexp"

	domainerrors "mediatrack/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// loginPattern accepts 3 to 50 characters of letters, digits and underscores.
var loginPattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,50}$`)

// Validator adapts validator/v10 to echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds the request validator with the custom "login" tag registered.
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("login", func(fl validator.FieldLevel) bool {
		return loginPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator. Failures map to the generic validation
// error so field names never leak into responses.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
