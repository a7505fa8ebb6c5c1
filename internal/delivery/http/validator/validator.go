// Package validator adapts go-playground/validator to Echo's Validator
// interface and registers the platform's custom rules.
package validator

import (
	"strconv"
	"strings"

	domainerrors "agroalerta/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the Echo validator with the custom rules registered.
func New() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("e164_pe", peruvianPhone)
	_ = v.RegisterValidation("altitude", altitudeRange)

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. Failures map onto the shared
// validation error so the error handler renders the standard envelope.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// peruvianPhone accepts +51 followed by exactly nine digits.
func peruvianPhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !strings.HasPrefix(value, "+51") || len(value) != 12 {
		return false
	}
	for _, r := range value[3:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// altitudeRange accepts numeric values between 0 and 5000 meters.
func altitudeRange(fl validator.FieldLevel) bool {
	altitude, err := strconv.ParseFloat(fl.Field().String(), 64)
	if err != nil {
		return false
	}

	return altitude >= 0 && altitude <= 5000
}
