// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"regexp"
	"strings"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/errors"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// EchoValidator wraps a validator instance for use as echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds the validator with the application's custom rules registered.
func New() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Usernames are letters, digits and underscores only.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return &EchoValidator{validate: v}
}

// Validate implements echo.Validator. Failures surface as the validation
// domain error carrying the offending fields.
func (ev *EchoValidator) Validate(i any) error {
	err := ev.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(describeFieldErrors(fieldErrs))
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}

// describeFieldErrors flattens validator field errors into a readable list.
func describeFieldErrors(fieldErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fe.Field()+" failed on '"+fe.Tag()+"'")
	}

	return strings.Join(parts, "; ")
}
