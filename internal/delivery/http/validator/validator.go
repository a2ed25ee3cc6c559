// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"strings"

	domainerrors "gather/internal/domain/errors"
	"gather/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator used by the Echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct against its validate tags and maps
// failures to the application's validation error so the error handler renders
// a 400 with field details.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field()+" failed on '"+fieldErr.Tag()+"'")
	}

	return domainerrors.ErrValidationFailed.
		WithDetails(strings.Join(fields, "; ")).
		WrapMessage("request validation failed")
}
