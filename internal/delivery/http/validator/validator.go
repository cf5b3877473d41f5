// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"net/http"

	domainerrors "stampcard/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates an Echo-compatible validator backed by go-playground/validator.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Struct tag violations surface as a
// 400 with the validator's field report in the details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if ok := errorsAs(err, &verrs); ok {
			return domainerrors.ErrValidationFailed.WithDetails(verrs.Error())
		}

		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

func errorsAs(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}

	return ok
}
