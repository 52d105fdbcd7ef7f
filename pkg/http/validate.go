package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ReadAndValidateRequest binds the request into req, applies struct defaults
// and validates it. Returns a 400 AppError describing the first failure.
func ReadAndValidateRequest(c echo.Context, req interface{}) *AppError {
	// Bind request
	if err := c.Bind(req); err != nil {
		return bindError(err)
	}

	// Set default values
	if err := defaults.Set(req); err != nil {
		return bindError(err)
	}

	// Validate struct
	if err := validate.StructCtx(c.Request().Context(), req); err != nil {
		return bindError(err)
	}

	return nil
}

func bindError(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return BadRequestError(fieldErrorMessage(fe)).WithError(err)
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return BadRequestError(fmt.Sprintf("%v", he.Message)).WithError(err)
	}

	return BadRequestError(err.Error()).WithError(err)
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
