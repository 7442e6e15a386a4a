package handlers

import (
	"github.com/labstack/echo/v4"

	"wallet-burner/internal/validation"
)

// CustomValidator implements echo.Validator over the shared validator
// instance so handler Bind+Validate picks up the custom rules.
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.GetValidate().Struct(i)
}
