package handlers

import (
	"credit-backoffice/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on top of the shared validator
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
