// Package validator adapts go-playground validation to the echo framework.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type requestValidator struct {
	validate *playground.Validate
}

// New builds an echo.Validator backed by struct tag validation.
func New() echo.Validator {
	return &requestValidator{
		validate: playground.New(),
	}
}

// Validate checks the bound request payload against its struct tags.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
