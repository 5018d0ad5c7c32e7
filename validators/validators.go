package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/anik404/memory-lane/backend/internal/apperror"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with a shared validate instance.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct tags and reports failures as validation errors,
// which the HTTP error handler maps to 400.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperror.ValidationFailed(err.Error())
	}
	return nil
}
