package dto

import (
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the binding rules used by the DTO
// tags. "currency" accepts a three-letter uppercase ISO 4217 style code.
func RegisterCustomValidators(v *validator.Validate) error {
	return v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		if len(code) != 3 {
			return false
		}
		for _, r := range code {
			if r < 'A' || r > 'Z' {
				return false
			}
		}
		return true
	})
}
