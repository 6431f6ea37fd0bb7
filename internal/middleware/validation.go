package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/derya/mentorlink/internal/pkg/validation"
)

// RegisterCustomValidators installs application validation rules on gin's
// binding engine. Must be called once before the router handles requests.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	// uniemail restricts an email field to the institutional domain
	return v.RegisterValidation("uniemail", func(fl validator.FieldLevel) bool {
		return validation.IsInstitutionalEmail(fl.Field().String())
	})
}
