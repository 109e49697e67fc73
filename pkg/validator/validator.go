package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/meeting-summarizer/pkg/ai"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with the action_status tag registered
func New() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("action_status", func(fl validator.FieldLevel) bool {
		return ai.IsValidStatus(fl.Field().String())
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
