package utils

import (
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	if Validate != nil {
		return
	}
	Validate = validator.New()
	_ = Validate.RegisterValidation("weekday", validateWeekday)
}

// validateWeekday accepts 0 (Sunday) through 6 (Saturday).
func validateWeekday(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 0 && day <= 6
}
