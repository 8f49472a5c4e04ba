package validator

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules registers application-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'dateonly': a calendar date without a time component
	mustRegister("dateonly", validateDateOnly)
}

func validateDateOnly(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		// Empty values are handled by 'required'
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
