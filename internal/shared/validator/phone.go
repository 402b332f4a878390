package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phoneRegex matches Korean mobile numbers: 010-1234-5678 or 01012345678
var phoneRegex = regexp.MustCompile(`^01[016789]-?[0-9]{3,4}-?[0-9]{4}$`)

func ValidatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}
