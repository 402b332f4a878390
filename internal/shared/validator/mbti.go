package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// mbtiRegex matches the 16 four-letter types, case-insensitive (e.g. INTJ, enfp)
var mbtiRegex = regexp.MustCompile(`(?i)^[EI][NS][TF][JP]$`)

func ValidateMBTI(fl validator.FieldLevel) bool {
	return mbtiRegex.MatchString(fl.Field().String())
}
