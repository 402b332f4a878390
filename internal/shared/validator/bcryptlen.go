package validator

import "github.com/go-playground/validator/v10"

// MaxBcryptBytes is the longest input bcrypt accepts
const MaxBcryptBytes = 72

// ValidateBcryptLength counts bytes, not runes: a 30 character Korean password is 90 bytes
func ValidateBcryptLength(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxBcryptBytes
}
