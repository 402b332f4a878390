package validator

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// customValidators are the tags this package adds to the gin binding engine
var customValidators = map[string]validator.Func{
	"phone":     ValidatePhone,
	"mbti":      ValidateMBTI,
	"bcryptlen": ValidateBcryptLength,
}

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package.
// Safe to call more than once.
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	names := make([]string, 0, len(customValidators))
	for tag, fn := range customValidators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("%s validator 등록 실패: %w", tag, err)
		}
		names = append(names, tag)
	}

	slog.Debug("공통 Validator 등록 완료", "validators", names)
	return nil
}
