package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	sharedError "github.com/ifclub/ifclub-api/internal/shared/error"
)

// messages renders a client message per validation tag
var messages = map[string]func(fe validator.FieldError) string{
	"required": func(validator.FieldError) string { return "필수 항목을 입력해 주세요." },
	"email":    func(validator.FieldError) string { return "이메일 형식이 올바르지 않습니다." },
	"min": func(fe validator.FieldError) string {
		return fmt.Sprintf("최소 %s자 이상이어야 합니다.", fe.Param())
	},
	"max": func(fe validator.FieldError) string {
		return fmt.Sprintf("최대 %s자까지 입력 가능합니다.", fe.Param())
	},
	"numeric": func(validator.FieldError) string { return "숫자만 입력 가능합니다." },
	"phone": func(validator.FieldError) string {
		return "휴대폰 번호 형식이 올바르지 않습니다. (010-XXXX-XXXX)"
	},
	"bcryptlen": func(validator.FieldError) string {
		return fmt.Sprintf("비밀번호는 %d바이트 이하여야 합니다.", MaxBcryptBytes)
	},
	"mbti": func(validator.FieldError) string { return "MBTI 형식이 올바르지 않습니다. (예: INTJ)" },
	"datetime": func(fe validator.FieldError) string {
		return fmt.Sprintf("날짜 형식이 올바르지 않습니다. (%s)", fe.Param())
	},
	"oneof": func(fe validator.FieldError) string {
		return fmt.Sprintf("허용되지 않는 값입니다. (%s)", fe.Param())
	},
}

// ToErrorResponse converts gin binding/validator errors into ValidationFailed
// carrying a message for the first failing field.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return nil, false
	}

	resp := sharedError.ValidationFailed
	resp.Message = message(validationErrors[0])
	return &resp, true
}

func message(fe validator.FieldError) string {
	if render, ok := messages[fe.Tag()]; ok {
		return render(fe)
	}
	return fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field())
}
