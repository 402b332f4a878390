package member

import (
	"net/http"

	sharedError "github.com/ifclub/ifclub-api/internal/shared/error"
)

const (
	duplicateEmail   = "DUPLICATE_EMAIL"    // errInfo
	memberNotFound   = "MEMBER_NOT_FOUND"   // errInfo
	invalidBirthDate = "INVALID_BIRTH_DATE" // errInfo
)

var (
	ErrDuplicateEmail   = sharedError.NewDomainError(duplicateEmail)
	ErrMemberNotFound   = sharedError.NewDomainError(memberNotFound)
	ErrInvalidBirthDate = sharedError.NewDomainError(invalidBirthDate)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(duplicateEmail, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "이미 가입된 이메일입니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidBirthDate, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-003",
		Message: "생년월일 형식이 올바르지 않습니다. (YYYY-MM-DD)",
	})
}
