package auth

import (
	"net/http"

	sharedError "github.com/ifclub/ifclub-api/internal/shared/error"
)

const (
	accountNotFound     = "ACCOUNT_NOT_FOUND"     // errInfo
	invalidCredentials  = "INVALID_CREDENTIALS"   // errInfo
	invalidRefreshToken = "INVALID_REFRESH_TOKEN" // errInfo
	passwordTooLong     = "PASSWORD_TOO_LONG"     // errInfo
)

var (
	ErrAccountNotFound     = sharedError.NewDomainError(accountNotFound)
	ErrInvalidCredentials  = sharedError.NewDomainError(invalidCredentials)
	ErrInvalidRefreshToken = sharedError.NewDomainError(invalidRefreshToken)
	ErrPasswordTooLong     = sharedError.NewDomainError(passwordTooLong)
)

func init() {
	// Both login failures share a message so responses do not reveal whether the email exists
	sharedError.RegisterDomainErrorResponse(accountNotFound, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "이메일 또는 비밀번호가 일치하지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidCredentials, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-003",
		Message: "이메일 또는 비밀번호가 일치하지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidRefreshToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-004",
		Message: "다시 로그인해 주세요.",
	})

	sharedError.RegisterDomainErrorResponse(passwordTooLong, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-005",
		Message: "비밀번호는 72바이트 이하여야 합니다.",
	})
}
