package error

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError is a sentinel that can be wrapped with %w and still be mapped
// to an HTTP response by its Info key.
type DomainError interface {
	error
	Info() string
}

type domainSentinel struct {
	errInfo string
}

func (e *domainSentinel) Error() string { return e.errInfo }

func (e *domainSentinel) Info() string { return e.errInfo }

// NewDomainError creates a sentinel error that can participate in error chains.
func NewDomainError(errInfo string) DomainError {
	return &domainSentinel{errInfo: errInfo}
}

// ErrorResponse is the JSON body of every error reply
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"` // client message
}

// Responses shared by every package
var (
	// ERROR-001 METHOD_ARGUMENT_NOT_VALID
	ValidationFailed = ErrorResponse{Status: http.StatusBadRequest, Code: "ERROR-001", Message: "잘못된 요청입니다."}

	// ERROR-002 INVALID_REQUEST, e.g. malformed JSON
	InvalidRequest = ErrorResponse{Status: http.StatusBadRequest, Code: "ERROR-002", Message: "잘못된 요청 형식입니다."}

	// ERROR-003 INTERNAL_SERVER_ERROR
	InternalServerError = ErrorResponse{Status: http.StatusInternalServerError, Code: "ERROR-003", Message: "서버 내부 오류가 발생했습니다."}

	// ERROR-004 TOO_MANY_REQUESTS
	TooManyRequests = ErrorResponse{Status: http.StatusTooManyRequests, Code: "ERROR-004", Message: "요청이 너무 많습니다. 잠시 후 다시 시도해 주세요."}

	// ERROR-005 INVALID_PATH_PARAMETER, e.g. a non-numeric id
	InvalidPathParameter = ErrorResponse{Status: http.StatusBadRequest, Code: "ERROR-005", Message: "잘못된 경로 파라미터입니다."}
)

// written only from package init functions
var domainErrorResponses = map[string]ErrorResponse{}

// RegisterDomainErrorResponse maps errInfo to resp. Registering the same
// errInfo twice with a different response panics.
func RegisterDomainErrorResponse(errInfo string, resp ErrorResponse) {
	if prev, ok := domainErrorResponses[errInfo]; ok && prev != resp {
		panic(fmt.Sprintf("error: %s registered twice with different responses", errInfo))
	}
	domainErrorResponses[errInfo] = resp
}

// ResolveDomainError finds the response registered for the first DomainError in err's chain
func ResolveDomainError(err error) (ErrorResponse, bool) {
	var domainErr DomainError
	if err == nil || !errors.As(err, &domainErr) {
		return ErrorResponse{}, false
	}

	resp, ok := domainErrorResponses[domainErr.Info()]
	return resp, ok
}

// Resolve is ResolveDomainError with InternalServerError as the fallback
func Resolve(err error) ErrorResponse {
	if resp, ok := ResolveDomainError(err); ok {
		return resp
	}
	return InternalServerError
}
