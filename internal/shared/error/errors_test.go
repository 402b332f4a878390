package error_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	sharedError "github.com/ifclub/ifclub-api/internal/shared/error"
	"github.com/stretchr/testify/assert"
)

func TestResolveDomainError_WrappedSentinel(t *testing.T) {
	// Given: A registered sentinel wrapped twice
	errTest := sharedError.NewDomainError("TEST_RESOLVE_WRAPPED")
	sharedError.RegisterDomainErrorResponse("TEST_RESOLVE_WRAPPED", sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "TEST-001",
		Message: "test",
	})
	err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", errTest))

	// When
	resp, ok := sharedError.ResolveDomainError(err)

	// Then
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Equal(t, "TEST-001", resp.Code)
	assert.ErrorIs(t, err, errTest)
}

func TestResolveDomainError_Unregistered(t *testing.T) {
	_, ok := sharedError.ResolveDomainError(sharedError.NewDomainError("TEST_NOT_REGISTERED"))
	assert.False(t, ok)

	_, ok = sharedError.ResolveDomainError(errors.New("plain error"))
	assert.False(t, ok)

	_, ok = sharedError.ResolveDomainError(nil)
	assert.False(t, ok)
}

func TestResolve_FallsBackToInternalServerError(t *testing.T) {
	assert.Equal(t, sharedError.InternalServerError, sharedError.Resolve(errors.New("db down")))
}

func TestRegisterDomainErrorResponse_Conflict(t *testing.T) {
	resp := sharedError.ErrorResponse{Status: http.StatusTeapot, Code: "TEST-002", Message: "a"}
	sharedError.RegisterDomainErrorResponse("TEST_CONFLICT", resp)

	// same response again is allowed
	assert.NotPanics(t, func() { sharedError.RegisterDomainErrorResponse("TEST_CONFLICT", resp) })

	other := resp
	other.Code = "TEST-003"
	assert.Panics(t, func() { sharedError.RegisterDomainErrorResponse("TEST_CONFLICT", other) })
}
