package meta_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ifclub/ifclub-api/internal/meta"
	"github.com/ifclub/ifclub-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct{ err error }

func (f fakeChecker) HealthCheck(context.Context) error { return f.err }

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		checkErr   error
		wantStatus int
		wantState  string
	}{
		{"database up", nil, http.StatusOK, "healthy"},
		{"database down", errors.New("ping failed"), http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			handler := meta.NewHandler(testutil.NewTestConfig(), fakeChecker{err: tt.checkErr})
			router := testutil.SetupTestRouter()
			router.GET("/health", handler.Health)

			// When
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})

			// Then
			assert.Equal(t, tt.wantStatus, recorder.Code)
			var body map[string]any
			testutil.ParseResponse(t, recorder, &body)
			require.Contains(t, body, "status")
			assert.Equal(t, tt.wantState, body["status"])
		})
	}
}
