package middleware_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	sharedContext "github.com/ifclub/ifclub-api/internal/shared/context"
	"github.com/ifclub/ifclub-api/internal/shared/middleware"
	"github.com/ifclub/ifclub-api/internal/shared/testutil"
	"github.com/ifclub/ifclub-api/internal/shared/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTRouter(manager token.Manager) *gin.Engine {
	router := testutil.SetupTestRouter()
	router.Use(middleware.JWT(manager))
	router.GET("/me", func(c *gin.Context) {
		memberID, ok := sharedContext.RequireMemberID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": memberID, "role": sharedContext.GetMemberRole(c)})
	})
	return router
}

func TestJWT_AcceptsAccessToken(t *testing.T) {
	// Given
	manager := token.NewJWTManager(testutil.NewTestConfig())
	accessToken, err := manager.GenerateAccessToken(7, "ADMIN")
	require.NoError(t, err)

	// When
	recorder := testutil.ExecuteRequest(t, setupJWTRouter(manager), testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/me",
		Headers: testutil.BearerHeader(accessToken),
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	var body struct {
		ID   uint64 `json:"id"`
		Role string `json:"role"`
	}
	testutil.ParseResponse(t, recorder, &body)
	assert.Equal(t, uint64(7), body.ID)
	assert.Equal(t, "ADMIN", body.Role)
}

func TestJWT_Rejects(t *testing.T) {
	manager := token.NewJWTManager(testutil.NewTestConfig())
	refreshToken, err := manager.GenerateRefreshToken(7)
	require.NoError(t, err)

	zeroID := testutil.NewMockTokenManager()
	zeroID.ValidateTokenFunc = func(string) (*token.Claims, error) {
		return &token.Claims{MemberID: "0", TokenType: token.ACCESS}, nil
	}

	tests := []struct {
		name    string
		manager token.Manager
		headers map[string]string
	}{
		{"missing header", manager, nil},
		{"not bearer", manager, map[string]string{"Authorization": "Token abc"}},
		{"empty bearer", manager, map[string]string{"Authorization": "Bearer "}},
		{"bad signature", manager, testutil.BearerHeader("eyJhbGciOiJIUzI1NiJ9.e30.sig")},
		{"refresh token", manager, testutil.BearerHeader(refreshToken)},
		{"zero member id", zeroID, testutil.BearerHeader("whatever")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, setupJWTRouter(tt.manager), testutil.TestRequest{
				Method:  http.MethodGet,
				URL:     "/me",
				Headers: tt.headers,
			})

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Contains(t, recorder.Body.String(), `"code":"AUTH-000"`)
		})
	}
}
