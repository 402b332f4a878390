package testutil

import (
	"strconv"

	"github.com/ifclub/ifclub-api/internal/shared/token"
)

// MockTokenManager is a mock implementation of token.Manager for testing.
// Without overrides it returns "access-<id>" and "refresh-<id>" tokens and
// validates them back into claims.
type MockTokenManager struct {
	GenerateAccessTokenFunc  func(memberID uint64, role string) (string, error)
	GenerateRefreshTokenFunc func(memberID uint64) (string, error)
	ValidateTokenFunc        func(tokenString string) (*token.Claims, error)
}

func (m *MockTokenManager) GenerateAccessToken(memberID uint64, role string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(memberID, role)
	}
	return token.ACCESS + "-" + strconv.FormatUint(memberID, 10), nil
}

func (m *MockTokenManager) GenerateRefreshToken(memberID uint64) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(memberID)
	}
	return token.REFRESH + "-" + strconv.FormatUint(memberID, 10), nil
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*token.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString)
	}
	for _, tokenType := range []string{token.ACCESS, token.REFRESH} {
		prefix := tokenType + "-"
		if len(tokenString) > len(prefix) && tokenString[:len(prefix)] == prefix {
			return &token.Claims{MemberID: tokenString[len(prefix):], TokenType: tokenType}, nil
		}
	}
	return nil, token.ErrInvalidToken
}

// Ensure MockTokenManager implements token.Manager
var _ token.Manager = (*MockTokenManager)(nil)

// NewMockTokenManager creates a new mock token manager with default behavior
func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{}
}
