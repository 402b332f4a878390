package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ifclub/ifclub-api/internal/auth"
	"github.com/ifclub/ifclub-api/internal/config"
	"github.com/ifclub/ifclub-api/internal/model"
	"github.com/ifclub/ifclub-api/internal/shared/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefreshStore struct {
	saved map[uint64]string
	err   error
}

func (f *fakeRefreshStore) UpdateRefreshToken(_ context.Context, memberID uint64, refreshToken string) error {
	if f.err != nil {
		return f.err
	}
	f.saved[memberID] = refreshToken
	return nil
}

func newIssuer(store auth.RefreshTokenStore) (*auth.TokenIssuer, *token.JWTManager) {
	manager := token.NewJWTManager(&config.Config{
		App: config.AppConfig{Name: "ifclub-api-test"},
		JWT: config.JWTConfig{
			Secret:        "test-jwt-secret-key-must-be-at-least-32-characters-long",
			Expiry:        30 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
		},
	})
	return auth.NewTokenIssuer(manager, store), manager
}

func TestIssueAccessToken_CarriesIdentityAndRole(t *testing.T) {
	// Given
	issuer, manager := newIssuer(&fakeRefreshStore{saved: map[uint64]string{}})
	member := &model.Member{ID: 3, Role: model.RoleAdmin}

	// When
	accessToken, err := issuer.IssueAccessToken(member)
	require.NoError(t, err)

	// Then
	claims, err := manager.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "3", claims.MemberID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, token.ACCESS, claims.TokenType)
}

func TestIssueRefreshToken_PersistsAndOverwrites(t *testing.T) {
	// Given
	store := &fakeRefreshStore{saved: map[uint64]string{}}
	issuer, _ := newIssuer(store)
	member := &model.Member{ID: 9, Role: model.RoleUser}

	// When: Issue twice
	first, err := issuer.IssueRefreshToken(context.Background(), member)
	require.NoError(t, err)
	second, err := issuer.IssueRefreshToken(context.Background(), member)
	require.NoError(t, err)

	// Then: Only the latest token is stored
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, store.saved[9])
	require.NotNil(t, member.RefreshToken)
	assert.Equal(t, second, *member.RefreshToken)
}

func TestIssueRefreshToken_StoreFailure(t *testing.T) {
	// Given
	issuer, _ := newIssuer(&fakeRefreshStore{err: errors.New("db down")})
	member := &model.Member{ID: 9}

	// When
	refreshToken, err := issuer.IssueRefreshToken(context.Background(), member)

	// Then: Nothing handed out, nothing set
	assert.Error(t, err)
	assert.Empty(t, refreshToken)
	assert.Nil(t, member.RefreshToken)
}

func TestParseRefreshToken(t *testing.T) {
	// Given
	issuer, _ := newIssuer(&fakeRefreshStore{saved: map[uint64]string{}})
	member := &model.Member{ID: 11, Role: model.RoleUser}
	refreshToken, err := issuer.IssueRefreshToken(context.Background(), member)
	require.NoError(t, err)
	accessToken, err := issuer.IssueAccessToken(member)
	require.NoError(t, err)

	// When / Then: A refresh token parses to its member
	memberID, err := issuer.ParseRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), memberID)

	// When / Then: An access token is not accepted as a refresh token
	_, err = issuer.ParseRefreshToken(accessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)

	_, err = issuer.ParseRefreshToken("garbage")
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}
