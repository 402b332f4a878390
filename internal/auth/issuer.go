package auth

import (
	"context"
	"fmt"

	"github.com/ifclub/ifclub-api/internal/model"
	"github.com/ifclub/ifclub-api/internal/shared/token"
)

// RefreshTokenStore persists the single active refresh token of a member
type RefreshTokenStore interface {
	UpdateRefreshToken(ctx context.Context, memberID uint64, refreshToken string) error
}

// TokenIssuer mints access tokens and rotates the stored refresh token
type TokenIssuer struct {
	manager token.Manager
	store   RefreshTokenStore
}

func NewTokenIssuer(manager token.Manager, store RefreshTokenStore) *TokenIssuer {
	return &TokenIssuer{
		manager: manager,
		store:   store,
	}
}

// IssueAccessToken is stateless
func (i *TokenIssuer) IssueAccessToken(member *model.Member) (string, error) {
	accessToken, err := i.manager.GenerateAccessToken(member.ID, string(member.Role))
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// IssueRefreshToken overwrites any previous refresh token of the member.
// The token is persisted before it is returned.
func (i *TokenIssuer) IssueRefreshToken(ctx context.Context, member *model.Member) (string, error) {
	refreshToken, err := i.manager.GenerateRefreshToken(member.ID)
	if err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}

	if err := i.store.UpdateRefreshToken(ctx, member.ID, refreshToken); err != nil {
		return "", fmt.Errorf("save refresh token: %w", err)
	}

	member.RefreshToken = &refreshToken
	return refreshToken, nil
}

// ParseRefreshToken returns the member id of a valid, unexpired refresh token
func (i *TokenIssuer) ParseRefreshToken(refreshToken string) (uint64, error) {
	claims, err := i.manager.ValidateToken(refreshToken)
	if err != nil || claims == nil {
		return 0, ErrInvalidRefreshToken
	}
	if claims.TokenType != token.REFRESH {
		return 0, ErrInvalidRefreshToken
	}

	memberID, err := claims.MemberIDUint()
	if err != nil {
		return 0, ErrInvalidRefreshToken
	}
	return memberID, nil
}
