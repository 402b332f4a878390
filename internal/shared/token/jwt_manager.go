package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ifclub/ifclub-api/internal/config"
)

var (
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: expired token")
	ErrInvalidClaims = errors.New("token: invalid claims")
)

const (
	ACCESS  = "access"
	REFRESH = "refresh"
)

type Claims struct {
	MemberID  string `json:"member_id"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// MemberIDUint parses the member id claim
func (c *Claims) MemberIDUint() (uint64, error) {
	id, err := strconv.ParseUint(c.MemberID, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidClaims
	}
	return id, nil
}

type Manager interface {
	GenerateAccessToken(memberID uint64, role string) (string, error)
	GenerateRefreshToken(memberID uint64) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTManager struct {
	secret        []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		secret:        []byte(cfg.JWT.Secret),
		issuer:        cfg.App.Name,
		accessExpiry:  cfg.JWT.Expiry,
		refreshExpiry: cfg.JWT.RefreshExpiry,
		now:           time.Now,
	}
}

func (m *JWTManager) GenerateAccessToken(memberID uint64, role string) (string, error) {
	return m.sign(memberID, role, ACCESS, m.accessExpiry)
}

// GenerateRefreshToken carries no role; a random jti keeps consecutive tokens distinct
func (m *JWTManager) GenerateRefreshToken(memberID uint64) (string, error) {
	return m.sign(memberID, "", REFRESH, m.refreshExpiry)
}

func (m *JWTManager) sign(memberID uint64, role, tokenType string, expiry time.Duration) (string, error) {
	now := m.now()
	id := strconv.FormatUint(memberID, 10)

	claims := Claims{
		MemberID:  id,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != ACCESS && claims.TokenType != REFRESH {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
