package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	sharedContext "github.com/ifclub/ifclub-api/internal/shared/context"
	sharedError "github.com/ifclub/ifclub-api/internal/shared/error"
	"github.com/ifclub/ifclub-api/internal/shared/logger"
	"github.com/ifclub/ifclub-api/internal/shared/token"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
)

// Domain errors
var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
)

// Every token failure answers the same AUTH-000 response
func init() {
	for _, info := range []string{missingToken, invalidToken, expiredToken, invalidClaims} {
		sharedError.RegisterDomainErrorResponse(info, sharedContext.Unauthorized)
	}
}

// JWT authenticates the request with an access token. Refresh tokens are rejected.
func JWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context()).With(
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		// Step 1: 토큰 추출
		tokenString, err := extractToken(c)
		if err != nil {
			log.Warn("JWT 토큰 추출 실패", "step", "extract_token", "error", err.Error())
			handleJWTError(c, err)
			return
		}

		// Step 2: 토큰 검증
		claims, err := tokenManager.ValidateToken(tokenString)
		if err != nil {
			log.Warn("JWT 토큰 검증 실패", "step", "validate_token", "error", err.Error())
			handleJWTError(c, mapTokenError(err))
			return
		}

		if claims.TokenType != token.ACCESS {
			log.Warn("JWT 토큰 검증 실패", "step", "token_type", "token_type", claims.TokenType)
			handleJWTError(c, ErrInvalidToken)
			return
		}

		memberID, err := claims.MemberIDUint()
		if err != nil {
			log.Warn("JWT 토큰 검증 실패", "step", "claims", "error", err.Error())
			handleJWTError(c, ErrInvalidClaims)
			return
		}

		// 인증 성공 - Context에 회원 정보 저장
		sharedContext.SetMember(c, memberID, claims.Role)
		c.Next()
	}
}

func handleJWTError(c *gin.Context, err error) {
	c.Error(err)
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		c.AbortWithStatusJSON(resp.Status, resp)
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, sharedContext.Unauthorized)
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) || strings.TrimSpace(parts[1]) == "" {
		return "", ErrInvalidToken
	}

	return strings.TrimSpace(parts[1]), nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
