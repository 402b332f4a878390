package context

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sharedError "github.com/ifclub/ifclub-api/internal/shared/error"
	"github.com/ifclub/ifclub-api/internal/shared/logger"
)

// Context keys for storing the authenticated member
const (
	MemberIDKey   = "member_id"
	MemberRoleKey = "member_role"
)

// Unauthorized is sent when a protected handler runs without an authenticated member
var Unauthorized = sharedError.ErrorResponse{
	Status:  http.StatusUnauthorized,
	Code:    "AUTH-000",
	Message: "로그인을 해주세요.",
}

// SetMember stores the authenticated member on the gin context
func SetMember(c *gin.Context, memberID uint64, role string) {
	c.Set(MemberIDKey, memberID)
	c.Set(MemberRoleKey, role)
}

func GetMemberID(c *gin.Context) (uint64, bool) {
	memberID, exists := c.Get(MemberIDKey)
	if !exists {
		return 0, false
	}

	id, ok := memberID.(uint64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

func GetMemberRole(c *gin.Context) string {
	return c.GetString(MemberRoleKey)
}

// RequireMemberID retrieves the authenticated member's ID from the Gin context.
// If it is missing, an authentication error response is sent and false is returned.
func RequireMemberID(c *gin.Context) (uint64, bool) {
	memberID, ok := GetMemberID(c)
	if !ok {
		c.AbortWithStatusJSON(Unauthorized.Status, Unauthorized)
		logger.FromContext(c.Request.Context()).Error("[API] context에 회원 ID가 존재하지 않습니다.")
		return 0, false
	}
	return memberID, true
}
