package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const MemberIDContextKey = "member_id"

// MemberSession resolves the calling member's identity from the
// X-Member-ID header set by the platform's auth gateway. Authentication
// proper happens upstream; this service only needs the identity to key
// cart sessions and checkout.
func MemberSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID := strings.TrimSpace(c.GetHeader("X-Member-ID"))
		if memberID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing member identity"})
			c.Abort()
			return
		}

		c.Set(MemberIDContextKey, memberID)
		c.Next()
	}
}

// GetMemberID retrieves the member id from the Gin context
func GetMemberID(c *gin.Context) (string, bool) {
	v, exists := c.Get(MemberIDContextKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
