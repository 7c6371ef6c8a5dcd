package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"happyhouse/internal/domain"
	jwtsvc "happyhouse/internal/pkg/jwt"
)

const sessionKey = "session"

// RequireSession validates the bearer token and enforces the fixed session
// window: a login older than ttl is rejected on every request, so an expired
// operator is signed out before any protected action runs.
func RequireSession(jwt *jwtsvc.Service, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "UNAUTHORIZED", "Missing or invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "UNAUTHORIZED", "Empty token")
			return
		}

		sess, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "UNAUTHORIZED", "Invalid token")
			return
		}

		if sess.IsExpired(time.Now(), ttl) {
			abortUnauthorized(c, "SESSION_EXPIRED", "Session has expired, please log in again")
			return
		}

		c.Set(sessionKey, sess)
		c.Set("owner_id", sess.OwnerID)

		c.Next()
	}
}

// SessionFrom returns the session attached by RequireSession.
func SessionFrom(c *gin.Context) (domain.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}
	sess, ok := v.(domain.Session)
	return sess, ok
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
