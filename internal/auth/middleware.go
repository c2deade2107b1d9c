package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the logged-in user's id.
const ContextUserID = "user_id"

// RequireSession rejects requests without a valid session cookie and
// otherwise stores the user's id and username on the request context.
func RequireSession(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Please log in first"})
			return
		}

		claims, err := sessions.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Please log in first"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// UserID extracts the session user's id placed by RequireSession.
func UserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := raw.(int)
	return id, ok
}
