package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-admin/internal/session"
)

const ContextSession = "session"

// AuthMiddleware turns the bearer token into an explicit session object
// and refuses expired or malformed tokens before any backend call is
// made. Signature verification stays with the backend; the gateway only
// decodes the expiry claim.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "must_be_logged_in"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		sess, err := session.FromToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "must_be_logged_in"})
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

// SessionFrom extracts the session placed by AuthMiddleware.
func SessionFrom(c *gin.Context) *session.Session {
	if v, ok := c.Get(ContextSession); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}
