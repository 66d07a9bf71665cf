package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisonbelle/salon-admin/internal/session"
)

func authRouter(t *testing.T) (*gin.Engine, **session.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var captured *session.Session

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		captured = SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r, &captured
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		r, _ := authRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "must_be_logged_in")
	})

	t.Run("not a bearer scheme", func(t *testing.T) {
		r, _ := authRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_authorization_header")
	})

	t.Run("expired token", func(t *testing.T) {
		r, _ := authRouter(t)

		raw := signToken(t, jwt.MapClaims{
			"sub": "admin@salon.fr",
			"exp": time.Now().Add(-time.Minute).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token reaches the handler with a session", func(t *testing.T) {
		r, captured := authRouter(t)

		raw := signToken(t, jwt.MapClaims{
			"sub":  "admin@salon.fr",
			"role": "SUPERVISOR",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, *captured)
		assert.Equal(t, "admin@salon.fr", (*captured).Subject)
		assert.Equal(t, "SUPERVISOR", (*captured).Role)
	})
}
