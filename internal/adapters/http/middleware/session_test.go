package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotevault/quotevault/internal/platform/config"
	"github.com/quotevault/quotevault/internal/ports"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

// mintToken signs a Supabase-shaped access token for tests.
func mintToken(t *testing.T, secret, subject, email string, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"exp": time.Now().Add(expiresIn).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	if email != "" {
		claims["email"] = email
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

// newAuthRouter mounts Auth plus a probe handler that captures the session.
func newAuthRouter(captured **ports.Session) *gin.Engine {
	router := gin.New()
	router.Use(Auth(&config.AuthConfig{JWTSecret: testSecret}))
	router.GET("/probe", func(c *gin.Context) {
		*captured = ports.SessionFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	return router
}

func TestAuth_AnonymousProceedsWithoutSession(t *testing.T) {
	var session *ports.Session
	router := newAuthRouter(&session)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, session)
}

func TestAuth_ValidTokenBuildsSession(t *testing.T) {
	var session *ports.Session
	router := newAuthRouter(&session)

	token := mintToken(t, testSecret, "user-1", "seneca@example.com", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, session)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "seneca@example.com", session.Email)
	assert.Equal(t, token, session.Token, "raw token must be kept for downstream forwarding")
}

func TestAuth_RejectsBadTokens(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"expired token", "Bearer " + mintStatic(t, testSecret, "user-1", -time.Hour)},
		{"wrong secret", "Bearer " + mintStatic(t, "some-other-secret-of-sufficient-length", "user-1", time.Hour)},
		{"missing subject", "Bearer " + mintStatic(t, testSecret, "", time.Hour)},
		{"not a bearer scheme", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var session *ports.Session
			router := newAuthRouter(&session)

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			req.Header.Set("Authorization", tt.header)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
			assert.Nil(t, session, "handler must not run")
		})
	}
}

func mintStatic(t *testing.T, secret, subject string, expiresIn time.Duration) string {
	t.Helper()
	return mintToken(t, secret, subject, "", expiresIn)
}

func TestRequireSession_BlocksAnonymous(t *testing.T) {
	router := gin.New()
	router.Use(Auth(&config.AuthConfig{JWTSecret: testSecret}))
	router.PUT("/guarded", RequireSession(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/guarded", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestRequireSession_AllowsAuthenticated(t *testing.T) {
	router := gin.New()
	router.Use(Auth(&config.AuthConfig{JWTSecret: testSecret}))
	router.PUT("/guarded", RequireSession(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPut, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testSecret, "user-1", "", time.Hour))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestContextSessionProvider(t *testing.T) {
	provider := ContextSessionProvider{}

	anon := context.Background()
	id, ok := provider.CurrentUserID(anon)
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.False(t, provider.IsAuthenticated(anon))

	authed := ports.ContextWithSession(anon, &ports.Session{UserID: "user-9", Token: "tok"})
	id, ok = provider.CurrentUserID(authed)
	assert.True(t, ok)
	assert.Equal(t, "user-9", id)
	assert.True(t, provider.IsAuthenticated(authed))
}
