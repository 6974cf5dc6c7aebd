package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/quotevault/quotevault/internal/adapters/http/dto"
	"github.com/quotevault/quotevault/internal/platform/config"
	"github.com/quotevault/quotevault/internal/ports"
)

// sessionClaims are the token claims this service cares about.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email        string `json:"email,omitempty"`
	UserMetadata struct {
		Name string `json:"name,omitempty"`
	} `json:"user_metadata,omitempty"`
}

// Auth returns middleware that resolves the caller's session from the
// Authorization header.
//
// A missing header is not an error: catalog reads are available to
// anonymous callers and the request proceeds without a session. A header
// that is present but does not verify aborts with 401 so callers learn
// about expired tokens instead of silently losing their favorites.
func Auth(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			abortWithUnauthorized(c, "authorization header must use the Bearer scheme")
			return
		}

		session, err := verifyToken(token, cfg.JWTSecret)
		if err != nil {
			abortWithUnauthorized(c, "invalid or expired access token")
			return
		}

		ctx := ports.ContextWithSession(c.Request.Context(), session)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireSession returns middleware that rejects anonymous requests.
// Mount it on routes that mutate per-user state.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ports.SessionFromContext(c.Request.Context()) == nil {
			abortWithUnauthorized(c, "authentication required")
			return
		}

		c.Next()
	}
}

// verifyToken validates the JWT signature and expiry and builds a session.
// Supabase signs access tokens with HS256 using the project JWT secret.
func verifyToken(raw, secret string) (*ports.Session, error) {
	claims := &sessionClaims{}

	_, err := jwt.ParseWithClaims(raw, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}

	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &ports.Session{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.UserMetadata.Name,
		Token:       raw,
	}, nil
}

// abortWithUnauthorized aborts with a 401 Unauthorized response.
func abortWithUnauthorized(c *gin.Context, message string) {
	errResp := dto.NewErrorResponse(dto.ErrorCodeUnauthorized, message)

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, errResp)
}

// ContextSessionProvider implements ports.SessionProvider by reading the
// session placed in the request context by the Auth middleware.
type ContextSessionProvider struct{}

// CurrentUserID returns the authenticated user's id, or ok=false when the
// request is anonymous.
func (ContextSessionProvider) CurrentUserID(ctx context.Context) (string, bool) {
	s := ports.SessionFromContext(ctx)
	if s == nil {
		return "", false
	}

	return s.UserID, true
}

// IsAuthenticated reports whether a session is active.
func (ContextSessionProvider) IsAuthenticated(ctx context.Context) bool {
	return ports.SessionFromContext(ctx) != nil
}
