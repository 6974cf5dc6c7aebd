package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotevault/quotevault/internal/adapters/http/dto"
	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/ports"
)

// SessionHandler serves the authenticated identity. Login, logout, and
// token refresh happen directly against Supabase Auth; this service only
// reflects the session it was handed.
type SessionHandler struct{}

// NewSessionHandler creates a session handler.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Me handles GET /me.
func (h *SessionHandler) Me(c *gin.Context) {
	session := ports.SessionFromContext(c.Request.Context())
	if session == nil {
		RespondWithErrorCode(c, dto.ErrorCodeUnauthorized, "authentication required")
		return
	}

	user := domain.User{
		ID:          session.UserID,
		Email:       session.Email,
		DisplayName: session.DisplayName,
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(&user))
}

// RegisterRoutes registers session routes on the given router group.
func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
}
