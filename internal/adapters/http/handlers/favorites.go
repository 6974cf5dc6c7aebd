package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotevault/quotevault/internal/adapters/http/dto"
	"github.com/quotevault/quotevault/internal/app"
)

// FavoriteHandler handles the caller's favorite marks. Add and remove are
// idempotent: replays of the same mutation succeed, so clients can retry
// after ambiguous failures without checking state first.
type FavoriteHandler struct {
	favorites *app.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favorites *app.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// ListFavorites handles GET /favorites.
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	quotes, err := h.favorites.ListFavorites(c.Request.Context())
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.NewQuoteResponses(quotes)})
}

// AddFavorite handles PUT /favorites/:quoteId. Favoriting an already
// favorited quote returns 204 like any other success.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	if err := h.favorites.AddFavorite(c.Request.Context(), c.Param("quoteId")); err != nil {
		RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /favorites/:quoteId. Removing an absent
// favorite returns 204 like any other success.
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	if err := h.favorites.RemoveFavorite(c.Request.Context(), c.Param("quoteId")); err != nil {
		RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers favorite routes on the given router group.
// Mount behind RequireSession; every operation needs a caller identity.
func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/favorites", h.ListFavorites)
	rg.PUT("/favorites/:quoteId", h.AddFavorite)
	rg.DELETE("/favorites/:quoteId", h.RemoveFavorite)
}
