package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotevault/quotevault/internal/adapters/http/dto"
	"github.com/quotevault/quotevault/internal/app"
)

// CatalogHandler handles catalog read endpoints: paged browsing, search,
// random picks, and the category list. All endpoints are available to
// anonymous callers; the favorite overlay is simply empty without a session.
type CatalogHandler struct {
	catalog *app.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog *app.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListQuotes handles GET /quotes?page=N&category=C.
// Pages are zero-indexed and fixed-size; hasMore is derived from the
// page being full.
func (h *CatalogHandler) ListQuotes(c *gin.Context) {
	var req dto.PageRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	quotes, err := h.catalog.ListQuotes(c.Request.Context(), req.Category, req.Page)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResponse(dto.NewQuoteResponses(quotes), req.Page, h.catalog.PageSize()))
}

// SearchQuotes handles GET /quotes/search?q=term.
// Results are unpaged; a blank query matches nothing.
func (h *CatalogHandler) SearchQuotes(c *gin.Context) {
	var req dto.SearchRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	quotes, err := h.catalog.SearchQuotes(c.Request.Context(), req.Query)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.NewQuoteResponses(quotes)})
}

// RandomQuote handles GET /quotes/random.
func (h *CatalogHandler) RandomQuote(c *gin.Context) {
	quote, err := h.catalog.RandomQuote(c.Request.Context())
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// GetQuote handles GET /quotes/:id.
func (h *CatalogHandler) GetQuote(c *gin.Context) {
	quote, err := h.catalog.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// Categories handles GET /categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Categories: h.catalog.Categories(),
	})
}

// RegisterRoutes registers catalog routes on the given router group.
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes", h.ListQuotes)
	rg.GET("/quotes/search", h.SearchQuotes)
	rg.GET("/quotes/random", h.RandomQuote)
	rg.GET("/quotes/:id", h.GetQuote)
	rg.GET("/categories", h.Categories)
}

// respondWithBindingError maps binding and validation failures on request
// DTOs to a 400 response with field details where available.
func respondWithBindingError(c *gin.Context, err error) {
	if dto.IsValidationError(err) {
		RespondWithValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	RespondWithErrorCode(c, dto.ErrorCodeBadRequest, err.Error())
}
