package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotevault/quotevault/internal/adapters/http/dto"
	"github.com/quotevault/quotevault/internal/app"
	"github.com/quotevault/quotevault/internal/domain"
)

// CollectionHandler handles collection CRUD and quote membership. Every
// operation resolves ownership from the session, so another user's
// collection responds exactly like a missing one.
type CollectionHandler struct {
	collections *app.CollectionService
}

// NewCollectionHandler creates a new collection handler.
func NewCollectionHandler(collections *app.CollectionService) *CollectionHandler {
	return &CollectionHandler{collections: collections}
}

// ListCollections handles GET /collections.
func (h *CollectionHandler) ListCollections(c *gin.Context) {
	collections, err := h.collections.ListCollections(c.Request.Context())
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.NewCollectionResponses(collections)})
}

// GetCollection handles GET /collections/:id. The response carries the
// member quotes in membership order with the favorite overlay applied.
func (h *CollectionHandler) GetCollection(c *gin.Context) {
	result, err := h.collections.GetCollectionWithQuotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCollectionWithQuotesResponse(result))
}

// CreateCollection handles POST /collections.
func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	var req dto.CreateCollectionRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	collection, err := h.collections.CreateCollection(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCollectionResponse(collection))
}

// DeleteCollection handles DELETE /collections/:id.
func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	if err := h.collections.DeleteCollection(c.Request.Context(), c.Param("id")); err != nil {
		RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddQuote handles PUT /collections/:id/quotes/:quoteId. Adding a quote
// that is already a member returns 204 like any other success.
func (h *CollectionHandler) AddQuote(c *gin.Context) {
	err := h.collections.AddQuoteToCollection(c.Request.Context(), c.Param("id"), c.Param("quoteId"))
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveQuote handles DELETE /collections/:id/quotes/:quoteId. Removing a
// non-member returns 204 like any other success.
func (h *CollectionHandler) RemoveQuote(c *gin.Context) {
	err := h.collections.RemoveQuoteFromCollection(c.Request.Context(), c.Param("id"), c.Param("quoteId"))
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateWithQuote handles POST /collections/with-quote, the composite
// create and add operation.
//
// The two writes are not transactional: a failed second step still leaves
// a valid collection behind. That outcome is reported as 207 Multi-Status
// with the created collection in the body and quoteAdded=false, so the
// client can render the collection and offer a retry for the quote.
func (h *CollectionHandler) CreateWithQuote(c *gin.Context) {
	var req dto.CreateCollectionWithQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	collection, err := h.collections.CreateCollectionAndAddQuote(
		c.Request.Context(), req.Name, req.Description, req.QuoteID)

	var partial *domain.PartialSuccessError
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, dto.CollectionCreatedResponse{
			Collection: *dto.NewCollectionResponse(collection),
			QuoteAdded: true,
		})

	case errors.As(err, &partial):
		c.JSON(http.StatusMultiStatus, dto.CollectionCreatedResponse{
			Collection: *dto.NewCollectionResponse(collection),
			QuoteAdded: false,
			Warning:    partial.Error(),
		})

	default:
		RespondWithError(c, err)
	}
}

// RegisterRoutes registers collection routes on the given router group.
// Mount behind RequireSession; every operation needs a caller identity.
func (h *CollectionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/collections", h.ListCollections)
	rg.POST("/collections", h.CreateCollection)
	rg.POST("/collections/with-quote", h.CreateWithQuote)
	rg.GET("/collections/:id", h.GetCollection)
	rg.DELETE("/collections/:id", h.DeleteCollection)
	rg.PUT("/collections/:id/quotes/:quoteId", h.AddQuote)
	rg.DELETE("/collections/:id/quotes/:quoteId", h.RemoveQuote)
}
