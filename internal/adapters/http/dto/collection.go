package dto

import (
	"time"

	"github.com/quotevault/quotevault/internal/domain"
)

// CollectionResponse is the API representation of a collection. QuoteCount
// is only populated on hydrated reads; list responses omit it.
type CollectionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewCollectionResponse converts a domain collection to its API representation.
func NewCollectionResponse(c *domain.Collection) *CollectionResponse {
	return &CollectionResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

// NewCollectionResponses converts a slice of domain collections, preserving order.
func NewCollectionResponses(collections []domain.Collection) []CollectionResponse {
	out := make([]CollectionResponse, 0, len(collections))
	for i := range collections {
		out = append(out, *NewCollectionResponse(&collections[i]))
	}

	return out
}

// CollectionWithQuotesResponse is a collection hydrated with its member
// quotes in membership order. QuoteCount is derived from the hydrated
// quotes; memberships whose quote no longer exists are not counted.
type CollectionWithQuotesResponse struct {
	CollectionResponse
	Quotes     []QuoteResponse `json:"quotes"`
	QuoteCount int             `json:"quoteCount"`
}

// NewCollectionWithQuotesResponse converts a hydrated domain collection.
func NewCollectionWithQuotesResponse(c *domain.CollectionWithQuotes) *CollectionWithQuotesResponse {
	return &CollectionWithQuotesResponse{
		CollectionResponse: *NewCollectionResponse(&c.Collection),
		Quotes:             NewQuoteResponses(c.Quotes),
		QuoteCount:         len(c.Quotes),
	}
}

// CreateCollectionRequest is the body for creating an empty collection.
type CreateCollectionRequest struct {
	Name        string `json:"name" validate:"required,notempty,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// CreateCollectionWithQuoteRequest is the body for the composite create
// and add operation.
type CreateCollectionWithQuoteRequest struct {
	Name        string `json:"name" validate:"required,notempty,max=100"`
	Description string `json:"description" validate:"max=500"`
	QuoteID     string `json:"quoteId" validate:"required,uuid"`
}

// CollectionCreatedResponse reports the outcome of the composite create
// and add operation. QuoteAdded is false when the collection was created
// but the quote could not be attached; Warning explains what remains for
// the caller to retry.
type CollectionCreatedResponse struct {
	Collection CollectionResponse `json:"collection"`
	QuoteAdded bool               `json:"quoteAdded"`
	Warning    string             `json:"warning,omitempty"`
}
