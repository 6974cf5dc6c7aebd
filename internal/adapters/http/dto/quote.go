package dto

import (
	"time"

	"github.com/quotevault/quotevault/internal/domain"
)

// QuoteResponse is the API representation of a quote. IsFavorite reflects
// the caller's favorite overlay at read time.
type QuoteResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Author     string    `json:"author"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"createdAt"`
	IsFavorite bool      `json:"isFavorite"`
}

// NewQuoteResponse converts a domain quote to its API representation.
func NewQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:         q.ID,
		Text:       q.Text,
		Author:     q.Author,
		Category:   q.Category,
		CreatedAt:  q.CreatedAt,
		IsFavorite: q.IsFavorite,
	}
}

// NewQuoteResponses converts a slice of domain quotes, preserving order.
func NewQuoteResponses(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, *NewQuoteResponse(&quotes[i]))
	}

	return out
}

// SearchRequest carries the search query parameter.
type SearchRequest struct {
	// Query is matched case-insensitively against quote text and author.
	Query string `form:"q" validate:"required"`
}

// CategoriesResponse lists the browsable categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
