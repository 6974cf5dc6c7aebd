package postgrest

import (
	"time"

	"github.com/quotevault/quotevault/internal/domain"
)

// Table names in the Supabase schema.
const (
	tableQuotes           = "quotes"
	tableUserFavorites    = "user_favorites"
	tableCollections      = "collections"
	tableCollectionQuotes = "collection_quotes"
)

// quoteRow mirrors a row of the quotes table.
type quoteRow struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *quoteRow) toDomain() domain.Quote {
	return domain.Quote{
		ID:        r.ID,
		Text:      r.Text,
		Author:    r.Author,
		Category:  r.Category,
		CreatedAt: r.CreatedAt,
	}
}

func quotesToDomain(rows []quoteRow) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(rows))
	for i := range rows {
		quotes = append(quotes, rows[i].toDomain())
	}

	return quotes
}

// favoriteRow mirrors a row of the user_favorites table.
type favoriteRow struct {
	UserID    string    `json:"user_id"`
	QuoteID   string    `json:"quote_id"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// favoriteInsert is the insert payload; created_at is assigned server side.
type favoriteInsert struct {
	UserID  string `json:"user_id"`
	QuoteID string `json:"quote_id"`
}

// collectionRow mirrors a row of the collections table.
type collectionRow struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *collectionRow) toDomain() domain.Collection {
	return domain.Collection{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// collectionInsert is the insert payload; id and created_at are assigned
// server side.
type collectionInsert struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// collectionQuoteRow mirrors a row of the collection_quotes join table.
type collectionQuoteRow struct {
	CollectionID string    `json:"collection_id"`
	QuoteID      string    `json:"quote_id"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

func (r *collectionQuoteRow) toDomain() domain.CollectionItem {
	return domain.CollectionItem{
		CollectionID: r.CollectionID,
		QuoteID:      r.QuoteID,
		CreatedAt:    r.CreatedAt,
	}
}

// collectionQuoteInsert is the insert payload for a membership row.
type collectionQuoteInsert struct {
	CollectionID string `json:"collection_id"`
	QuoteID      string `json:"quote_id"`
}
