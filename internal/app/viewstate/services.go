package viewstate

import (
	"context"

	"github.com/quotevault/quotevault/internal/domain"
)

// CatalogService is the slice of the catalog the orchestrators consume.
// Implemented by app.CatalogService.
type CatalogService interface {
	ListQuotes(ctx context.Context, category string, page uint) ([]domain.Quote, error)
	SearchQuotes(ctx context.Context, query string) ([]domain.Quote, error)
	RandomQuote(ctx context.Context) (*domain.Quote, error)
	PageSize() uint
	Categories() []string
}

// FavoriteService is the favorite surface the orchestrators consume.
// Implemented by app.FavoriteService.
type FavoriteService interface {
	AddFavorite(ctx context.Context, quoteID string) error
	RemoveFavorite(ctx context.Context, quoteID string) error
	ListFavorites(ctx context.Context) ([]domain.Quote, error)
}

// CollectionService is the collection surface the orchestrators consume.
// Implemented by app.CollectionService.
type CollectionService interface {
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	GetCollectionWithQuotes(ctx context.Context, collectionID string) (*domain.CollectionWithQuotes, error)
	AddQuoteToCollection(ctx context.Context, collectionID, quoteID string) error
	RemoveQuoteFromCollection(ctx context.Context, collectionID, quoteID string) error
	CreateCollectionAndAddQuote(ctx context.Context, name, description, quoteID string) (*domain.Collection, error)
}
