// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// Application Layer Responsibilities:
//   - Orchestrate use cases (business workflows)
//   - Coordinate between domain and infrastructure
//   - Handle cross-cutting concerns (logging)
//   - Enforce business rules that span multiple entities
//
// What does NOT belong here:
//   - HTTP specifics (that's adapters)
//   - PostgREST queries (that's the store adapter)
//   - Core domain logic (that's the domain layer)
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/platform/logging"
	"github.com/quotevault/quotevault/internal/ports"
)

const (
	// DefaultPageSize is the catalog page size when none is configured.
	DefaultPageSize = 20

	// FlagServerSideRandom selects the random_quote RPC for random picks.
	// When disabled the service falls back to sampling the first catalog
	// page, which over-represents the oldest quotes.
	FlagServerSideRandom = "catalog.server_side_random"
)

// CatalogService serves the quote catalog: paged browsing, search, and
// random picks, each with the caller's favorite overlay applied.
type CatalogService struct {
	quotes    ports.QuoteStore
	favorites *FavoriteService
	flags     ports.FeatureFlags
	pageSize  uint
	logger    *slog.Logger
}

// CatalogServiceConfig contains dependencies for the catalog service.
type CatalogServiceConfig struct {
	Quotes    ports.QuoteStore
	Favorites *FavoriteService
	Flags     ports.FeatureFlags
	PageSize  uint
	Logger    *slog.Logger
}

// NewCatalogService creates a catalog service with the provided dependencies.
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pageSize := cfg.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	return &CatalogService{
		quotes:    cfg.Quotes,
		favorites: cfg.Favorites,
		flags:     cfg.Flags,
		pageSize:  pageSize,
		logger:    logger.With(slog.String("component", "app.CatalogService")),
	}
}

// Categories returns the browsable categories, starting with the
// unfiltered pseudo-category.
func (s *CatalogService) Categories() []string {
	return slices.Clone(domain.Categories)
}

// PageSize returns the fixed catalog page size.
func (s *CatalogService) PageSize() uint {
	return s.pageSize
}

// ListQuotes returns one page of the catalog, filtered by category and
// overlaid with the caller's favorites. Pages are zero-indexed.
func (s *CatalogService) ListQuotes(ctx context.Context, category string, page uint) ([]domain.Quote, error) {
	if category != "" && !slices.Contains(domain.Categories, category) {
		return nil, fmt.Errorf("validating category: %w", domain.NewValidationError("category", "unknown category "+category))
	}

	quotes, favoriteIDs, err := Parallel2(ctx,
		func(ctx context.Context) ([]domain.Quote, error) {
			return s.quotes.List(ctx, category, page, s.pageSize)
		},
		s.overlayIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	applyFavoriteOverlay(quotes, favoriteIDs)

	return quotes, nil
}

// SearchQuotes returns quotes whose text or author matches the query,
// case-insensitively. A blank query matches nothing.
func (s *CatalogService) SearchQuotes(ctx context.Context, query string) ([]domain.Quote, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Quote{}, nil
	}

	quotes, favoriteIDs, err := Parallel2(ctx,
		func(ctx context.Context) ([]domain.Quote, error) {
			return s.quotes.Search(ctx, query)
		},
		s.overlayIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("searching quotes: %w", err)
	}

	applyFavoriteOverlay(quotes, favoriteIDs)

	return quotes, nil
}

// GetQuote returns a single quote with the favorite overlay applied.
func (s *CatalogService) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	if id == "" {
		return nil, fmt.Errorf("validating input: %w", domain.NewValidationError("id", "cannot be empty"))
	}

	quote, favoriteIDs, err := Parallel2(ctx,
		func(ctx context.Context) (*domain.Quote, error) {
			return s.quotes.GetByID(ctx, id)
		},
		s.overlayIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	quote.IsFavorite = favoriteIDs.Contains(quote.ID)

	return quote, nil
}

// RandomQuote returns one quote chosen at random, with the favorite
// overlay applied. The server-side RPC samples the whole corpus
// uniformly; the flag-gated fallback samples the first page only.
func (s *CatalogService) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	logger := logging.FromContext(ctx)

	var quote *domain.Quote
	var err error

	if s.flags == nil || s.flags.IsEnabled(ctx, FlagServerSideRandom, true) {
		quote, err = s.quotes.PickRandom(ctx)
	} else {
		logger.DebugContext(ctx, "using first-page random fallback")
		quote, err = s.randomFromFirstPage(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("picking random quote: %w", err)
	}

	quote.IsFavorite = s.overlayIDsQuiet(ctx).Contains(quote.ID)

	return quote, nil
}

// randomFromFirstPage picks a random quote from the first catalog page.
// The sample is biased toward the oldest quotes.
func (s *CatalogService) randomFromFirstPage(ctx context.Context) (*domain.Quote, error) {
	quotes, err := s.quotes.List(ctx, "", 0, s.pageSize)
	if err != nil {
		return nil, err
	}

	if len(quotes) == 0 {
		return nil, domain.NewNotFoundError("quote", "")
	}

	quote := quotes[rand.IntN(len(quotes))] //nolint:gosec // No need for crypto-grade randomness

	return &quote, nil
}

// overlayIDs fetches the caller's favorite id set for overlay purposes.
// It never fails: anonymous callers and fetch errors both yield a nil
// set, so catalog reads degrade to an unfavorited view instead of
// erroring. Signature matches the Parallel2 function contract.
func (s *CatalogService) overlayIDs(ctx context.Context) (domain.QuoteIDSet, error) {
	return s.overlayIDsQuiet(ctx), nil
}

func (s *CatalogService) overlayIDsQuiet(ctx context.Context) domain.QuoteIDSet {
	if s.favorites == nil {
		return nil
	}

	return s.favorites.OverlayIDs(ctx)
}
