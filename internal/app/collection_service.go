package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/platform/logging"
	"github.com/quotevault/quotevault/internal/ports"
)

// MaxCollectionNameLength bounds collection names.
const MaxCollectionNameLength = 100

// CollectionService manages user-owned collections and their quote
// memberships. Every operation resolves the owner from the session, so a
// collection owned by another user behaves exactly like a missing one.
type CollectionService struct {
	store     ports.CollectionStore
	quotes    ports.QuoteStore
	favorites *FavoriteService
	session   ports.SessionProvider
	logger    *slog.Logger
}

// CollectionServiceConfig contains dependencies for the collection service.
type CollectionServiceConfig struct {
	Store     ports.CollectionStore
	Quotes    ports.QuoteStore
	Favorites *FavoriteService
	Session   ports.SessionProvider
	Logger    *slog.Logger
}

// NewCollectionService creates a collection service with the provided dependencies.
func NewCollectionService(cfg CollectionServiceConfig) *CollectionService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CollectionService{
		store:     cfg.Store,
		quotes:    cfg.Quotes,
		favorites: cfg.Favorites,
		session:   cfg.Session,
		logger:    logger.With(slog.String("component", "app.CollectionService")),
	}
}

// ListCollections returns the caller's collections, newest first.
func (s *CollectionService) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	userID, err := s.requireUser(ctx, "list collections")
	if err != nil {
		return nil, err
	}

	collections, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}

	return collections, nil
}

// GetCollectionWithQuotes returns a collection hydrated with its member
// quotes in membership order. Memberships whose quote no longer exists
// are dropped. The favorite overlay is applied to the hydrated quotes.
func (s *CollectionService) GetCollectionWithQuotes(ctx context.Context, collectionID string) (*domain.CollectionWithQuotes, error) {
	userID, err := s.requireUser(ctx, "get collection")
	if err != nil {
		return nil, err
	}

	collection, items, err := Parallel2(ctx,
		func(ctx context.Context) (*domain.Collection, error) {
			return s.store.GetByID(ctx, userID, collectionID)
		},
		func(ctx context.Context) ([]domain.CollectionItem, error) {
			return s.store.ListItems(ctx, collectionID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("loading collection: %w", err)
	}

	result := &domain.CollectionWithQuotes{
		Collection: *collection,
		Quotes:     []domain.Quote{},
	}

	// An empty collection needs no quote lookup.
	if len(items) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].QuoteID)
	}

	quotes, err := s.quotes.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrating collection quotes: %w", err)
	}

	byID := make(map[string]domain.Quote, len(quotes))
	for i := range quotes {
		byID[quotes[i].ID] = quotes[i]
	}

	favoriteIDs := s.favorites.OverlayIDs(ctx)

	// Preserve membership order and drop dangling references.
	for i := range items {
		quote, ok := byID[items[i].QuoteID]
		if !ok {
			continue
		}

		quote.IsFavorite = favoriteIDs.Contains(quote.ID)
		result.Quotes = append(result.Quotes, quote)
	}

	if len(result.Quotes) < len(items) {
		logging.FromContext(ctx).DebugContext(ctx, "dropped dangling collection memberships",
			slog.String("collection_id", collectionID),
			slog.Int("items", len(items)),
			slog.Int("resolved", len(result.Quotes)),
		)
	}

	return result, nil
}

// CreateCollection creates an empty collection owned by the caller.
func (s *CollectionService) CreateCollection(ctx context.Context, name, description string) (*domain.Collection, error) {
	userID, err := s.requireUser(ctx, "create collection")
	if err != nil {
		return nil, err
	}

	name, err = normalizeCollectionName(name)
	if err != nil {
		return nil, err
	}

	collection, err := s.store.Insert(ctx, userID, name, strings.TrimSpace(description))
	if err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	logging.FromContext(ctx).InfoContext(ctx, "collection created",
		slog.String("collection_id", collection.ID),
	)

	return collection, nil
}

// DeleteCollection removes a collection and its memberships.
func (s *CollectionService) DeleteCollection(ctx context.Context, collectionID string) error {
	userID, err := s.requireUser(ctx, "delete collection")
	if err != nil {
		return err
	}

	if _, err := s.store.GetByID(ctx, userID, collectionID); err != nil {
		return fmt.Errorf("checking collection exists: %w", err)
	}

	if err := s.store.Delete(ctx, userID, collectionID); err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}

	logging.FromContext(ctx).InfoContext(ctx, "collection deleted",
		slog.String("collection_id", collectionID),
	)

	return nil
}

// AddQuoteToCollection adds a quote to one of the caller's collections.
// Adding a quote that is already a member succeeds without error.
func (s *CollectionService) AddQuoteToCollection(ctx context.Context, collectionID, quoteID string) error {
	userID, err := s.requireUser(ctx, "add quote to collection")
	if err != nil {
		return err
	}

	if quoteID == "" {
		return fmt.Errorf("validating input: %w", domain.NewValidationError("quote_id", "cannot be empty"))
	}

	// Ownership check; a foreign collection reads as not found.
	if _, err := s.store.GetByID(ctx, userID, collectionID); err != nil {
		return fmt.Errorf("checking collection exists: %w", err)
	}

	err = s.store.InsertItem(ctx, collectionID, quoteID)
	if err != nil && !domain.IsConflict(err) {
		return fmt.Errorf("adding quote to collection: %w", err)
	}

	return nil
}

// RemoveQuoteFromCollection removes a quote from one of the caller's
// collections. Removing a non-member succeeds without error.
func (s *CollectionService) RemoveQuoteFromCollection(ctx context.Context, collectionID, quoteID string) error {
	userID, err := s.requireUser(ctx, "remove quote from collection")
	if err != nil {
		return err
	}

	if _, err := s.store.GetByID(ctx, userID, collectionID); err != nil {
		return fmt.Errorf("checking collection exists: %w", err)
	}

	if err := s.store.DeleteItem(ctx, collectionID, quoteID); err != nil {
		return fmt.Errorf("removing quote from collection: %w", err)
	}

	return nil
}

// CreateCollectionAndAddQuote creates a collection and adds one quote to
// it as a two-step sequence. The backend offers no transaction across
// the two writes, so a failed second step leaves a valid empty
// collection behind; that outcome is reported as a PartialSuccessError
// alongside the created collection, never as a blanket failure.
func (s *CollectionService) CreateCollectionAndAddQuote(ctx context.Context, name, description, quoteID string) (*domain.Collection, error) {
	if quoteID == "" {
		return nil, fmt.Errorf("validating input: %w", domain.NewValidationError("quote_id", "cannot be empty"))
	}

	collection, err := s.CreateCollection(ctx, name, description)
	if err != nil {
		return nil, err
	}

	err = s.store.InsertItem(ctx, collection.ID, quoteID)
	if err != nil && !domain.IsConflict(err) {
		logging.FromContext(ctx).WarnContext(ctx, "collection created but quote not added",
			slog.String("collection_id", collection.ID),
			slog.String("quote_id", quoteID),
			slog.Any("error", err),
		)

		return collection, domain.NewPartialSuccessError(
			fmt.Sprintf("collection %q created", collection.Name),
			"quote was not added",
			err,
		)
	}

	return collection, nil
}

// normalizeCollectionName trims and validates a collection name.
func normalizeCollectionName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("validating input: %w", domain.NewValidationError("name", "cannot be empty"))
	}

	if len(name) > MaxCollectionNameLength {
		return "", fmt.Errorf("validating input: %w", domain.NewValidationError("name", "too long"))
	}

	return name, nil
}

// requireUser resolves the session or fails with ErrUnauthenticated.
func (s *CollectionService) requireUser(ctx context.Context, operation string) (string, error) {
	userID, ok := s.session.CurrentUserID(ctx)
	if !ok {
		return "", domain.NewUnauthenticatedError(operation)
	}

	return userID, nil
}
