package app

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/platform/logging"
	"github.com/quotevault/quotevault/internal/ports"
)

// DefaultFavoriteCacheTTL bounds how stale the cached favorite id set may
// be. The cache is a weak reference to server truth: reads tolerate
// staleness up to the TTL, and mutations update it in place.
const DefaultFavoriteCacheTTL = 30 * time.Second

// FavoriteService manages the caller's favorite marks. Adding and
// removing are idempotent from the caller's perspective: duplicates and
// absent marks both count as success, so retries after ambiguous
// failures are safe.
type FavoriteService struct {
	store    ports.FavoriteStore
	quotes   ports.QuoteStore
	session  ports.SessionProvider
	cacheTTL time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	cache map[string]favoriteCacheEntry

	// now is overridable for cache expiry tests.
	now func() time.Time
}

type favoriteCacheEntry struct {
	ids       domain.QuoteIDSet
	fetchedAt time.Time
}

// FavoriteServiceConfig contains dependencies for the favorite service.
type FavoriteServiceConfig struct {
	Store    ports.FavoriteStore
	Quotes   ports.QuoteStore
	Session  ports.SessionProvider
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// NewFavoriteService creates a favorite service with the provided dependencies.
func NewFavoriteService(cfg FavoriteServiceConfig) *FavoriteService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = DefaultFavoriteCacheTTL
	}

	return &FavoriteService{
		store:    cfg.Store,
		quotes:   cfg.Quotes,
		session:  cfg.Session,
		cacheTTL: ttl,
		logger:   logger.With(slog.String("component", "app.FavoriteService")),
		cache:    make(map[string]favoriteCacheEntry),
		now:      time.Now,
	}
}

// FavoriteIDs returns the caller's favorite quote ids, served from the
// cache when fresh. An anonymous caller has no favorites, so the answer
// is an empty set, not an error.
func (s *FavoriteService) FavoriteIDs(ctx context.Context) (domain.QuoteIDSet, error) {
	userID, ok := s.session.CurrentUserID(ctx)
	if !ok {
		return domain.QuoteIDSet{}, nil
	}

	return s.idsForUser(ctx, userID)
}

// OverlayIDs returns the caller's favorite id set for read overlays.
// It never fails: anonymous callers get a nil set, and fetch failures
// degrade to a nil set with a warning, keeping catalog reads available
// when the favorite table is not.
func (s *FavoriteService) OverlayIDs(ctx context.Context) domain.QuoteIDSet {
	userID, ok := s.session.CurrentUserID(ctx)
	if !ok {
		return nil
	}

	ids, err := s.idsForUser(ctx, userID)
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "favorite overlay unavailable",
			slog.Any("error", err),
		)

		return nil
	}

	return ids
}

// ListFavorites returns the caller's favorited quotes, newest catalog
// order. Favorite marks whose quote no longer exists are dropped rather
// than surfaced as errors.
func (s *FavoriteService) ListFavorites(ctx context.Context) ([]domain.Quote, error) {
	userID, err := s.requireUser(ctx, "list favorites")
	if err != nil {
		return nil, err
	}

	ids, err := s.idsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing favorite ids: %w", err)
	}

	if len(ids) == 0 {
		return []domain.Quote{}, nil
	}

	idList := make([]string, 0, len(ids))
	for id := range ids {
		idList = append(idList, id)
	}

	quotes, err := s.quotes.GetByIDs(ctx, idList)
	if err != nil {
		return nil, fmt.Errorf("hydrating favorites: %w", err)
	}

	// Everything returned here is by definition a favorite.
	for i := range quotes {
		quotes[i].IsFavorite = true
	}

	if len(quotes) < len(idList) {
		logging.FromContext(ctx).DebugContext(ctx, "dropped dangling favorite marks",
			slog.Int("marks", len(idList)),
			slog.Int("resolved", len(quotes)),
		)
	}

	return quotes, nil
}

// IsFavorite reports whether the caller has favorited the quote, straight
// from the store rather than the cache. Anonymous callers get false
// without a store call.
func (s *FavoriteService) IsFavorite(ctx context.Context, quoteID string) (bool, error) {
	userID, ok := s.session.CurrentUserID(ctx)
	if !ok {
		return false, nil
	}

	exists, err := s.store.Exists(ctx, userID, quoteID)
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}

	return exists, nil
}

// AddFavorite marks a quote as a favorite. Adding an existing favorite
// succeeds without error.
func (s *FavoriteService) AddFavorite(ctx context.Context, quoteID string) error {
	userID, err := s.requireUser(ctx, "add favorite")
	if err != nil {
		return err
	}

	if quoteID == "" {
		return fmt.Errorf("validating input: %w", domain.NewValidationError("quote_id", "cannot be empty"))
	}

	err = s.store.Insert(ctx, userID, quoteID)
	if err != nil && !domain.IsConflict(err) {
		return fmt.Errorf("adding favorite: %w", err)
	}

	if domain.IsConflict(err) {
		logging.FromContext(ctx).DebugContext(ctx, "favorite already present",
			slog.String("quote_id", quoteID),
		)
	}

	s.updateCache(userID, quoteID, true)

	return nil
}

// RemoveFavorite unmarks a quote. Removing an absent favorite succeeds
// without error.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, quoteID string) error {
	userID, err := s.requireUser(ctx, "remove favorite")
	if err != nil {
		return err
	}

	if quoteID == "" {
		return fmt.Errorf("validating input: %w", domain.NewValidationError("quote_id", "cannot be empty"))
	}

	if err := s.store.Delete(ctx, userID, quoteID); err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}

	s.updateCache(userID, quoteID, false)

	return nil
}

// idsForUser returns the favorite id set, refreshing the cache when the
// entry is missing or older than the TTL.
func (s *FavoriteService) idsForUser(ctx context.Context, userID string) (domain.QuoteIDSet, error) {
	s.mu.Lock()
	entry, ok := s.cache[userID]
	if ok && s.now().Sub(entry.fetchedAt) < s.cacheTTL {
		ids := maps.Clone(entry.ids)
		s.mu.Unlock()

		return ids, nil
	}
	s.mu.Unlock()

	ids, err := s.store.ListIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[userID] = favoriteCacheEntry{ids: maps.Clone(ids), fetchedAt: s.now()}
	s.mu.Unlock()

	return ids, nil
}

// updateCache folds a confirmed mutation into the cached set so reads
// inside the TTL window see it. Copy-on-write keeps previously handed
// out sets stable.
func (s *FavoriteService) updateCache(userID, quoteID string, favorited bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[userID]
	if !ok {
		return
	}

	ids := maps.Clone(entry.ids)
	if favorited {
		ids.Add(quoteID)
	} else {
		ids.Remove(quoteID)
	}

	s.cache[userID] = favoriteCacheEntry{ids: ids, fetchedAt: entry.fetchedAt}
}

// requireUser resolves the session or fails with ErrUnauthenticated.
func (s *FavoriteService) requireUser(ctx context.Context, operation string) (string, error) {
	userID, ok := s.session.CurrentUserID(ctx)
	if !ok {
		return "", domain.NewUnauthenticatedError(operation)
	}

	return userID, nil
}
