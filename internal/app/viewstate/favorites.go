package viewstate

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/quotevault/quotevault/internal/domain"
)

// FavoritesSnapshot is the render-ready state of the favorites screen.
type FavoritesSnapshot struct {
	Quotes  []domain.Quote
	State   MutationState
	Err     error
	LoadErr error
}

// Favorites orchestrates the favorites screen. The whole list is the
// mutable fact: removing a favorite patches the list optimistically and
// restores it when the remote call fails.
type Favorites struct {
	service FavoriteService
	logger  *slog.Logger

	mu      sync.Mutex
	life    lifecycle
	list    Mutation[[]domain.Quote]
	loadErr error
}

// NewFavorites creates the favorites screen orchestrator.
func NewFavorites(service FavoriteService, logger *slog.Logger) *Favorites {
	if logger == nil {
		logger = slog.Default()
	}

	return &Favorites{
		service: service,
		logger:  logger.With(slog.String("component", "viewstate.Favorites")),
	}
}

// Load fetches the authoritative favorite list, replacing any local
// patches.
func (f *Favorites) Load(ctx context.Context) error {
	gen := f.life.next()

	quotes, err := f.service.ListFavorites(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.life.current(gen) {
		f.logger.DebugContext(ctx, "discarding stale favorites load", slog.Uint64("generation", gen))

		return nil
	}

	f.loadErr = err
	if err != nil {
		return fmt.Errorf("loading favorites screen: %w", err)
	}

	f.list = Confirmed(quotes)

	return nil
}

// Remove unfavorites a quote. The quote leaves the rendered list
// immediately; a failed remote call puts it back and surfaces the error.
// Removing a quote that is not on the list succeeds without a call.
func (f *Favorites) Remove(ctx context.Context, quoteID string) error {
	f.mu.Lock()

	current := f.list.Value()
	idx := slices.IndexFunc(current, func(q domain.Quote) bool { return q.ID == quoteID })
	if idx < 0 {
		f.mu.Unlock()

		return nil
	}

	removed := current[idx]
	f.list = f.list.Begin(slices.Delete(slices.Clone(current), idx, idx+1))
	f.mu.Unlock()

	err := f.service.RemoveFavorite(ctx, quoteID)

	f.mu.Lock()
	if f.life.open() {
		// Resolved against the list as it is now, not the snapshot from
		// above: a reload may have replaced it while the call was out.
		f.list = f.list.ResolveCurrent(
			func(list []domain.Quote) []domain.Quote { return dropQuote(list, quoteID) },
			func(list []domain.Quote) []domain.Quote { return restoreQuote(list, removed, idx) },
			err,
		)
	}
	f.mu.Unlock()

	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}

	return nil
}

// Acknowledge clears a surfaced removal failure.
func (f *Favorites) Acknowledge() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.list = f.list.Acknowledge()
}

// Snapshot returns the current render-ready state.
func (f *Favorites) Snapshot() FavoritesSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return FavoritesSnapshot{
		Quotes:  slices.Clone(f.list.Value()),
		State:   f.list.State(),
		Err:     f.list.Err(),
		LoadErr: f.loadErr,
	}
}

// Close tears the orchestrator down. In-flight results are discarded.
func (f *Favorites) Close() {
	f.life.close()
}
