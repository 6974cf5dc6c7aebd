package viewstate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/quotevault/quotevault/internal/domain"
)

// BrowseMode distinguishes category browsing from search results.
type BrowseMode int

const (
	// ModeCategory shows a paged category listing.
	ModeCategory BrowseMode = iota

	// ModeSearch shows an unpaged search result.
	ModeSearch
)

// BrowseSnapshot is the render-ready state of the browse screen. Quotes
// carry the optimistic favorite flags.
type BrowseSnapshot struct {
	Mode       BrowseMode
	Category   string
	Query      string
	Quotes     []domain.Quote
	EndReached bool
	Err        error
}

// Browse orchestrates the browse screen: category listings with paged
// load-more, search, and optimistic favorite toggles.
type Browse struct {
	catalog   CatalogService
	favorites FavoriteService
	logger    *slog.Logger

	mu         sync.Mutex
	life       lifecycle
	mode       BrowseMode
	category   string
	query      string
	page       uint
	quotes     []domain.Quote
	endReached bool
	loadErr    error
	marks      favoriteMarks
}

// NewBrowse creates the browse screen orchestrator, initially on the
// unfiltered category.
func NewBrowse(catalog CatalogService, favorites FavoriteService, logger *slog.Logger) *Browse {
	if logger == nil {
		logger = slog.Default()
	}

	return &Browse{
		catalog:   catalog,
		favorites: favorites,
		logger:    logger.With(slog.String("component", "viewstate.Browse")),
		category:  domain.CategoryAll,
		marks:     newFavoriteMarks(),
	}
}

// Load fetches the first page of the current category.
func (b *Browse) Load(ctx context.Context) error {
	b.mu.Lock()
	category := b.category
	b.mu.Unlock()

	return b.reload(ctx, ModeCategory, category, "")
}

// SelectCategory switches the category and reloads from the first page.
func (b *Browse) SelectCategory(ctx context.Context, category string) error {
	return b.reload(ctx, ModeCategory, category, "")
}

// Search switches to search results for the query.
func (b *Browse) Search(ctx context.Context, query string) error {
	return b.reload(ctx, ModeSearch, "", query)
}

// reload starts a new generation, fetches the first batch, and installs
// it unless a newer load or Close won the race.
func (b *Browse) reload(ctx context.Context, mode BrowseMode, category, query string) error {
	b.mu.Lock()
	gen := b.life.next()
	b.mode = mode
	b.category = category
	b.query = query
	b.mu.Unlock()

	var (
		quotes []domain.Quote
		err    error
	)

	if mode == ModeSearch {
		quotes, err = b.catalog.SearchQuotes(ctx, query)
	} else {
		quotes, err = b.catalog.ListQuotes(ctx, category, 0)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.life.current(gen) {
		b.logger.DebugContext(ctx, "discarding stale browse load", slog.Uint64("generation", gen))

		return nil
	}

	b.loadErr = err
	if err != nil {
		return fmt.Errorf("loading browse screen: %w", err)
	}

	b.page = 0
	b.quotes = quotes
	b.endReached = mode == ModeSearch || uint(len(quotes)) < b.catalog.PageSize()
	b.marks.reset(quotes)

	return nil
}

// LoadMore appends the next category page. It is a no-op in search mode
// or when the end of the catalog was reached.
func (b *Browse) LoadMore(ctx context.Context) error {
	b.mu.Lock()

	if b.mode == ModeSearch || b.endReached {
		b.mu.Unlock()

		return nil
	}

	gen := b.life.active()
	category := b.category
	next := b.page + 1
	b.mu.Unlock()

	quotes, err := b.catalog.ListQuotes(ctx, category, next)

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.life.current(gen) {
		return nil
	}

	b.loadErr = err
	if err != nil {
		return fmt.Errorf("loading more quotes: %w", err)
	}

	b.page = next
	b.quotes = append(b.quotes, quotes...)
	b.marks.seed(quotes)

	if uint(len(quotes)) < b.catalog.PageSize() {
		b.endReached = true
	}

	return nil
}

// ToggleFavorite flips the favorite flag of a visible quote. The flag is
// patched locally first, the remote call runs unlocked, and the outcome
// of the last completed call wins. On failure the flag reverts and the
// error is surfaced both here and on the mark.
func (b *Browse) ToggleFavorite(ctx context.Context, quoteID string) error {
	b.mu.Lock()
	target, ok := b.marks.begin(quoteID)
	b.mu.Unlock()

	if !ok {
		return fmt.Errorf("toggling favorite: %w", domain.NewNotFoundError("quote", quoteID))
	}

	var err error
	if target {
		err = b.favorites.AddFavorite(ctx, quoteID)
	} else {
		err = b.favorites.RemoveFavorite(ctx, quoteID)
	}

	b.mu.Lock()
	if b.life.open() {
		b.marks.resolve(quoteID, target, err)
	}
	b.mu.Unlock()

	if err != nil {
		return fmt.Errorf("toggling favorite: %w", err)
	}

	return nil
}

// ToggleState returns the mutation state of a quote's favorite flag.
func (b *Browse) ToggleState(quoteID string) (Mutation[bool], bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.marks.get(quoteID)
}

// AcknowledgeToggle clears a surfaced toggle failure on a quote.
func (b *Browse) AcknowledgeToggle(quoteID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.marks.acknowledge(quoteID)
}

// Categories returns the selectable categories.
func (b *Browse) Categories() []string {
	return b.catalog.Categories()
}

// Snapshot returns the current render-ready state.
func (b *Browse) Snapshot() BrowseSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	return BrowseSnapshot{
		Mode:       b.mode,
		Category:   b.category,
		Query:      b.query,
		Quotes:     b.marks.apply(b.quotes),
		EndReached: b.endReached,
		Err:        b.loadErr,
	}
}

// Close tears the orchestrator down. In-flight results are discarded.
func (b *Browse) Close() {
	b.life.close()
}
