package viewstate

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/quotevault/quotevault/internal/domain"
)

// CollectionDetailSnapshot is the render-ready state of one collection.
// QuoteCount is derived from the hydrated quotes, never stored.
type CollectionDetailSnapshot struct {
	Collection domain.Collection
	Quotes     []domain.Quote
	QuoteCount int
	State      MutationState
	Err        error
	LoadErr    error
	Loaded     bool
}

// CollectionDetail orchestrates a single collection's screen: the
// hydrated member quotes, optimistic quote removal, and optimistic
// favorite toggles on the members.
type CollectionDetail struct {
	collections  CollectionService
	favorites    FavoriteService
	collectionID string
	logger       *slog.Logger

	mu         sync.Mutex
	life       lifecycle
	collection domain.Collection
	quotes     Mutation[[]domain.Quote]
	marks      favoriteMarks
	loaded     bool
	loadErr    error
}

// NewCollectionDetail creates the orchestrator for one collection.
func NewCollectionDetail(collections CollectionService, favorites FavoriteService, collectionID string, logger *slog.Logger) *CollectionDetail {
	if logger == nil {
		logger = slog.Default()
	}

	return &CollectionDetail{
		collections:  collections,
		favorites:    favorites,
		collectionID: collectionID,
		logger: logger.With(
			slog.String("component", "viewstate.CollectionDetail"),
			slog.String("collection_id", collectionID),
		),
		marks: newFavoriteMarks(),
	}
}

// Load fetches the collection with its hydrated quotes.
func (c *CollectionDetail) Load(ctx context.Context) error {
	gen := c.life.next()

	result, err := c.collections.GetCollectionWithQuotes(ctx, c.collectionID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.life.current(gen) {
		c.logger.DebugContext(ctx, "discarding stale collection load", slog.Uint64("generation", gen))

		return nil
	}

	c.loadErr = err
	if err != nil {
		return fmt.Errorf("loading collection screen: %w", err)
	}

	c.collection = result.Collection
	c.quotes = Confirmed(result.Quotes)
	c.marks.reset(result.Quotes)
	c.loaded = true

	return nil
}

// RemoveQuote takes a quote out of the collection. The quote leaves the
// rendered list immediately; a failed remote call puts it back and
// surfaces the error. Removing a non-member succeeds without a call.
func (c *CollectionDetail) RemoveQuote(ctx context.Context, quoteID string) error {
	c.mu.Lock()

	current := c.quotes.Value()
	idx := slices.IndexFunc(current, func(q domain.Quote) bool { return q.ID == quoteID })
	if idx < 0 {
		c.mu.Unlock()

		return nil
	}

	removed := current[idx]
	c.quotes = c.quotes.Begin(slices.Delete(slices.Clone(current), idx, idx+1))
	c.mu.Unlock()

	err := c.collections.RemoveQuoteFromCollection(ctx, c.collectionID, quoteID)

	c.mu.Lock()
	if c.life.open() {
		// Resolved against the list as it is now, not the snapshot from
		// above: a reload may have replaced it while the call was out.
		c.quotes = c.quotes.ResolveCurrent(
			func(list []domain.Quote) []domain.Quote { return dropQuote(list, quoteID) },
			func(list []domain.Quote) []domain.Quote { return restoreQuote(list, removed, idx) },
			err,
		)
	}
	c.mu.Unlock()

	if err != nil {
		return fmt.Errorf("removing quote from collection: %w", err)
	}

	return nil
}

// ToggleFavorite flips the favorite flag of a member quote, optimistic
// first with rollback on failure. Membership is unaffected.
func (c *CollectionDetail) ToggleFavorite(ctx context.Context, quoteID string) error {
	c.mu.Lock()
	target, ok := c.marks.begin(quoteID)
	c.mu.Unlock()

	if !ok {
		return fmt.Errorf("toggling favorite: %w", domain.NewNotFoundError("quote", quoteID))
	}

	var err error
	if target {
		err = c.favorites.AddFavorite(ctx, quoteID)
	} else {
		err = c.favorites.RemoveFavorite(ctx, quoteID)
	}

	c.mu.Lock()
	if c.life.open() {
		c.marks.resolve(quoteID, target, err)
	}
	c.mu.Unlock()

	if err != nil {
		return fmt.Errorf("toggling favorite: %w", err)
	}

	return nil
}

// Acknowledge clears a surfaced removal failure.
func (c *CollectionDetail) Acknowledge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.quotes = c.quotes.Acknowledge()
}

// AcknowledgeToggle clears a surfaced toggle failure on a quote.
func (c *CollectionDetail) AcknowledgeToggle(quoteID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.marks.acknowledge(quoteID)
}

// Snapshot returns the current render-ready state.
func (c *CollectionDetail) Snapshot() CollectionDetailSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	quotes := c.marks.apply(c.quotes.Value())

	return CollectionDetailSnapshot{
		Collection: c.collection,
		Quotes:     quotes,
		QuoteCount: len(quotes),
		State:      c.quotes.State(),
		Err:        c.quotes.Err(),
		LoadErr:    c.loadErr,
		Loaded:     c.loaded,
	}
}

// Close tears the orchestrator down. In-flight results are discarded.
func (c *CollectionDetail) Close() {
	c.life.close()
}
