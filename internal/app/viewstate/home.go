package viewstate

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/quotevault/quotevault/internal/domain"
)

// Section is one independently loaded slice of a screen. A failed
// section carries its error without poisoning its siblings.
type Section[T any] struct {
	Value T
	Err   error
}

// HomeSnapshot is the render-ready state of the home screen.
type HomeSnapshot struct {
	QuoteOfTheDay Section[*domain.Quote]
	Recent        Section[[]domain.Quote]
	Loaded        bool
}

// Home orchestrates the home screen: the quote of the day and the most
// recent catalog page, loaded in parallel with independent outcomes.
type Home struct {
	catalog CatalogService
	logger  *slog.Logger

	mu     sync.Mutex
	life   lifecycle
	daily  Section[*domain.Quote]
	recent Section[[]domain.Quote]
	loaded bool
}

// NewHome creates the home screen orchestrator.
func NewHome(catalog CatalogService, logger *slog.Logger) *Home {
	if logger == nil {
		logger = slog.Default()
	}

	return &Home{
		catalog: catalog,
		logger:  logger.With(slog.String("component", "viewstate.Home")),
	}
}

// Load fetches both sections concurrently. One section failing does not
// fail the other; each section records its own outcome. Load itself only
// reports nothing when the result landed on a stale generation.
func (h *Home) Load(ctx context.Context) {
	gen := h.life.next()

	var (
		daily  Section[*domain.Quote]
		recent Section[[]domain.Quote]
	)

	var g errgroup.Group

	g.Go(func() error {
		daily.Value, daily.Err = h.catalog.RandomQuote(ctx)

		return nil
	})

	g.Go(func() error {
		recent.Value, recent.Err = h.catalog.ListQuotes(ctx, "", 0)

		return nil
	})

	// Outcomes are recorded per section, never as a group error.
	_ = g.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.life.current(gen) {
		h.logger.DebugContext(ctx, "discarding stale home load", slog.Uint64("generation", gen))

		return
	}

	h.daily = daily
	h.recent = recent
	h.loaded = true
}

// Snapshot returns the current render-ready state.
func (h *Home) Snapshot() HomeSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	return HomeSnapshot{
		QuoteOfTheDay: h.daily,
		Recent:        h.recent,
		Loaded:        h.loaded,
	}
}

// Close tears the orchestrator down. In-flight loads resolve into the void.
func (h *Home) Close() {
	h.life.close()
}
