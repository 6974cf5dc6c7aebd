// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/quotevault/quotevault/internal/domain"
)

// SessionProvider exposes the current authenticated identity. The core
// never manages login, logout, or token refresh; it only reads the
// session. Implementations typically derive the session from the
// request context.
type SessionProvider interface {
	// CurrentUserID returns the authenticated user's id, or ok=false
	// when no session is active.
	CurrentUserID(ctx context.Context) (id string, ok bool)

	// IsAuthenticated reports whether a session is active.
	IsAuthenticated(ctx context.Context) bool
}

// QuoteStore reads the user-agnostic quote catalog from the remote
// relational store. All returned quotes have IsFavorite unset; the
// favorite overlay is applied by the application layer.
type QuoteStore interface {
	// List returns at most pageSize quotes starting at offset
	// page*pageSize, ordered by id so paging stays stable under
	// concurrent inserts. An empty category or domain.CategoryAll
	// applies no category filter.
	List(ctx context.Context, category string, page, pageSize uint) ([]domain.Quote, error)

	// Search returns quotes whose text or author contains the query,
	// case-insensitively.
	Search(ctx context.Context, query string) ([]domain.Quote, error)

	// GetByID returns a single quote.
	// Returns domain.ErrNotFound if zero rows match.
	GetByID(ctx context.Context, id string) (*domain.Quote, error)

	// GetByIDs batch-fetches the quotes whose ids are in the set.
	// Ids that no longer resolve are simply absent from the result;
	// callers drop such dangling references rather than erroring.
	// An empty id list returns an empty slice without issuing a query.
	GetByIDs(ctx context.Context, ids []string) ([]domain.Quote, error)

	// PickRandom returns one quote chosen uniformly at random from the
	// full corpus. Implementations should prefer server-side random
	// selection; a client-side approximation over the first page is a
	// biased fallback and must be documented as such.
	PickRandom(ctx context.Context) (*domain.Quote, error)
}

// FavoriteStore persists favorite marks in the remote store. The local
// view of this set is a weak, best-effort reference to server truth,
// rebuilt on demand.
type FavoriteStore interface {
	// ListIDs returns every quote id the user has favorited.
	ListIDs(ctx context.Context, userID string) (domain.QuoteIDSet, error)

	// Exists reports whether (userID, quoteID) is marked.
	Exists(ctx context.Context, userID, quoteID string) (bool, error)

	// Insert creates the mark. Returns domain.ErrConflict when the mark
	// already exists; callers treat that as success.
	Insert(ctx context.Context, userID, quoteID string) error

	// Delete removes the mark. Deleting an absent mark is not an error.
	Delete(ctx context.Context, userID, quoteID string) error
}

// CollectionStore persists collections and their memberships in the
// remote store. Every operation is scoped to the owning user by the
// implementation (row-level ownership filtering).
type CollectionStore interface {
	// ListByUser returns the user's collections.
	ListByUser(ctx context.Context, userID string) ([]domain.Collection, error)

	// GetByID returns the collection if it exists and is owned by userID.
	// Returns domain.ErrNotFound otherwise; not-owned reads the same
	// as absent.
	GetByID(ctx context.Context, userID, collectionID string) (*domain.Collection, error)

	// ListItems returns the membership rows of a collection.
	ListItems(ctx context.Context, collectionID string) ([]domain.CollectionItem, error)

	// Insert creates a collection and returns the stored row
	// (with backend-assigned id and timestamp).
	Insert(ctx context.Context, userID, name, description string) (*domain.Collection, error)

	// Delete removes the collection and its items. Implementations
	// without backend cascade perform an explicit two-step delete.
	Delete(ctx context.Context, userID, collectionID string) error

	// InsertItem adds a quote to a collection. Returns
	// domain.ErrConflict for an existing membership; callers treat that
	// as success.
	InsertItem(ctx context.Context, collectionID, quoteID string) error

	// DeleteItem removes a quote from a collection. Removing an absent
	// membership is not an error.
	DeleteItem(ctx context.Context, collectionID, quoteID string) error
}

// Notifier delivers a quote to the user outside the normal request
// path (e.g. the daily quote job). Delivery transport and its retry
// policy belong to the implementation.
type Notifier interface {
	// Notify delivers the quote. Returns domain.ErrUnavailable when the
	// delivery channel is unreachable.
	Notify(ctx context.Context, quote *domain.Quote) error
}
