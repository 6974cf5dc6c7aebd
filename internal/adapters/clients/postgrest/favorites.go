package postgrest

import (
	"context"

	"github.com/quotevault/quotevault/internal/domain"
)

// FavoriteStore is the user_favorites table adapter. It implements
// ports.FavoriteStore.
type FavoriteStore struct {
	s *Store
}

// Favorites returns the user_favorites table adapter.
func (s *Store) Favorites() FavoriteStore {
	return FavoriteStore{s: s}
}

// ListIDs implements ports.FavoriteStore.
func (st FavoriteStore) ListIDs(ctx context.Context, userID string) (domain.QuoteIDSet, error) {
	q := newQuery().selectCols("quote_id").eq("user_id", userID)

	var rows []favoriteRow
	if err := getJSON(ctx, st.s, path(tableUserFavorites, q), "list favorite ids", &rows); err != nil {
		return nil, err
	}

	set := make(domain.QuoteIDSet, len(rows))
	for i := range rows {
		set.Add(rows[i].QuoteID)
	}

	return set, nil
}

// Exists implements ports.FavoriteStore.
func (st FavoriteStore) Exists(ctx context.Context, userID, quoteID string) (bool, error) {
	q := newQuery().selectCols("quote_id").eq("user_id", userID).eq("quote_id", quoteID).limit(1)

	var rows []favoriteRow
	if err := getJSON(ctx, st.s, path(tableUserFavorites, q), "check favorite", &rows); err != nil {
		return false, err
	}

	return len(rows) > 0, nil
}

// Insert implements ports.FavoriteStore. A duplicate insert surfaces as
// domain.ErrConflict, which callers fold into success.
func (st FavoriteStore) Insert(ctx context.Context, userID, quoteID string) error {
	payload := favoriteInsert{UserID: userID, QuoteID: quoteID}

	return postJSON[struct{}](ctx, st.s, path(tableUserFavorites, nil), payload, "add favorite", nil)
}

// Delete implements ports.FavoriteStore. Deleting an absent mark matches
// zero rows and is not an error.
func (st FavoriteStore) Delete(ctx context.Context, userID, quoteID string) error {
	q := newQuery().eq("user_id", userID).eq("quote_id", quoteID)

	return st.s.delete(ctx, path(tableUserFavorites, q), "remove favorite")
}
