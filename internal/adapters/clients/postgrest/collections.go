package postgrest

import (
	"context"

	"github.com/quotevault/quotevault/internal/domain"
)

// orderNewestFirst lists collections most recently created first.
const orderNewestFirst = "created_at.desc"

// CollectionStore is the adapter for the collections and collection_quotes
// tables. It implements ports.CollectionStore.
type CollectionStore struct {
	s *Store
}

// Collections returns the collections table adapter.
func (s *Store) Collections() CollectionStore {
	return CollectionStore{s: s}
}

// ListByUser implements ports.CollectionStore.
func (st CollectionStore) ListByUser(ctx context.Context, userID string) ([]domain.Collection, error) {
	q := newQuery().selectCols("*").eq("user_id", userID).order(orderNewestFirst)

	var rows []collectionRow
	if err := getJSON(ctx, st.s, path(tableCollections, q), "list collections", &rows); err != nil {
		return nil, err
	}

	collections := make([]domain.Collection, 0, len(rows))
	for i := range rows {
		collections = append(collections, rows[i].toDomain())
	}

	return collections, nil
}

// GetByID implements ports.CollectionStore. The user_id filter makes a
// collection owned by someone else indistinguishable from one that does
// not exist.
func (st CollectionStore) GetByID(ctx context.Context, userID, collectionID string) (*domain.Collection, error) {
	q := newQuery().selectCols("*").eq("id", collectionID).eq("user_id", userID).limit(1)

	var rows []collectionRow
	if err := getJSON(ctx, st.s, path(tableCollections, q), "get collection", &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, domain.NewNotFoundError("collection", collectionID)
	}

	collection := rows[0].toDomain()

	return &collection, nil
}

// ListItems implements ports.CollectionStore.
func (st CollectionStore) ListItems(ctx context.Context, collectionID string) ([]domain.CollectionItem, error) {
	q := newQuery().selectCols("*").eq("collection_id", collectionID)

	var rows []collectionQuoteRow
	if err := getJSON(ctx, st.s, path(tableCollectionQuotes, q), "list collection items", &rows); err != nil {
		return nil, err
	}

	items := make([]domain.CollectionItem, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toDomain())
	}

	return items, nil
}

// Insert implements ports.CollectionStore and returns the stored row with
// its backend-assigned id and timestamp.
func (st CollectionStore) Insert(ctx context.Context, userID, name, description string) (*domain.Collection, error) {
	payload := collectionInsert{UserID: userID, Name: name, Description: description}

	var rows []collectionRow
	if err := postJSON(ctx, st.s, path(tableCollections, nil), payload, "create collection", &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, domain.NewUnavailableError(serviceName, "create collection returned no row")
	}

	collection := rows[0].toDomain()

	return &collection, nil
}

// Delete implements ports.CollectionStore. The schema has no cascade on
// collection_quotes, so membership rows go first; repeating the sequence
// after a failure between the two steps is safe.
func (st CollectionStore) Delete(ctx context.Context, userID, collectionID string) error {
	itemsQ := newQuery().eq("collection_id", collectionID)
	if err := st.s.delete(ctx, path(tableCollectionQuotes, itemsQ), "delete collection items"); err != nil {
		return err
	}

	q := newQuery().eq("id", collectionID).eq("user_id", userID)

	return st.s.delete(ctx, path(tableCollections, q), "delete collection")
}

// InsertItem implements ports.CollectionStore. A duplicate membership
// surfaces as domain.ErrConflict, which callers fold into success.
func (st CollectionStore) InsertItem(ctx context.Context, collectionID, quoteID string) error {
	payload := collectionQuoteInsert{CollectionID: collectionID, QuoteID: quoteID}

	return postJSON[struct{}](ctx, st.s, path(tableCollectionQuotes, nil), payload, "add quote to collection", nil)
}

// DeleteItem implements ports.CollectionStore. Removing an absent
// membership matches zero rows and is not an error.
func (st CollectionStore) DeleteItem(ctx context.Context, collectionID, quoteID string) error {
	q := newQuery().eq("collection_id", collectionID).eq("quote_id", quoteID)

	return st.s.delete(ctx, path(tableCollectionQuotes, q), "remove quote from collection")
}
