package app

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/mocks"
)

func authedSession(t *testing.T, userID string) *mocks.MockSessionProvider {
	t.Helper()

	session := mocks.NewMockSessionProvider(t)
	session.EXPECT().CurrentUserID(mock.Anything).Return(userID, true).Maybe()
	session.EXPECT().IsAuthenticated(mock.Anything).Return(true).Maybe()

	return session
}

func anonSession(t *testing.T) *mocks.MockSessionProvider {
	t.Helper()

	session := mocks.NewMockSessionProvider(t)
	session.EXPECT().CurrentUserID(mock.Anything).Return("", false).Maybe()
	session.EXPECT().IsAuthenticated(mock.Anything).Return(false).Maybe()

	return session
}

func TestAddFavorite_Success(t *testing.T) {
	store := mocks.NewMockFavoriteStore(t)
	store.EXPECT().Insert(mock.Anything, "u1", "q1").Return(nil)

	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:   store,
		Session: authedSession(t, "u1"),
	})

	err := svc.AddFavorite(context.Background(), "q1")
	require.NoError(t, err)
}

func TestAddFavorite_DuplicateIsSuccess(t *testing.T) {
	store := mocks.NewMockFavoriteStore(t)
	store.EXPECT().Insert(mock.Anything, "u1", "q1").
		Return(domain.NewConflictError("user_favorites", "duplicate key"))

	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:   store,
		Session: authedSession(t, "u1"),
	})

	err := svc.AddFavorite(context.Background(), "q1")
	require.NoError(t, err, "a favorite that already exists is the state the caller asked for")
}

func TestAddFavorite_RequiresSession(t *testing.T) {
	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:   mocks.NewMockFavoriteStore(t),
		Session: anonSession(t),
	})

	err := svc.AddFavorite(context.Background(), "q1")
	require.Error(t, err)
	assert.True(t, domain.IsUnauthenticated(err))
}

func TestAddFavorite_StoreFailure(t *testing.T) {
	store := mocks.NewMockFavoriteStore(t)
	store.EXPECT().Insert(mock.Anything, "u1", "q1").
		Return(domain.NewUnavailableError("postgrest", "timeout"))

	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:   store,
		Session: authedSession(t, "u1"),
	})

	err := svc.AddFavorite(context.Background(), "q1")
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestRemoveFavorite_AbsentIsSuccess(t *testing.T) {
	store := mocks.NewMockFavoriteStore(t)
	store.EXPECT().Delete(mock.Anything, "u1", "q1").Return(nil)

	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:   store,
		Session: authedSession(t, "u1"),
	})

	err := svc.RemoveFavorite(context.Background(), "q1")
	require.NoError(t, err)
}

func TestListFavorites_DropsDanglingMarks(t *testing.T) {
	store := mocks.NewMockFavoriteStore(t)
	store.EXPECT().ListIDs(mock.Anything, "u1").
		Return(domain.NewQuoteIDSet("q1", "gone"), nil)

	quotes := mocks.NewMockQuoteStore(t)
	quotes.EXPECT().GetByIDs(mock.Anything, mock.MatchedBy(func(ids []string) bool {
		sorted := append([]string(nil), ids...)
		sort.Strings(sorted)
		return len(sorted) == 2 && sorted[0] == "gone" && sorted[1] == "q1"
	})).Return([]domain.Quote{{ID: "q1", Text: "t"}}, nil)

	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:   store,
		Quotes:  quotes,
		Session: authedSession(t, "u1"),
	})

	favorites, err := svc.ListFavorites(context.Background())
	require.NoError(t, err)

	require.Len(t, favorites, 1)
	assert.Equal(t, "q1", favorites[0].ID)
	assert.True(t, favorites[0].IsFavorite)
}

func TestListFavorites_EmptySetSkipsHydration(t *testing.T) {
	store := mocks.NewMockFavoriteStore(t)
	store.EXPECT().ListIDs(mock.Anything, "u1").Return(domain.QuoteIDSet{}, nil)

	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:   store,
		Quotes:  mocks.NewMockQuoteStore(t),
		Session: authedSession(t, "u1"),
	})

	favorites, err := svc.ListFavorites(context.Background())
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoriteIDs_CachedWithinTTL(t *testing.T) {
	store := mocks.NewMockFavoriteStore(t)
	store.EXPECT().ListIDs(mock.Anything, "u1").
		Return(domain.NewQuoteIDSet("q1"), nil).Once()

	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:    store,
		Session:  authedSession(t, "u1"),
		CacheTTL: time.Minute,
	})

	first, err := svc.FavoriteIDs(context.Background())
	require.NoError(t, err)

	second, err := svc.FavoriteIDs(context.Background())
	require.NoError(t, err)

	assert.True(t, first.Contains("q1"))
	assert.True(t, second.Contains("q1"))
}

func TestFavoriteIDs_RefetchesAfterTTL(t *testing.T) {
	store := mocks.NewMockFavoriteStore(t)
	store.EXPECT().ListIDs(mock.Anything, "u1").
		Return(domain.NewQuoteIDSet("q1"), nil).Twice()

	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:    store,
		Session:  authedSession(t, "u1"),
		CacheTTL: time.Minute,
	})

	current := time.Now()
	svc.now = func() time.Time { return current }

	_, err := svc.FavoriteIDs(context.Background())
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)

	_, err = svc.FavoriteIDs(context.Background())
	require.NoError(t, err)
}

func TestFavoriteIDs_AnonymousIsEmptySetNotError(t *testing.T) {
	// No ListIDs expectation: no session means no query.
	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:   mocks.NewMockFavoriteStore(t),
		Session: anonSession(t),
	})

	ids, err := svc.FavoriteIDs(context.Background())
	require.NoError(t, err, "an anonymous caller simply has no favorites")
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestIsFavorite_AnonymousIsFalse(t *testing.T) {
	// No Exists expectation: no session means no query.
	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:   mocks.NewMockFavoriteStore(t),
		Session: anonSession(t),
	})

	favorited, err := svc.IsFavorite(context.Background(), "q1")
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteMutation_UpdatesCachedSet(t *testing.T) {
	store := mocks.NewMockFavoriteStore(t)
	store.EXPECT().ListIDs(mock.Anything, "u1").
		Return(domain.NewQuoteIDSet("q1"), nil).Once()
	store.EXPECT().Insert(mock.Anything, "u1", "q2").Return(nil)
	store.EXPECT().Delete(mock.Anything, "u1", "q1").Return(nil)

	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:    store,
		Session:  authedSession(t, "u1"),
		CacheTTL: time.Minute,
	})

	_, err := svc.FavoriteIDs(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.AddFavorite(context.Background(), "q2"))
	require.NoError(t, svc.RemoveFavorite(context.Background(), "q1"))

	ids, err := svc.FavoriteIDs(context.Background())
	require.NoError(t, err)

	assert.True(t, ids.Contains("q2"))
	assert.False(t, ids.Contains("q1"))
}

func TestOverlayIDs_AnonymousIsNil(t *testing.T) {
	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:   mocks.NewMockFavoriteStore(t),
		Session: anonSession(t),
	})

	assert.Nil(t, svc.OverlayIDs(context.Background()))
}

func TestOverlayIDs_FetchFailureDegradesToNil(t *testing.T) {
	store := mocks.NewMockFavoriteStore(t)
	store.EXPECT().ListIDs(mock.Anything, "u1").
		Return(nil, domain.NewUnavailableError("postgrest", "down"))

	svc := NewFavoriteService(FavoriteServiceConfig{
		Store:   store,
		Session: authedSession(t, "u1"),
	})

	assert.Nil(t, svc.OverlayIDs(context.Background()))
}
