package viewstate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/mocks"
)

func newDetailResult(quotes ...domain.Quote) *domain.CollectionWithQuotes {
	return &domain.CollectionWithQuotes{
		Collection: domain.Collection{ID: "c1", UserID: "u1", Name: "Stoics"},
		Quotes:     quotes,
	}
}

func TestCollectionDetail_LoadDerivesCount(t *testing.T) {
	collections := mocks.NewMockCollectionService(t)
	collections.EXPECT().GetCollectionWithQuotes(mock.Anything, "c1").
		Return(newDetailResult(domain.Quote{ID: "q1"}, domain.Quote{ID: "q2"}), nil)

	detail := NewCollectionDetail(collections, mocks.NewMockFavoriteService(t), "c1", nil)

	require.NoError(t, detail.Load(context.Background()))

	snap := detail.Snapshot()
	assert.True(t, snap.Loaded)
	assert.Equal(t, "Stoics", snap.Collection.Name)
	assert.Equal(t, 2, snap.QuoteCount)
}

func TestCollectionDetail_RemoveQuoteOptimistic(t *testing.T) {
	collections := mocks.NewMockCollectionService(t)
	collections.EXPECT().GetCollectionWithQuotes(mock.Anything, "c1").
		Return(newDetailResult(domain.Quote{ID: "q1"}, domain.Quote{ID: "q2"}), nil)
	collections.EXPECT().RemoveQuoteFromCollection(mock.Anything, "c1", "q1").Return(nil)

	detail := NewCollectionDetail(collections, mocks.NewMockFavoriteService(t), "c1", nil)
	require.NoError(t, detail.Load(context.Background()))

	require.NoError(t, detail.RemoveQuote(context.Background(), "q1"))

	snap := detail.Snapshot()
	assert.Equal(t, 1, snap.QuoteCount)
	assert.Equal(t, "q2", snap.Quotes[0].ID)
	assert.Equal(t, StateConfirmed, snap.State)
}

func TestCollectionDetail_RemoveFailureRestoresMembership(t *testing.T) {
	collections := mocks.NewMockCollectionService(t)
	collections.EXPECT().GetCollectionWithQuotes(mock.Anything, "c1").
		Return(newDetailResult(domain.Quote{ID: "q1"}, domain.Quote{ID: "q2"}), nil)
	collections.EXPECT().RemoveQuoteFromCollection(mock.Anything, "c1", "q1").
		Return(domain.NewUnavailableError("postgrest", "down"))

	detail := NewCollectionDetail(collections, mocks.NewMockFavoriteService(t), "c1", nil)
	require.NoError(t, detail.Load(context.Background()))

	err := detail.RemoveQuote(context.Background(), "q1")
	require.Error(t, err)

	snap := detail.Snapshot()
	assert.Equal(t, 2, snap.QuoteCount, "failed removal must restore the member")
	assert.Equal(t, StateFailed, snap.State)

	detail.Acknowledge()
	assert.Equal(t, StateConfirmed, detail.Snapshot().State)
}

func TestCollectionDetail_RemoveFailureAfterReloadKeepsFreshList(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	collections := mocks.NewMockCollectionService(t)
	collections.EXPECT().GetCollectionWithQuotes(mock.Anything, "c1").
		Return(newDetailResult(domain.Quote{ID: "q1"}, domain.Quote{ID: "q2"}), nil).Once()
	collections.EXPECT().GetCollectionWithQuotes(mock.Anything, "c1").
		Return(newDetailResult(domain.Quote{ID: "q1"}, domain.Quote{ID: "q2"}, domain.Quote{ID: "q3"}), nil).Once()
	collections.EXPECT().RemoveQuoteFromCollection(mock.Anything, "c1", "q2").
		RunAndReturn(func(context.Context, string, string) error {
			close(started)
			<-release

			return domain.NewUnavailableError("postgrest", "down")
		})

	detail := NewCollectionDetail(collections, mocks.NewMockFavoriteService(t), "c1", nil)
	require.NoError(t, detail.Load(context.Background()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = detail.RemoveQuote(context.Background(), "q2")
	}()

	<-started
	require.NoError(t, detail.Load(context.Background()))
	close(release)
	<-done

	snap := detail.Snapshot()
	assert.Equal(t, 3, snap.QuoteCount, "the reloaded membership must survive the failed removal")
	assert.Equal(t, StateFailed, snap.State)
	require.Error(t, snap.Err)
}

func TestCollectionDetail_RemoveNonMemberSkipsCall(t *testing.T) {
	collections := mocks.NewMockCollectionService(t)
	collections.EXPECT().GetCollectionWithQuotes(mock.Anything, "c1").
		Return(newDetailResult(domain.Quote{ID: "q1"}), nil)

	// No RemoveQuoteFromCollection expectation.
	detail := NewCollectionDetail(collections, mocks.NewMockFavoriteService(t), "c1", nil)
	require.NoError(t, detail.Load(context.Background()))

	require.NoError(t, detail.RemoveQuote(context.Background(), "other"))
}

func TestCollectionDetail_ToggleFavoriteKeepsMembership(t *testing.T) {
	collections := mocks.NewMockCollectionService(t)
	collections.EXPECT().GetCollectionWithQuotes(mock.Anything, "c1").
		Return(newDetailResult(domain.Quote{ID: "q1", IsFavorite: true}), nil)

	favorites := mocks.NewMockFavoriteService(t)
	favorites.EXPECT().RemoveFavorite(mock.Anything, "q1").Return(nil)

	detail := NewCollectionDetail(collections, favorites, "c1", nil)
	require.NoError(t, detail.Load(context.Background()))

	require.NoError(t, detail.ToggleFavorite(context.Background(), "q1"))

	snap := detail.Snapshot()
	assert.Equal(t, 1, snap.QuoteCount, "unfavoriting must not remove the member")
	assert.False(t, snap.Quotes[0].IsFavorite)
}

func TestCollectionDetail_LoadFailure(t *testing.T) {
	collections := mocks.NewMockCollectionService(t)
	collections.EXPECT().GetCollectionWithQuotes(mock.Anything, "c1").
		Return(nil, domain.NewNotFoundError("collection", "c1"))

	detail := NewCollectionDetail(collections, mocks.NewMockFavoriteService(t), "c1", nil)

	err := detail.Load(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	snap := detail.Snapshot()
	assert.False(t, snap.Loaded)
	require.Error(t, snap.LoadErr)
}
