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

func TestBrowse_LoadFirstPage(t *testing.T) {
	catalog := mocks.NewMockCatalogService(t)
	catalog.EXPECT().PageSize().Return(uint(2)).Maybe()
	catalog.EXPECT().ListQuotes(mock.Anything, domain.CategoryAll, uint(0)).
		Return([]domain.Quote{{ID: "q1", IsFavorite: true}, {ID: "q2"}}, nil)

	browse := NewBrowse(catalog, mocks.NewMockFavoriteService(t), nil)

	require.NoError(t, browse.Load(context.Background()))

	snap := browse.Snapshot()
	assert.Equal(t, ModeCategory, snap.Mode)
	assert.Equal(t, domain.CategoryAll, snap.Category)
	require.Len(t, snap.Quotes, 2)
	assert.True(t, snap.Quotes[0].IsFavorite)
	assert.False(t, snap.EndReached, "a full page means more may follow")
}

func TestBrowse_LoadMoreAppendsAndDetectsEnd(t *testing.T) {
	catalog := mocks.NewMockCatalogService(t)
	catalog.EXPECT().PageSize().Return(uint(2)).Maybe()
	catalog.EXPECT().ListQuotes(mock.Anything, domain.CategoryAll, uint(0)).
		Return([]domain.Quote{{ID: "q1"}, {ID: "q2"}}, nil)
	catalog.EXPECT().ListQuotes(mock.Anything, domain.CategoryAll, uint(1)).
		Return([]domain.Quote{{ID: "q3"}}, nil)

	browse := NewBrowse(catalog, mocks.NewMockFavoriteService(t), nil)

	require.NoError(t, browse.Load(context.Background()))
	require.NoError(t, browse.LoadMore(context.Background()))

	snap := browse.Snapshot()
	require.Len(t, snap.Quotes, 3)
	assert.Equal(t, "q3", snap.Quotes[2].ID)
	assert.True(t, snap.EndReached, "a short page ends the catalog")

	// Further LoadMore calls are no-ops after the end.
	require.NoError(t, browse.LoadMore(context.Background()))
}

func TestBrowse_SearchIsUnpaged(t *testing.T) {
	catalog := mocks.NewMockCatalogService(t)
	catalog.EXPECT().SearchQuotes(mock.Anything, "love").
		Return([]domain.Quote{{ID: "q1"}}, nil)

	browse := NewBrowse(catalog, mocks.NewMockFavoriteService(t), nil)

	require.NoError(t, browse.Search(context.Background(), "love"))

	snap := browse.Snapshot()
	assert.Equal(t, ModeSearch, snap.Mode)
	assert.Equal(t, "love", snap.Query)
	assert.True(t, snap.EndReached)

	// LoadMore must not fire in search mode.
	require.NoError(t, browse.LoadMore(context.Background()))
}

func TestBrowse_ToggleFavoriteOptimisticSuccess(t *testing.T) {
	catalog := mocks.NewMockCatalogService(t)
	catalog.EXPECT().PageSize().Return(uint(20)).Maybe()
	catalog.EXPECT().ListQuotes(mock.Anything, domain.CategoryAll, uint(0)).
		Return([]domain.Quote{{ID: "q1"}}, nil)

	favorites := mocks.NewMockFavoriteService(t)
	favorites.EXPECT().AddFavorite(mock.Anything, "q1").Return(nil)

	browse := NewBrowse(catalog, favorites, nil)
	require.NoError(t, browse.Load(context.Background()))

	require.NoError(t, browse.ToggleFavorite(context.Background(), "q1"))

	snap := browse.Snapshot()
	assert.True(t, snap.Quotes[0].IsFavorite)

	mark, ok := browse.ToggleState("q1")
	require.True(t, ok)
	assert.Equal(t, StateConfirmed, mark.State())
}

func TestBrowse_ToggleFavoriteRollsBackOnFailure(t *testing.T) {
	catalog := mocks.NewMockCatalogService(t)
	catalog.EXPECT().PageSize().Return(uint(20)).Maybe()
	catalog.EXPECT().ListQuotes(mock.Anything, domain.CategoryAll, uint(0)).
		Return([]domain.Quote{{ID: "q1", IsFavorite: true}}, nil)

	favorites := mocks.NewMockFavoriteService(t)
	favorites.EXPECT().RemoveFavorite(mock.Anything, "q1").
		Return(domain.NewUnavailableError("postgrest", "down"))

	browse := NewBrowse(catalog, favorites, nil)
	require.NoError(t, browse.Load(context.Background()))

	err := browse.ToggleFavorite(context.Background(), "q1")
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))

	snap := browse.Snapshot()
	assert.True(t, snap.Quotes[0].IsFavorite, "failed toggle must revert the flag")

	mark, ok := browse.ToggleState("q1")
	require.True(t, ok)
	assert.Equal(t, StateFailed, mark.State())

	browse.AcknowledgeToggle("q1")
	mark, _ = browse.ToggleState("q1")
	assert.Equal(t, StateConfirmed, mark.State())
	assert.True(t, mark.Value())
}

func TestBrowse_ToggleUnknownQuote(t *testing.T) {
	browse := NewBrowse(mocks.NewMockCatalogService(t), mocks.NewMockFavoriteService(t), nil)

	err := browse.ToggleFavorite(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestBrowse_StaleLoadDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	catalog := mocks.NewMockCatalogService(t)
	catalog.EXPECT().PageSize().Return(uint(20)).Maybe()
	catalog.EXPECT().ListQuotes(mock.Anything, "Motivation", uint(0)).
		RunAndReturn(func(context.Context, string, uint) ([]domain.Quote, error) {
			close(started)
			<-release

			return []domain.Quote{{ID: "slow"}}, nil
		})
	catalog.EXPECT().ListQuotes(mock.Anything, "Wisdom", uint(0)).
		Return([]domain.Quote{{ID: "fast"}}, nil)

	browse := NewBrowse(catalog, mocks.NewMockFavoriteService(t), nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = browse.SelectCategory(context.Background(), "Motivation")
	}()

	<-started
	require.NoError(t, browse.SelectCategory(context.Background(), "Wisdom"))
	close(release)
	<-done

	snap := browse.Snapshot()
	assert.Equal(t, "Wisdom", snap.Category)
	require.Len(t, snap.Quotes, 1)
	assert.Equal(t, "fast", snap.Quotes[0].ID, "the slow older load must not overwrite the newer one")
}

func TestBrowse_CloseDiscardsToggleResult(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	catalog := mocks.NewMockCatalogService(t)
	catalog.EXPECT().PageSize().Return(uint(20)).Maybe()
	catalog.EXPECT().ListQuotes(mock.Anything, domain.CategoryAll, uint(0)).
		Return([]domain.Quote{{ID: "q1"}}, nil)

	favorites := mocks.NewMockFavoriteService(t)
	favorites.EXPECT().AddFavorite(mock.Anything, "q1").
		RunAndReturn(func(context.Context, string) error {
			close(started)
			<-release

			return nil
		})

	browse := NewBrowse(catalog, favorites, nil)
	require.NoError(t, browse.Load(context.Background()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = browse.ToggleFavorite(context.Background(), "q1")
	}()

	<-started
	browse.Close()
	close(release)
	<-done

	mark, ok := browse.ToggleState("q1")
	require.True(t, ok)
	assert.Equal(t, StatePending, mark.State(), "a closed orchestrator must not apply the completion")
}
