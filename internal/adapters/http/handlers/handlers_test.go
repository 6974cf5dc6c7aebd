package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// performRequest runs one request through the engine and returns the recorder.
func performRequest(t *testing.T, engine *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	return rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

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

func testQuote(id, text string) domain.Quote {
	return domain.Quote{
		ID:        id,
		Text:      text,
		Author:    "Seneca",
		Category:  "Wisdom",
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testQuotes(ids ...string) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(ids))
	for _, id := range ids {
		quotes = append(quotes, testQuote(id, "quote "+id))
	}

	return quotes
}

// noFavorites stubs an empty favorite set for overlay reads.
func noFavorites(t *testing.T) *mocks.MockFavoriteStore {
	t.Helper()

	store := mocks.NewMockFavoriteStore(t)
	store.EXPECT().ListIDs(mock.Anything, mock.Anything).Return(domain.QuoteIDSet{}, nil).Maybe()

	return store
}
