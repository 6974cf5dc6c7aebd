package postgrest

import (
	"context"
	"fmt"
	"strings"

	"github.com/quotevault/quotevault/internal/domain"
)

// orderByID keeps page windows stable while the backend appends quotes.
const orderByID = "id.asc"

// rpcRandomQuote is the stored procedure returning one uniformly random
// quote from the full corpus.
const rpcRandomQuote = "rpc/random_quote"

// QuoteStore is the quotes table adapter. It implements ports.QuoteStore.
type QuoteStore struct {
	s *Store
}

// Quotes returns the quotes table adapter.
func (s *Store) Quotes() QuoteStore {
	return QuoteStore{s: s}
}

// List implements ports.QuoteStore.
func (st QuoteStore) List(ctx context.Context, category string, page, pageSize uint) ([]domain.Quote, error) {
	q := newQuery().
		selectCols("*").
		order(orderByID).
		limit(pageSize).
		offset(page * pageSize)

	if category != "" && category != domain.CategoryAll {
		q.eq("category", category)
	}

	var rows []quoteRow
	if err := getJSON(ctx, st.s, path(tableQuotes, q), "list quotes", &rows); err != nil {
		return nil, err
	}

	return quotesToDomain(rows), nil
}

// Search implements ports.QuoteStore. The match is case-insensitive over
// both text and author.
func (st QuoteStore) Search(ctx context.Context, queryText string) ([]domain.Quote, error) {
	pattern := "*" + sanitizePattern(queryText) + "*"
	q := newQuery().
		selectCols("*").
		order(orderByID).
		or(fmt.Sprintf("(text.ilike.%s,author.ilike.%s)", pattern, pattern))

	var rows []quoteRow
	if err := getJSON(ctx, st.s, path(tableQuotes, q), "search quotes", &rows); err != nil {
		return nil, err
	}

	return quotesToDomain(rows), nil
}

// GetByID implements ports.QuoteStore.
func (st QuoteStore) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	q := newQuery().selectCols("*").eq("id", id).limit(1)

	var rows []quoteRow
	if err := getJSON(ctx, st.s, path(tableQuotes, q), "get quote", &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, domain.NewNotFoundError("quote", id)
	}

	quote := rows[0].toDomain()

	return &quote, nil
}

// GetByIDs implements ports.QuoteStore. Ids that no longer resolve are
// simply absent from the result.
func (st QuoteStore) GetByIDs(ctx context.Context, ids []string) ([]domain.Quote, error) {
	if len(ids) == 0 {
		return []domain.Quote{}, nil
	}

	q := newQuery().selectCols("*").order(orderByID).in("id", ids)

	var rows []quoteRow
	if err := getJSON(ctx, st.s, path(tableQuotes, q), "get quotes by ids", &rows); err != nil {
		return nil, err
	}

	return quotesToDomain(rows), nil
}

// PickRandom implements ports.QuoteStore via the random_quote RPC, which
// samples uniformly over the whole corpus server side.
func (st QuoteStore) PickRandom(ctx context.Context) (*domain.Quote, error) {
	var rows []quoteRow
	if err := postJSON(ctx, st.s, "/"+rpcRandomQuote, struct{}{}, "pick random quote", &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, domain.NewNotFoundError("quote", "")
	}

	quote := rows[0].toDomain()

	return &quote, nil
}

// sanitizePattern strips characters that carry meaning inside a PostgREST
// logical filter so user input cannot change the query shape.
func sanitizePattern(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ',', '(', ')', '"', '\\':
			return -1
		default:
			return r
		}
	}, s)
}
