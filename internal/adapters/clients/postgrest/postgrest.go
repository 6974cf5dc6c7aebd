// Package postgrest implements the store ports against the Supabase
// PostgREST API. It is an anti-corruption layer: PostgREST rows, query
// syntax, and error bodies stay inside this package, and only domain
// types and domain errors cross the boundary.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/quotevault/quotevault/internal/adapters/clients"
	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/ports"
)

const (
	// serviceName identifies the downstream in logs, traces, and errors.
	serviceName = "postgrest"

	// preferHeader carries PostgREST behavior hints.
	preferHeader = "Prefer"

	// preferReturnRepresentation asks PostgREST to echo the stored row.
	preferReturnRepresentation = "return=representation"
)

// Store holds the shared request plumbing and error mapping for a single
// PostgREST endpoint. The store ports are implemented by per-table
// adapters (Quotes, Favorites, Collections) so their overlapping method
// names stay apart; the per-table operations live in quotes.go,
// favorites.go, and collections.go.
type Store struct {
	client *clients.Client
}

// NewStore creates a PostgREST-backed store using the given client.
func NewStore(client *clients.Client) *Store {
	return &Store{client: client}
}

// query is a small builder for PostgREST query strings. Filters use the
// operator.value syntax (eq.x, ilike.*x*, in.(a,b)).
type query struct {
	values url.Values
}

func newQuery() *query {
	return &query{values: url.Values{}}
}

func (q *query) filter(column, operator, value string) *query {
	q.values.Set(column, operator+"."+value)
	return q
}

func (q *query) eq(column, value string) *query {
	return q.filter(column, "eq", value)
}

// in adds an in.(...) filter. PostgREST requires double quotes around
// values containing commas; ids here are UUIDs so plain joining is safe.
func (q *query) in(column string, values []string) *query {
	var buf bytes.Buffer
	buf.WriteString("in.(")
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(v)
	}
	buf.WriteByte(')')
	q.values.Set(column, buf.String())
	return q
}

func (q *query) or(conditions string) *query {
	q.values.Set("or", conditions)
	return q
}

func (q *query) selectCols(cols string) *query {
	q.values.Set("select", cols)
	return q
}

func (q *query) order(spec string) *query {
	q.values.Set("order", spec)
	return q
}

func (q *query) limit(n uint) *query {
	q.values.Set("limit", fmt.Sprintf("%d", n))
	return q
}

func (q *query) offset(n uint) *query {
	q.values.Set("offset", fmt.Sprintf("%d", n))
	return q
}

func (q *query) encode() string {
	return q.values.Encode()
}

// path joins a table name and an encoded query string.
func path(table string, q *query) string {
	if q == nil {
		return "/" + table
	}

	encoded := q.encode()
	if encoded == "" {
		return "/" + table
	}

	return "/" + table + "?" + encoded
}

// newRequest builds a request against the PostgREST base URL and forwards
// the caller's access token when a session is active. With no session the
// client's AuthFunc falls back to the anon key, and row-level security
// leaves per-user tables empty.
func (s *Store) newRequest(ctx context.Context, method, p string, body []byte) (*http.Request, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.BuildURL(p), reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if session := ports.SessionFromContext(ctx); session != nil {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	return req, nil
}

// do executes the request and maps failures to domain errors.
// On success the caller owns the response body.
func (s *Store) do(ctx context.Context, req *http.Request, operation, entityID string) (*http.Response, error) {
	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, mapClientError(err, operation)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, mapResponseError(resp, operation, entityID)
	}

	return resp, nil
}

// getJSON performs a GET and decodes the JSON array or object response.
func getJSON[T any](ctx context.Context, s *Store, p, operation string, out *T) error {
	req, err := s.newRequest(ctx, http.MethodGet, p, nil)
	if err != nil {
		return err
	}

	resp, err := s.do(ctx, req, operation, "")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("decoding %s response: %v", operation, err))
	}

	return nil
}

// postJSON performs a POST with a JSON body. When out is non-nil the
// request carries Prefer: return=representation and the echoed row is
// decoded into it.
func postJSON[T any](ctx context.Context, s *Store, p string, payload any, operation string, out *T) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", operation, err)
	}

	req, err := s.newRequest(ctx, http.MethodPost, p, body)
	if err != nil {
		return err
	}

	if out != nil {
		req.Header.Set(preferHeader, preferReturnRepresentation)
	}

	resp, err := s.do(ctx, req, operation, "")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("decoding %s response: %v", operation, err))
	}

	return nil
}

// delete performs a DELETE. Zero matched rows is indistinguishable from a
// successful delete at this layer, which is exactly the idempotency the
// callers want.
func (s *Store) delete(ctx context.Context, p, operation string) error {
	req, err := s.newRequest(ctx, http.MethodDelete, p, nil)
	if err != nil {
		return err
	}

	resp, err := s.do(ctx, req, operation, "")
	if err != nil {
		return err
	}

	_ = resp.Body.Close()

	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return serviceName
}

// Check implements ports.HealthChecker by issuing a minimal catalog read.
func (s *Store) Check(ctx context.Context) error {
	var rows []quoteRow

	return getJSON(ctx, s, path(tableQuotes, newQuery().selectCols("id").limit(1)), "health check", &rows)
}
