package postgrest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/quotevault/quotevault/internal/adapters/clients"
	"github.com/quotevault/quotevault/internal/domain"
)

// Postgres error codes surfaced by PostgREST in the response body.
const (
	// pgCodeUniqueViolation is raised on duplicate inserts (23505).
	pgCodeUniqueViolation = "23505"

	// pgCodeForeignKeyViolation is raised when a referenced row is gone (23503).
	pgCodeForeignKeyViolation = "23503"
)

// errorBody is the JSON error envelope PostgREST returns.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// parseErrorBody decodes the PostgREST error envelope.
// Returns nil when the body is empty or not the expected shape.
func parseErrorBody(body io.Reader) *errorBody {
	if body == nil {
		return nil
	}

	var eb errorBody
	if err := json.NewDecoder(body).Decode(&eb); err != nil {
		return nil
	}

	if eb.Code == "" && eb.Message == "" {
		return nil
	}

	return &eb
}

// mapClientError translates transport-level failures to domain errors.
func mapClientError(err error, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))

	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

// mapResponseError translates a non-2xx PostgREST response to a domain error.
//
// The status code is the primary signal; the Postgres error code in the
// body refines it. A unique violation becomes ErrConflict so callers can
// treat duplicate inserts as idempotent successes, and a foreign key
// violation becomes ErrNotFound because the referenced row no longer
// exists.
func mapResponseError(resp *http.Response, operation, entityID string) error {
	eb := parseErrorBody(resp.Body)

	message := fmt.Sprintf("%s failed with status %d", operation, resp.StatusCode)
	if eb != nil && eb.Message != "" {
		message = eb.Message
	}

	if eb != nil {
		switch eb.Code {
		case pgCodeUniqueViolation:
			return domain.NewConflictError(operation, message)
		case pgCodeForeignKeyViolation:
			return domain.NewNotFoundError(operation, entityID)
		}
	}

	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusNotAcceptable:
		// 406 is PostgREST's answer to a single-object request that
		// matched zero rows.
		return domain.NewNotFoundError(operation, entityID)

	case http.StatusConflict:
		return domain.NewConflictError(operation, message)

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.NewValidationError("", message)

	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.NewUnauthenticatedError(operation)

	case http.StatusTooManyRequests:
		return domain.NewUnavailableError(serviceName, "rate limit exceeded")

	default:
		if resp.StatusCode >= http.StatusInternalServerError {
			return domain.NewUnavailableError(serviceName, message)
		}

		return domain.NewValidationError("", message)
	}
}
