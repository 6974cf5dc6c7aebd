package clients

import "errors"

// Transport-level failures. The postgrest package maps these onto
// domain.ErrUnavailable before they reach a service.
var (
	// ErrCircuitOpen means the breaker is blocking requests because the
	// upstream has been failing.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last attempt's error once the
	// retry budget is spent.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
