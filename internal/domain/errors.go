// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist or is
	// not owned by the caller.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a state conflict such as a duplicate entry.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthenticated indicates the operation requires a session and
	// none is present.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnavailable indicates the remote store failed or is unreachable.
	// The underlying message is opaque to the core.
	ErrUnavailable = errors.New("unavailable")

	// ErrPartialSuccess indicates a composite operation where an earlier
	// step succeeded and a later step failed. Distinct from total
	// failure: some state was created.
	ErrPartialSuccess = errors.New("partial success")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError provides context for conflict errors.
type ConflictError struct {
	Entity string
	Reason string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UnauthenticatedError provides context for unauthenticated errors.
type UnauthenticatedError struct {
	Operation string
}

// Error implements the error interface.
func (e *UnauthenticatedError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("operation %q requires an authenticated session", e.Operation)
	}

	return "authenticated session required"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

// NewUnauthenticatedError creates an unauthenticated error with context.
func NewUnauthenticatedError(operation string) error {
	return &UnauthenticatedError{Operation: operation}
}

// UnavailableError provides context for remote store failures.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// PartialSuccessError reports a composite operation that completed its
// first step but failed a later one. Callers must surface the completed
// step rather than reporting a blanket failure that implies nothing
// happened.
type PartialSuccessError struct {
	// Completed describes the step that succeeded (e.g. "collection created").
	Completed string

	// Failed describes the step that did not (e.g. "quote not added").
	Failed string

	// Cause is the error from the failed step.
	Cause error
}

// Error implements the error interface.
func (e *PartialSuccessError) Error() string {
	return fmt.Sprintf("%s but %s: %v", e.Completed, e.Failed, e.Cause)
}

// Unwrap returns the sentinel error for errors.Is() support.
// The underlying cause is available via the Cause field rather than the
// unwrap chain so that errors.Is(err, ErrPartialSuccess) stays distinct
// from the failed step's own class.
func (e *PartialSuccessError) Unwrap() error {
	return ErrPartialSuccess
}

// NewPartialSuccessError creates a partial success error with context.
func NewPartialSuccessError(completed, failed string, cause error) error {
	return &PartialSuccessError{Completed: completed, Failed: failed, Cause: cause}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnauthenticated checks if an error is an unauthenticated error.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsPartialSuccess checks if an error is a partial success outcome.
func IsPartialSuccess(err error) bool {
	return errors.Is(err, ErrPartialSuccess)
}
