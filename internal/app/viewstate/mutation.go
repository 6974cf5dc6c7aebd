// Package viewstate holds one orchestrator per screen. Each orchestrator
// owns derived, render-ready state: it applies optimistic local patches
// when the user acts, issues the remote call, and reconciles the local
// state from the call's outcome. Results that complete after the
// orchestrator was closed or after a newer load are discarded.
package viewstate

// MutationState is the lifecycle of one optimistically mutated fact.
type MutationState int

const (
	// StateConfirmed means the value reflects the last remote outcome.
	StateConfirmed MutationState = iota

	// StatePending means an optimistic value is shown while the remote
	// call is in flight.
	StatePending

	// StateFailed means the remote call failed, the value was reverted,
	// and the error awaits acknowledgement.
	StateFailed
)

// String returns the state name for logs.
func (s MutationState) String() string {
	switch s {
	case StateConfirmed:
		return "confirmed"
	case StatePending:
		return "pending"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Mutation tracks one mutable render fact through an optimistic update.
// The zero value is a confirmed zero fact. Values are immutable; every
// transition returns a new Mutation.
type Mutation[T any] struct {
	state    MutationState
	value    T
	rollback T
	err      error
}

// Confirmed builds a mutation settled at the given value.
func Confirmed[T any](value T) Mutation[T] {
	return Mutation[T]{state: StateConfirmed, value: value}
}

// State returns the current lifecycle state.
func (m Mutation[T]) State() MutationState {
	return m.state
}

// Value returns the render value: the optimistic value while pending,
// the reverted value after a failure, the remote value otherwise.
func (m Mutation[T]) Value() T {
	return m.value
}

// Err returns the surfaced error of a failed mutation, nil otherwise.
func (m Mutation[T]) Err() error {
	return m.err
}

// Begin applies an optimistic value and remembers the current value as
// the rollback target.
func (m Mutation[T]) Begin(optimistic T) Mutation[T] {
	return Mutation[T]{state: StatePending, value: optimistic, rollback: m.value}
}

// Resolve folds a completed remote call into the state. The remote
// outcome wins regardless of what happened locally since the call was
// issued: success confirms the remote value, failure reverts to the
// rollback value and surfaces the error. This is the one reconciliation
// path shared by every screen.
func (m Mutation[T]) Resolve(remote T, err error) Mutation[T] {
	if err != nil {
		return Mutation[T]{state: StateFailed, value: m.rollback, rollback: m.rollback, err: err}
	}

	return Confirmed(remote)
}

// ResolveCurrent folds a completed remote call into the state using the
// value held now rather than snapshots captured when the call was
// issued. apply re-derives the success value from the current one and
// revert re-derives the failure value, so a Load that replaced the list
// while the call was in flight is patched, never clobbered. List-shaped
// facts resolve through here; single-value facts use Resolve.
func (m Mutation[T]) ResolveCurrent(apply, revert func(T) T, err error) Mutation[T] {
	if err != nil {
		reverted := revert(m.value)

		return Mutation[T]{state: StateFailed, value: reverted, rollback: reverted, err: err}
	}

	return Confirmed(apply(m.value))
}

// Acknowledge clears a surfaced failure, settling on the reverted value.
// Mutations in any other state pass through unchanged.
func (m Mutation[T]) Acknowledge() Mutation[T] {
	if m.state != StateFailed {
		return m
	}

	return Confirmed(m.value)
}
