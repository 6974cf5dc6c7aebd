package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotevault/quotevault/internal/domain"
)

func TestMutation_OptimisticValueShownWhilePending(t *testing.T) {
	m := Confirmed(false).Begin(true)

	assert.Equal(t, StatePending, m.State())
	assert.True(t, m.Value())
	assert.NoError(t, m.Err())
}

func TestMutation_SuccessConfirmsRemoteValue(t *testing.T) {
	m := Confirmed(false).Begin(true).Resolve(true, nil)

	assert.Equal(t, StateConfirmed, m.State())
	assert.True(t, m.Value())
}

func TestMutation_FailureRevertsAndSurfacesError(t *testing.T) {
	cause := domain.NewUnavailableError("postgrest", "down")
	m := Confirmed(false).Begin(true).Resolve(true, cause)

	assert.Equal(t, StateFailed, m.State())
	assert.False(t, m.Value(), "failed mutation must show the pre-toggle value")
	require.Error(t, m.Err())
	assert.True(t, domain.IsUnavailable(m.Err()))
}

func TestMutation_LastCompletedRemoteOutcomeWins(t *testing.T) {
	// Rapid double-tap: two toggles in flight, completing in order.
	m := Confirmed(false).Begin(true).Begin(false)

	m = m.Resolve(true, nil)
	assert.True(t, m.Value())

	m = m.Resolve(false, nil)
	assert.Equal(t, StateConfirmed, m.State())
	assert.False(t, m.Value(), "state must re-derive from the last completed call")
}

func TestMutation_ResolveCurrentDerivesFromHeldValue(t *testing.T) {
	double := func(v int) int { return v * 2 }
	incr := func(v int) int { return v + 1 }

	resolved := Confirmed(5).ResolveCurrent(double, incr, nil)
	assert.Equal(t, StateConfirmed, resolved.State())
	assert.Equal(t, 10, resolved.Value())

	cause := domain.NewUnavailableError("postgrest", "down")
	failed := Confirmed(5).ResolveCurrent(double, incr, cause)
	assert.Equal(t, StateFailed, failed.State())
	assert.Equal(t, 6, failed.Value())
	require.Error(t, failed.Err())
}

func TestMutation_AcknowledgeSettlesOnRevertedValue(t *testing.T) {
	cause := domain.NewUnavailableError("postgrest", "down")
	m := Confirmed(true).Begin(false).Resolve(false, cause).Acknowledge()

	assert.Equal(t, StateConfirmed, m.State())
	assert.True(t, m.Value())
	assert.NoError(t, m.Err())
}

func TestMutation_AcknowledgeIgnoresNonFailedStates(t *testing.T) {
	m := Confirmed(true).Begin(false)

	assert.Equal(t, StatePending, m.Acknowledge().State())
}
