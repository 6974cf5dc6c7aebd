package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/mocks"
)

func testQuote() *domain.Quote {
	return &domain.Quote{
		ID:       "q1",
		Text:     "fortune favors the bold",
		Author:   "Virgil",
		Category: "Motivation",
	}
}

func newJob(t *testing.T, picker QuotePicker, notifier *mocks.MockNotifier) *DailyQuote {
	t.Helper()

	job := NewDailyQuote(Config{
		Picker:      picker,
		Notifier:    notifier,
		Interval:    time.Hour,
		MaxAttempts: 3,
	})
	job.retryDelay = time.Millisecond

	return job
}

func TestRunOnce_DeliversQuote(t *testing.T) {
	quote := testQuote()

	picker := mocks.NewMockCatalogService(t)
	picker.EXPECT().RandomQuote(mock.Anything).Return(quote, nil).Once()

	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, quote).Return(nil).Once()

	err := newJob(t, picker, notifier).RunOnce(context.Background())
	require.NoError(t, err)
}

func TestRunOnce_RetriesAfterFailure(t *testing.T) {
	quote := testQuote()

	picker := mocks.NewMockCatalogService(t)
	picker.EXPECT().RandomQuote(mock.Anything).
		Return(nil, domain.NewUnavailableError("postgrest", "timeout")).Once()
	picker.EXPECT().RandomQuote(mock.Anything).Return(quote, nil).Once()

	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, quote).Return(nil).Once()

	err := newJob(t, picker, notifier).RunOnce(context.Background())
	require.NoError(t, err)
}

func TestRunOnce_RetriesNotifyFailure(t *testing.T) {
	quote := testQuote()

	picker := mocks.NewMockCatalogService(t)
	picker.EXPECT().RandomQuote(mock.Anything).Return(quote, nil).Times(2)

	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, quote).
		Return(domain.NewUnavailableError("notify", "unreachable")).Once()
	notifier.EXPECT().Notify(mock.Anything, quote).Return(nil).Once()

	err := newJob(t, picker, notifier).RunOnce(context.Background())
	require.NoError(t, err)
}

func TestRunOnce_ExhaustsAttemptBudget(t *testing.T) {
	picker := mocks.NewMockCatalogService(t)
	picker.EXPECT().RandomQuote(mock.Anything).
		Return(nil, domain.NewUnavailableError("postgrest", "timeout")).Times(3)

	err := newJob(t, picker, mocks.NewMockNotifier(t)).RunOnce(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.ErrorContains(t, err, "after 3 attempts")
}

func TestRunOnce_CancelledBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	picker := mocks.NewMockCatalogService(t)
	picker.EXPECT().RandomQuote(mock.Anything).
		RunAndReturn(func(context.Context) (*domain.Quote, error) {
			cancel()
			return nil, domain.NewUnavailableError("postgrest", "timeout")
		}).Once()

	job := newJob(t, picker, mocks.NewMockNotifier(t))
	job.retryDelay = time.Minute

	err := job.RunOnce(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := newJob(t, mocks.NewMockCatalogService(t), mocks.NewMockNotifier(t))

	done := make(chan struct{})
	go func() {
		job.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}
