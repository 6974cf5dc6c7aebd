// Package scheduler runs background jobs outside the request path.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/ports"
)

// DefaultRetryDelay is the pause between delivery attempts within one run.
const DefaultRetryDelay = 2 * time.Second

// QuotePicker supplies the quote for a run. Implemented by the catalog
// service's RandomQuote.
type QuotePicker interface {
	RandomQuote(ctx context.Context) (*domain.Quote, error)
}

// DailyQuote periodically picks one random quote and delivers it through
// the notifier. Each run has a bounded retry budget; a run that exhausts
// it is logged and dropped, never carried into the next run.
type DailyQuote struct {
	picker      QuotePicker
	notifier    ports.Notifier
	interval    time.Duration
	maxAttempts int
	retryDelay  time.Duration
	logger      *slog.Logger
}

// Config contains dependencies and settings for the daily quote job.
type Config struct {
	Picker      QuotePicker
	Notifier    ports.Notifier
	Interval    time.Duration
	MaxAttempts int
	Logger      *slog.Logger
}

// NewDailyQuote creates the daily quote job.
func NewDailyQuote(cfg Config) *DailyQuote {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &DailyQuote{
		picker:      cfg.Picker,
		notifier:    cfg.Notifier,
		interval:    cfg.Interval,
		maxAttempts: maxAttempts,
		retryDelay:  DefaultRetryDelay,
		logger:      logger.With(slog.String("component", "scheduler.DailyQuote")),
	}
}

// Run executes the job on every interval tick until the context is
// cancelled. It blocks; call it from its own goroutine.
func (j *DailyQuote) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.InfoContext(ctx, "daily quote job started",
		slog.Duration("interval", j.interval),
	)

	for {
		select {
		case <-ctx.Done():
			j.logger.InfoContext(ctx, "daily quote job stopped")
			return
		case <-ticker.C:
			if err := j.RunOnce(ctx); err != nil {
				j.logger.ErrorContext(ctx, "daily quote run failed",
					slog.Any("error", err),
				)
			}
		}
	}
}

// RunOnce performs one delivery: pick a random quote, notify, retry the
// whole sequence up to the attempt budget.
func (j *DailyQuote) RunOnce(ctx context.Context) error {
	runID := uuid.NewString()
	logger := j.logger.With(slog.String("run_id", runID))

	var lastErr error

	for attempt := 1; attempt <= j.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(j.retryDelay):
			}
		}

		lastErr = j.deliver(ctx)
		if lastErr == nil {
			logger.InfoContext(ctx, "daily quote delivered",
				slog.Int("attempt", attempt),
			)

			return nil
		}

		logger.WarnContext(ctx, "daily quote attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", j.maxAttempts),
			slog.Any("error", lastErr),
		)
	}

	return fmt.Errorf("delivering daily quote after %d attempts: %w", j.maxAttempts, lastErr)
}

func (j *DailyQuote) deliver(ctx context.Context) error {
	quote, err := j.picker.RandomQuote(ctx)
	if err != nil {
		return fmt.Errorf("picking quote: %w", err)
	}

	if err := j.notifier.Notify(ctx, quote); err != nil {
		return fmt.Errorf("notifying: %w", err)
	}

	return nil
}
