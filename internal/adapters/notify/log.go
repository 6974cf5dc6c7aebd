// Package notify implements the notifier port. Real push delivery is an
// external collaborator; this adapter records deliveries in the service
// log so the daily quote pipeline is observable end to end.
package notify

import (
	"context"
	"log/slog"

	"github.com/quotevault/quotevault/internal/domain"
)

// LogNotifier delivers quotes to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogNotifier{
		logger: logger.With(slog.String("component", "notify.LogNotifier")),
	}
}

// Notify records the delivered quote.
func (n *LogNotifier) Notify(ctx context.Context, quote *domain.Quote) error {
	n.logger.InfoContext(ctx, "daily quote",
		slog.String("quote_id", quote.ID),
		slog.String("author", quote.Author),
		slog.String("category", quote.Category),
	)

	return nil
}
