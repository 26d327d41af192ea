package sink

import (
	"context"

	"github.com/skumar/cabtrack/internal/pkg/models"
	"github.com/skumar/cabtrack/internal/pkg/retry"
	"github.com/skumar/cabtrack/services/notification"
)

// RetryingSink wraps another sink with exponential backoff. Useful for
// delivery channels with transient failures; the log sink never needs it.
type RetryingSink struct {
	next    notification.Sink
	retrier *retry.Retrier
}

// NewRetryingSink wraps next with the given retry configuration.
func NewRetryingSink(next notification.Sink, config retry.Config) *RetryingSink {
	return &RetryingSink{
		next:    next,
		retrier: retry.New(config),
	}
}

// Deliver attempts delivery through the wrapped sink, retrying on error.
func (s *RetryingSink) Deliver(ctx context.Context, event *models.NotificationEvent) error {
	return s.retrier.Execute(ctx, func(ctx context.Context) error {
		return s.next.Deliver(ctx, event)
	})
}
