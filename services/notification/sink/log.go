package sink

import (
	"context"

	"github.com/skumar/cabtrack/internal/pkg/logger"
	"github.com/skumar/cabtrack/internal/pkg/models"
)

// LogSink is the default delivery channel: it writes the notification to the
// structured log. Push, SMS and similar channels implement the same contract.
type LogSink struct{}

// NewLogSink creates a new log sink.
func NewLogSink() *LogSink {
	return &LogSink{}
}

// Deliver writes the notification to the log.
func (s *LogSink) Deliver(_ context.Context, event *models.NotificationEvent) error {
	logger.Info("Notification delivered",
		logger.Int64("driver_id", event.DriverID),
		logger.String("type", event.Type),
		logger.String("message", event.Message),
		logger.Int64("event_timestamp", event.Timestamp))
	return nil
}
