package usecase

import (
	"context"

	"github.com/skumar/cabtrack/internal/pkg/logger"
	"github.com/skumar/cabtrack/internal/pkg/models"
	"github.com/skumar/cabtrack/services/notification"
)

// NotificationUC routes consumed notification events to the configured sink.
type NotificationUC struct {
	sink notification.Sink
}

// NewNotificationUC creates a new notification use case.
func NewNotificationUC(sink notification.Sink) *NotificationUC {
	return &NotificationUC{sink: sink}
}

// HandleNotificationEvent delivers one consumed event. Unknown event types
// are delivered like any other: the worker does not gate on the type field,
// so new producers do not require a worker release. A delivery failure is
// logged and the event is dropped; the sink has already exhausted its own
// retries and a dead event must not wedge the group.
func (uc *NotificationUC) HandleNotificationEvent(ctx context.Context, event *models.NotificationEvent) error {
	if err := uc.sink.Deliver(ctx, event); err != nil {
		logger.Error("Failed to deliver notification",
			logger.Int64("driver_id", event.DriverID),
			logger.String("type", event.Type),
			logger.Err(err))
	}
	return nil
}
