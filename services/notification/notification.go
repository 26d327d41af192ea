package notification

import (
	"context"

	"github.com/skumar/cabtrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/skumar/cabtrack/services/notification NotificationUC
//go:generate mockgen -destination=mocks/mock_sink.go -package=mocks github.com/skumar/cabtrack/services/notification Sink

// NotificationUC handles consumed notification events.
type NotificationUC interface {
	HandleNotificationEvent(ctx context.Context, event *models.NotificationEvent) error
}

// Sink delivers a notification to its destination channel.
type Sink interface {
	Deliver(ctx context.Context, event *models.NotificationEvent) error
}
