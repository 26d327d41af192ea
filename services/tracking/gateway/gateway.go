package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/skumar/cabtrack/internal/pkg/constants"
	"github.com/skumar/cabtrack/internal/pkg/models"
	natspkg "github.com/skumar/cabtrack/internal/pkg/nats"
	"github.com/skumar/cabtrack/internal/pkg/websocket"
)

// TrackingGW publishes derived notification events to JetStream and pushes
// location updates to live websocket subscribers.
type TrackingGW struct {
	natsClient        *natspkg.Client
	hub               *websocket.Hub
	notificationTopic string
}

// NewTrackingGW creates a new tracking gateway.
func NewTrackingGW(natsClient *natspkg.Client, hub *websocket.Hub, notificationTopic string) *TrackingGW {
	return &TrackingGW{
		natsClient:        natsClient,
		hub:               hub,
		notificationTopic: notificationTopic,
	}
}

// PublishNotificationEvent publishes a derived event on the notification
// topic. The message id dedupes redeliveries of the same derivation.
func (g *TrackingGW) PublishNotificationEvent(ctx context.Context, event *models.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	return g.natsClient.PublishWithOptions(ctx, natspkg.PublishOptions{
		Subject: g.notificationTopic,
		Data:    data,
		MsgID:   fmt.Sprintf("notif-%d-%d", event.DriverID, event.Timestamp),
		Timeout: 10 * time.Second,
	})
}

// BroadcastLocationUpdate fans the update out to websocket subscribers of the
// live location channel.
func (g *TrackingGW) BroadcastLocationUpdate(update *models.LocationUpdate) error {
	return g.hub.Broadcast(constants.ChannelLocationUpdates, update)
}
