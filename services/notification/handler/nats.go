package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/skumar/cabtrack/internal/pkg/constants"
	"github.com/skumar/cabtrack/internal/pkg/logger"
	"github.com/skumar/cabtrack/internal/pkg/models"
	natspkg "github.com/skumar/cabtrack/internal/pkg/nats"
	"github.com/skumar/cabtrack/services/notification"
)

// NATSHandler consumes notification events for the notification worker group.
type NATSHandler struct {
	notificationUC notification.NotificationUC
	natsClient     *natspkg.Client
	groupName      string
	topic          string
	consumer       *natspkg.Consumer
}

// NewNATSHandler creates a new notification NATS handler.
func NewNATSHandler(notificationUC notification.NotificationUC, client *natspkg.Client, groupName, topic string) *NATSHandler {
	return &NATSHandler{
		notificationUC: notificationUC,
		natsClient:     client,
		groupName:      groupName,
		topic:          topic,
	}
}

// InitConsumers creates the durable group consumer on the notification stream
// and starts consuming.
func (h *NATSHandler) InitConsumers() error {
	logger.Info("Initializing JetStream consumers for notification service",
		logger.String("group", h.groupName),
		logger.String("topic", h.topic))

	config := natspkg.GroupConsumerConfig(constants.StreamNotification, h.groupName, h.topic)
	consumer, err := natspkg.NewJetStreamConsumer(h.natsClient, config, h.handleNotificationEventJS)
	if err != nil {
		return fmt.Errorf("failed to start notification event consumer: %w", err)
	}
	h.consumer = consumer
	return nil
}

// Stop drains the running consumer.
func (h *NATSHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

func (h *NATSHandler) handleNotificationEventJS(msg jetstream.Msg) error {
	return h.handleNotificationEvent(msg.Data(), msg.Subject())
}

// handleNotificationEvent decodes and delivers one notification event.
// Malformed payloads are logged and skipped.
func (h *NATSHandler) handleNotificationEvent(data []byte, subject string) error {
	var event models.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Warn("Skipping malformed notification event",
			logger.String("subject", subject),
			logger.Err(err))
		return nil
	}

	return h.notificationUC.HandleNotificationEvent(context.Background(), &event)
}
