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
	"github.com/skumar/cabtrack/services/tracking"
)

// NATSHandler consumes location updates for the tracking consumer group.
type NATSHandler struct {
	trackingUC tracking.TrackingUC
	natsClient *natspkg.Client
	groupName  string
	topic      string
	consumer   *natspkg.Consumer
}

// NewNATSHandler creates a new tracking NATS handler.
func NewNATSHandler(trackingUC tracking.TrackingUC, client *natspkg.Client, groupName, topic string) *NATSHandler {
	return &NATSHandler{
		trackingUC: trackingUC,
		natsClient: client,
		groupName:  groupName,
		topic:      topic,
	}
}

// InitConsumers creates the durable group consumer on the location stream and
// starts consuming.
func (h *NATSHandler) InitConsumers() error {
	logger.Info("Initializing JetStream consumers for tracking service",
		logger.String("group", h.groupName),
		logger.String("topic", h.topic))

	config := natspkg.GroupConsumerConfig(constants.StreamLocation, h.groupName, h.topic)
	consumer, err := natspkg.NewJetStreamConsumer(h.natsClient, config, h.handleLocationUpdateJS)
	if err != nil {
		return fmt.Errorf("failed to start location update consumer: %w", err)
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

// handleLocationUpdateJS processes one location update delivery. A returned
// error triggers a NAK and redelivery.
func (h *NATSHandler) handleLocationUpdateJS(msg jetstream.Msg) error {
	return h.handleLocationUpdate(msg.Data(), msg.Subject())
}

// handleLocationUpdate decodes and processes a location update payload.
// Malformed payloads are logged and skipped: redelivering a message that can
// never decode would wedge the group.
func (h *NATSHandler) handleLocationUpdate(data []byte, subject string) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		logger.Warn("Skipping malformed location update",
			logger.String("subject", subject),
			logger.Err(err))
		return nil
	}

	if err := h.trackingUC.ProcessLocationUpdate(context.Background(), &update); err != nil {
		logger.Error("Failed to process location update",
			logger.Int64("driver_id", update.DriverID),
			logger.Err(err))
		return err
	}
	return nil
}
