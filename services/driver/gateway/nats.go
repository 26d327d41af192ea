package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/skumar/cabtrack/internal/pkg/logger"
	"github.com/skumar/cabtrack/internal/pkg/models"
	natspkg "github.com/skumar/cabtrack/internal/pkg/nats"
)

// LocationGW publishes location updates to the driver-location-updates topic.
type LocationGW struct {
	client *natspkg.Client
	topic  string
}

// NewLocationGW creates a new location gateway.
func NewLocationGW(client *natspkg.Client, topic string) *LocationGW {
	return &LocationGW{client: client, topic: topic}
}

// PublishLocationUpdate publishes an update keyed by driver id. The MsgID
// carries the driver id and timestamp so bus-side deduplication collapses
// exact republishes within the dedup window.
func (g *LocationGW) PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal location update: %w", err)
	}

	opts := natspkg.PublishOptions{
		Subject: g.topic,
		Data:    data,
		MsgID:   fmt.Sprintf("loc-%d-%d", update.DriverID, update.Timestamp),
		Timeout: 10 * time.Second,
	}

	if err := g.client.PublishWithOptions(ctx, opts); err != nil {
		logger.Error("Failed to publish location update",
			logger.Int64("driver_id", update.DriverID),
			logger.Err(err))
		return fmt.Errorf("failed to publish location update: %w", err)
	}

	logger.Debug("Published location update",
		logger.Int64("driver_id", update.DriverID),
		logger.Float64("latitude", update.Latitude),
		logger.Float64("longitude", update.Longitude))
	return nil
}
