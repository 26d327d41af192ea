package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/skumar/cabtrack/internal/pkg/logger"
	"github.com/skumar/cabtrack/internal/pkg/models"
	"github.com/skumar/cabtrack/services/driver"
)

// LocationUC implements the driver.LocationUC interface.
type LocationUC struct {
	gw driver.LocationGW
}

// NewLocationUC creates a new location ingest use case.
func NewLocationUC(gw driver.LocationGW) *LocationUC {
	return &LocationUC{gw: gw}
}

// SubmitLocationUpdate validates an update and publishes it to the bus. The
// publish is synchronous: a nil return means the bus acknowledged the record.
func (uc *LocationUC) SubmitLocationUpdate(ctx context.Context, update *models.LocationUpdate) error {
	if update == nil {
		return fmt.Errorf("%w: empty body", driver.ErrInvalidLocation)
	}
	if err := update.Validate(); err != nil {
		return fmt.Errorf("%w: %v", driver.ErrInvalidLocation, err)
	}

	if update.Timestamp == 0 {
		update.Timestamp = time.Now().UnixMilli()
	}

	if err := uc.gw.PublishLocationUpdate(ctx, update); err != nil {
		return fmt.Errorf("failed to publish location update: %w", err)
	}

	logger.Debug("Location update accepted",
		logger.Int64("driver_id", update.DriverID),
		logger.Int64("timestamp", update.Timestamp))
	return nil
}
