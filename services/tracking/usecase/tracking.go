package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/skumar/cabtrack/internal/pkg/logger"
	"github.com/skumar/cabtrack/internal/pkg/models"
	"github.com/skumar/cabtrack/services/tracking"
)

// TrackingUC implements the tracking.TrackingUC interface.
type TrackingUC struct {
	repo tracking.TrackingRepo
	proj tracking.ProjectionRepo
	gw   tracking.TrackingGW
	cfg  models.TrackingConfig
}

// NewTrackingUC creates a new tracking use case.
func NewTrackingUC(repo tracking.TrackingRepo, proj tracking.ProjectionRepo, gw tracking.TrackingGW, cfg models.TrackingConfig) *TrackingUC {
	return &TrackingUC{repo: repo, proj: proj, gw: gw, cfg: cfg}
}

// ProcessLocationUpdate runs the consume sequence for one record. The three
// effects are deliberately not one transaction: the persist is durable and
// retriable, the derived event and the broadcast are best effort. Bundling
// them would turn a re-delivery after a partial failure into duplicate bus
// traffic.
func (uc *TrackingUC) ProcessLocationUpdate(ctx context.Context, update *models.LocationUpdate) error {
	if err := update.Validate(); err != nil {
		logger.Warn("Dropping invalid location update",
			logger.Int64("driver_id", update.DriverID),
			logger.Err(err))
		return nil
	}

	id, err := uc.repo.Append(ctx, update)
	if err != nil {
		return fmt.Errorf("failed to persist location update: %w", err)
	}
	stored := &models.StoredLocation{ID: id, LocationUpdate: *update}

	if uc.cfg.ProjectionCacheEnabled {
		if err := uc.proj.SetLatest(ctx, stored); err != nil {
			logger.Error("Failed to update latest projection",
				logger.Int64("driver_id", update.DriverID),
				logger.Err(err))
		}
	}

	uc.deriveNotification(ctx, update)

	if err := uc.gw.BroadcastLocationUpdate(update); err != nil {
		logger.Error("Failed to broadcast location update",
			logger.Int64("driver_id", update.DriverID),
			logger.Err(err))
	}

	return nil
}

// deriveNotification emits a DRIVER_AVAILABLE event for every AVAILABLE
// update. With edge-triggered notification enabled, repeats are suppressed
// and only a transition into AVAILABLE emits. Publish failures are logged,
// never propagated: a missed notification must not block ingest.
func (uc *TrackingUC) deriveNotification(ctx context.Context, update *models.LocationUpdate) {
	if uc.cfg.EdgeTriggeredNotify {
		defer uc.recordLastStatus(ctx, update)
	}

	if !update.IsAvailable() {
		return
	}

	if uc.cfg.EdgeTriggeredNotify {
		last, err := uc.proj.GetLastStatus(ctx, update.DriverID)
		if err != nil {
			logger.Error("Failed to read last driver status",
				logger.Int64("driver_id", update.DriverID),
				logger.Err(err))
		} else if strings.EqualFold(last, models.StatusAvailable) {
			return
		}
	}

	event := &models.NotificationEvent{
		DriverID:  update.DriverID,
		Type:      models.NotificationDriverAvailable,
		Message:   fmt.Sprintf("Driver %d is now available in %s", update.DriverID, update.City),
		Timestamp: time.Now().UnixMilli(),
	}

	if err := uc.gw.PublishNotificationEvent(ctx, event); err != nil {
		logger.Error("Failed to publish notification event",
			logger.Int64("driver_id", update.DriverID),
			logger.Err(err))
	}
}

func (uc *TrackingUC) recordLastStatus(ctx context.Context, update *models.LocationUpdate) {
	if update.Status == "" {
		return
	}
	if err := uc.proj.SetLastStatus(ctx, update.DriverID, update.Status); err != nil {
		logger.Error("Failed to record last driver status",
			logger.Int64("driver_id", update.DriverID),
			logger.Err(err))
	}
}

// GetRecentLocations returns up to limit updates for a driver, newest first.
// Ties on timestamp are broken by store id, newest insert first.
func (uc *TrackingUC) GetRecentLocations(ctx context.Context, driverID int64, limit int) ([]*models.LocationUpdate, error) {
	if limit <= 0 {
		return []*models.LocationUpdate{}, nil
	}

	locations, err := uc.repo.ScanByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	sort.Slice(locations, func(i, j int) bool {
		if locations[i].Timestamp != locations[j].Timestamp {
			return locations[i].Timestamp > locations[j].Timestamp
		}
		return locations[i].ID > locations[j].ID
	})

	if len(locations) > limit {
		locations = locations[:limit]
	}
	return toLocationUpdates(locations), nil
}

// GetLatestLocations returns the most recent update per driver. With the
// projection cache enabled it is served from Redis and falls back to a store
// scan on cache failure.
func (uc *TrackingUC) GetLatestLocations(ctx context.Context) ([]*models.LocationUpdate, error) {
	if uc.cfg.ProjectionCacheEnabled {
		latest, err := uc.proj.GetLatest(ctx)
		if err == nil {
			return toLocationUpdates(latest), nil
		}
		logger.Error("Latest projection cache unavailable, scanning store", logger.Err(err))
	}

	locations, err := uc.repo.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	return toLocationUpdates(latestPerDriver(locations)), nil
}

// GetLatestLocationsFiltered applies the city/status filters first, then
// reduces to latest-per-driver. The order matters: a driver whose latest
// overall update does not match the filter still appears with their latest
// matching one.
func (uc *TrackingUC) GetLatestLocationsFiltered(ctx context.Context, city, status string) ([]*models.LocationUpdate, error) {
	locations, err := uc.repo.ScanAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := locations[:0:0]
	for _, loc := range locations {
		if city != "" && !strings.EqualFold(city, loc.City) {
			continue
		}
		if status != "" && !strings.EqualFold(status, loc.Status) {
			continue
		}
		filtered = append(filtered, loc)
	}

	return toLocationUpdates(latestPerDriver(filtered)), nil
}

// PruneOlderThan removes stored locations older than maxAge.
func (uc *TrackingUC) PruneOlderThan(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).UnixMilli()
	removed, err := uc.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		logger.Info("Pruned stored locations",
			logger.Int64("removed", removed),
			logger.Int64("cutoff", cutoff))
	}
	return removed, nil
}

// latestPerDriver reduces a scan to one record per driver: largest timestamp
// wins, store id breaks ties.
func latestPerDriver(locations []*models.StoredLocation) []*models.StoredLocation {
	best := make(map[int64]*models.StoredLocation)
	for _, loc := range locations {
		if loc.Newer(best[loc.DriverID]) {
			best[loc.DriverID] = loc
		}
	}

	result := make([]*models.StoredLocation, 0, len(best))
	for _, loc := range best {
		result = append(result, loc)
	}
	return result
}

func toLocationUpdates(locations []*models.StoredLocation) []*models.LocationUpdate {
	updates := make([]*models.LocationUpdate, 0, len(locations))
	for _, loc := range locations {
		update := loc.LocationUpdate
		updates = append(updates, &update)
	}
	return updates
}
