package tracking

import (
	"context"
	"time"

	"github.com/skumar/cabtrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/skumar/cabtrack/services/tracking TrackingRepo,ProjectionRepo
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/skumar/cabtrack/services/tracking TrackingGW
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/skumar/cabtrack/services/tracking TrackingUC

// TrackingRepo defines the location store contract: an append-only log of
// location updates keyed by (driver_id, timestamp) with scan access. A
// successful Append survives a process restart.
type TrackingRepo interface {
	// Append persists an update and returns the store-assigned id.
	Append(ctx context.Context, update *models.LocationUpdate) (int64, error)
	// ScanByDriver returns all stored locations for a driver, order unspecified.
	ScanByDriver(ctx context.Context, driverID int64) ([]*models.StoredLocation, error)
	// ScanAll returns all stored locations, order unspecified.
	ScanAll(ctx context.Context) ([]*models.StoredLocation, error)
	// DeleteOlderThan removes records with a timestamp before cutoff and
	// returns the number of rows removed.
	DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error)
}

// ProjectionRepo maintains the incremental driver_id -> latest projection and
// the per-driver last-seen status used by edge-triggered notification.
type ProjectionRepo interface {
	SetLatest(ctx context.Context, loc *models.StoredLocation) error
	GetLatest(ctx context.Context) ([]*models.StoredLocation, error)
	GetLastStatus(ctx context.Context, driverID int64) (string, error)
	SetLastStatus(ctx context.Context, driverID int64, status string) error
}

// TrackingGW defines the pipeline's outbound effects: the derived-event
// producer and the live broadcast push.
type TrackingGW interface {
	PublishNotificationEvent(ctx context.Context, event *models.NotificationEvent) error
	BroadcastLocationUpdate(update *models.LocationUpdate) error
}

// TrackingUC defines the pipeline and query business logic.
type TrackingUC interface {
	// ProcessLocationUpdate runs the consume sequence for one record:
	// persist, derive, broadcast. An error means the record must be
	// re-delivered; a nil return commits past it.
	ProcessLocationUpdate(ctx context.Context, update *models.LocationUpdate) error

	// GetRecentLocations returns up to limit updates for a driver, newest
	// first by timestamp.
	GetRecentLocations(ctx context.Context, driverID int64, limit int) ([]*models.LocationUpdate, error)
	// GetLatestLocations returns the most recent update per driver.
	GetLatestLocations(ctx context.Context) ([]*models.LocationUpdate, error)
	// GetLatestLocationsFiltered filters by city and/or status first, then
	// reduces to latest-per-driver over the filtered set.
	GetLatestLocationsFiltered(ctx context.Context, city, status string) ([]*models.LocationUpdate, error)

	// PruneOlderThan removes stored locations older than maxAge.
	PruneOlderThan(ctx context.Context, maxAge time.Duration) (int64, error)
}
