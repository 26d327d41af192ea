package driver

import (
	"context"
	"errors"

	"github.com/skumar/cabtrack/internal/pkg/models"
)

// ErrInvalidLocation marks a location update that failed ingest validation.
// Handlers surface it as 400; anything else from SubmitLocationUpdate is a
// transport failure and surfaces as 502.
var ErrInvalidLocation = errors.New("invalid location update")

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/skumar/cabtrack/services/driver LocationUC
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/skumar/cabtrack/services/driver LocationGW

// LocationUC defines the ingest business logic.
type LocationUC interface {
	SubmitLocationUpdate(ctx context.Context, update *models.LocationUpdate) error
}

// LocationGW publishes validated location updates to the event bus.
type LocationGW interface {
	PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) error
}
