package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/skumar/cabtrack/internal/pkg/models"
)

// LocationRepo implements the tracking.TrackingRepo interface on PostgreSQL.
// The table is append-only; rows are never mutated.
type LocationRepo struct {
	db *sqlx.DB
}

// NewLocationRepo creates a new location repository.
func NewLocationRepo(db *sqlx.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

// Append inserts a location update and returns the store-assigned id.
func (r *LocationRepo) Append(ctx context.Context, update *models.LocationUpdate) (int64, error) {
	query := `
		INSERT INTO location_updates (driver_id, latitude, longitude, timestamp, city, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		update.DriverID,
		update.Latitude,
		update.Longitude,
		update.Timestamp,
		update.City,
		update.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to append location update: %w", err)
	}
	return id, nil
}

// ScanByDriver returns all stored locations for a driver.
func (r *LocationRepo) ScanByDriver(ctx context.Context, driverID int64) ([]*models.StoredLocation, error) {
	query := `
		SELECT id, driver_id, latitude, longitude, timestamp, city, status
		FROM location_updates
		WHERE driver_id = $1
	`

	var locations []*models.StoredLocation
	if err := r.db.SelectContext(ctx, &locations, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to scan locations for driver %d: %w", driverID, err)
	}
	return locations, nil
}

// ScanAll returns all stored locations.
func (r *LocationRepo) ScanAll(ctx context.Context) ([]*models.StoredLocation, error) {
	query := `
		SELECT id, driver_id, latitude, longitude, timestamp, city, status
		FROM location_updates
	`

	var locations []*models.StoredLocation
	if err := r.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("failed to scan locations: %w", err)
	}
	return locations, nil
}

// DeleteOlderThan removes records with a timestamp before cutoff.
func (r *LocationRepo) DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error) {
	query := `DELETE FROM location_updates WHERE timestamp < $1`

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old locations: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted locations: %w", err)
	}
	return rows, nil
}
