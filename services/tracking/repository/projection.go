package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/skumar/cabtrack/internal/pkg/database"
	"github.com/skumar/cabtrack/internal/pkg/models"
)

const (
	latestHashKey    = "cabtrack:drivers:latest"
	lastStatusKeyFmt = "cabtrack:driver:%d:last-status"
)

// ProjectionRepo implements tracking.ProjectionRepo on Redis. The consumer
// upserts after each persisted update; per-driver consume order makes the
// unconditional upsert equivalent to the timestamp/id reduction.
type ProjectionRepo struct {
	redisClient *database.RedisClient
}

// NewProjectionRepo creates a new projection repository.
func NewProjectionRepo(redisClient *database.RedisClient) *ProjectionRepo {
	return &ProjectionRepo{redisClient: redisClient}
}

// SetLatest stores the latest location for a driver.
func (r *ProjectionRepo) SetLatest(ctx context.Context, loc *models.StoredLocation) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal stored location: %w", err)
	}
	field := strconv.FormatInt(loc.DriverID, 10)
	if err := r.redisClient.HSet(ctx, latestHashKey, field, data); err != nil {
		return fmt.Errorf("failed to update latest projection: %w", err)
	}
	return nil
}

// GetLatest returns the latest stored location per driver.
func (r *ProjectionRepo) GetLatest(ctx context.Context) ([]*models.StoredLocation, error) {
	entries, err := r.redisClient.HGetAll(ctx, latestHashKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest projection: %w", err)
	}

	locations := make([]*models.StoredLocation, 0, len(entries))
	for _, raw := range entries {
		var loc models.StoredLocation
		if err := json.Unmarshal([]byte(raw), &loc); err != nil {
			return nil, fmt.Errorf("failed to decode projection entry: %w", err)
		}
		locations = append(locations, &loc)
	}
	return locations, nil
}

// GetLastStatus returns the last-seen status for a driver, or empty if none.
func (r *ProjectionRepo) GetLastStatus(ctx context.Context, driverID int64) (string, error) {
	status, err := r.redisClient.Get(ctx, fmt.Sprintf(lastStatusKeyFmt, driverID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read last status: %w", err)
	}
	return status, nil
}

// SetLastStatus records the last-seen status for a driver.
func (r *ProjectionRepo) SetLastStatus(ctx context.Context, driverID int64, status string) error {
	if err := r.redisClient.Set(ctx, fmt.Sprintf(lastStatusKeyFmt, driverID), status, 0); err != nil {
		return fmt.Errorf("failed to record last status: %w", err)
	}
	return nil
}
