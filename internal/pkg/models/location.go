package models

import (
	"fmt"
	"strings"
)

// Driver status values carried on the wire. Matching is case-insensitive.
const (
	StatusAvailable = "AVAILABLE"
	StatusBusy      = "BUSY"
	StatusOffline   = "OFFLINE"
)

// LocationUpdate is the record published on the driver-location-updates topic.
// City and Status are optional tags; unknown wire fields are ignored on decode.
type LocationUpdate struct {
	DriverID  int64   `json:"driverId" db:"driver_id"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Timestamp int64   `json:"timestamp" db:"timestamp"`
	City      string  `json:"city,omitempty" db:"city"`
	Status    string  `json:"status,omitempty" db:"status"`
}

// Validate checks the ingest invariants: a driver id must be present and the
// coordinates must be in range. Invalid updates are rejected at ingest and
// dropped at consume.
func (u *LocationUpdate) Validate() error {
	if u.DriverID <= 0 {
		return fmt.Errorf("driverId is required")
	}
	if u.Latitude < -90 || u.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range [-90,90]", u.Latitude)
	}
	if u.Longitude < -180 || u.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range [-180,180]", u.Longitude)
	}
	return nil
}

// IsAvailable reports whether the update carries the AVAILABLE status.
func (u *LocationUpdate) IsAvailable() bool {
	return strings.EqualFold(u.Status, StatusAvailable)
}

// StoredLocation is a persisted LocationUpdate plus the store-assigned id.
// Rows are append-only; the id is monotonic and breaks timestamp ties in the
// latest-per-driver projection.
type StoredLocation struct {
	ID int64 `json:"id" db:"id"`
	LocationUpdate
}

// Newer reports whether s should replace other in a latest-per-driver
// projection: largest timestamp wins, store id breaks ties.
func (s *StoredLocation) Newer(other *StoredLocation) bool {
	if other == nil {
		return true
	}
	if s.Timestamp != other.Timestamp {
		return s.Timestamp > other.Timestamp
	}
	return s.ID > other.ID
}
