package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationUpdate_WireFormat(t *testing.T) {
	update := LocationUpdate{
		DriverID:  42,
		Latitude:  -6.2088,
		Longitude: 106.8456,
		Timestamp: 1700000000000,
		City:      "Jakarta",
		Status:    StatusAvailable,
	}

	data, err := json.Marshal(update)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"driverId": 42,
		"latitude": -6.2088,
		"longitude": 106.8456,
		"timestamp": 1700000000000,
		"city": "Jakarta",
		"status": "AVAILABLE"
	}`, string(data))

	var decoded LocationUpdate
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, update, decoded)
}

func TestLocationUpdate_OptionalFieldsOmitted(t *testing.T) {
	data, err := json.Marshal(LocationUpdate{DriverID: 1, Latitude: 1, Longitude: 2, Timestamp: 3})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "city")
	assert.NotContains(t, string(data), "status")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		update  LocationUpdate
		wantErr bool
	}{
		{"valid", LocationUpdate{DriverID: 1, Latitude: 0, Longitude: 0}, false},
		{"latitude at north pole", LocationUpdate{DriverID: 1, Latitude: 90, Longitude: 0}, false},
		{"latitude at south pole", LocationUpdate{DriverID: 1, Latitude: -90, Longitude: 0}, false},
		{"longitude at antimeridian", LocationUpdate{DriverID: 1, Latitude: 0, Longitude: 180}, false},
		{"longitude at negative antimeridian", LocationUpdate{DriverID: 1, Latitude: 0, Longitude: -180}, false},
		{"missing driver id", LocationUpdate{Latitude: 0, Longitude: 0}, true},
		{"negative driver id", LocationUpdate{DriverID: -1}, true},
		{"latitude too large", LocationUpdate{DriverID: 1, Latitude: 90.1}, true},
		{"latitude too small", LocationUpdate{DriverID: 1, Latitude: -90.1}, true},
		{"longitude too large", LocationUpdate{DriverID: 1, Longitude: 180.1}, true},
		{"longitude too small", LocationUpdate{DriverID: 1, Longitude: -180.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsAvailable_CaseInsensitive(t *testing.T) {
	assert.True(t, (&LocationUpdate{Status: "AVAILABLE"}).IsAvailable())
	assert.True(t, (&LocationUpdate{Status: "available"}).IsAvailable())
	assert.True(t, (&LocationUpdate{Status: "Available"}).IsAvailable())
	assert.False(t, (&LocationUpdate{Status: "BUSY"}).IsAvailable())
	assert.False(t, (&LocationUpdate{Status: ""}).IsAvailable())
}

func TestStoredLocation_Newer(t *testing.T) {
	a := &StoredLocation{ID: 1, LocationUpdate: LocationUpdate{Timestamp: 100}}
	b := &StoredLocation{ID: 2, LocationUpdate: LocationUpdate{Timestamp: 200}}
	tie := &StoredLocation{ID: 3, LocationUpdate: LocationUpdate{Timestamp: 100}}

	assert.True(t, a.Newer(nil))
	assert.True(t, b.Newer(a))
	assert.False(t, a.Newer(b))
	assert.True(t, tie.Newer(a))
	assert.False(t, a.Newer(tie))
}
