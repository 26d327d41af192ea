package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/skumar/cabtrack/internal/pkg/models"
	"github.com/skumar/cabtrack/services/tracking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUC(t *testing.T, cfg models.TrackingConfig) (*TrackingUC, *mocks.MockTrackingRepo, *mocks.MockProjectionRepo, *mocks.MockTrackingGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockTrackingRepo(ctrl)
	mockProj := mocks.NewMockProjectionRepo(ctrl)
	mockGW := mocks.NewMockTrackingGW(ctrl)
	return NewTrackingUC(mockRepo, mockProj, mockGW, cfg), mockRepo, mockProj, mockGW
}

func validUpdate() *models.LocationUpdate {
	return &models.LocationUpdate{
		DriverID:  42,
		Latitude:  -6.2088,
		Longitude: 106.8456,
		Timestamp: 1700000000000,
		City:      "Jakarta",
		Status:    models.StatusBusy,
	}
}

func TestProcessLocationUpdate_PersistsAndBroadcasts(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t, models.TrackingConfig{})

	update := validUpdate()
	mockRepo.EXPECT().Append(gomock.Any(), update).Return(int64(1), nil)
	mockGW.EXPECT().BroadcastLocationUpdate(update).Return(nil)

	err := uc.ProcessLocationUpdate(context.Background(), update)
	assert.NoError(t, err)
}

func TestProcessLocationUpdate_AvailableEmitsNotification(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t, models.TrackingConfig{})

	update := validUpdate()
	update.Status = "available" // matching is case-insensitive

	mockRepo.EXPECT().Append(gomock.Any(), update).Return(int64(7), nil)
	mockGW.EXPECT().PublishNotificationEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.NotificationEvent) error {
			assert.Equal(t, int64(42), event.DriverID)
			assert.Equal(t, models.NotificationDriverAvailable, event.Type)
			assert.Equal(t, "Driver 42 is now available in Jakarta", event.Message)
			return nil
		})
	mockGW.EXPECT().BroadcastLocationUpdate(update).Return(nil)

	err := uc.ProcessLocationUpdate(context.Background(), update)
	assert.NoError(t, err)
}

func TestProcessLocationUpdate_BusyDoesNotNotify(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t, models.TrackingConfig{})

	update := validUpdate()
	mockRepo.EXPECT().Append(gomock.Any(), update).Return(int64(1), nil)
	mockGW.EXPECT().BroadcastLocationUpdate(update).Return(nil)
	// No PublishNotificationEvent expectation: a call would fail the test.

	err := uc.ProcessLocationUpdate(context.Background(), update)
	assert.NoError(t, err)
}

func TestProcessLocationUpdate_InvalidIsDropped(t *testing.T) {
	uc, _, _, _ := newTestUC(t, models.TrackingConfig{})

	update := validUpdate()
	update.Latitude = 95

	// No store, publish or broadcast expectations: the record is skipped.
	err := uc.ProcessLocationUpdate(context.Background(), update)
	assert.NoError(t, err)
}

func TestProcessLocationUpdate_StoreFailurePropagates(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t, models.TrackingConfig{})

	update := validUpdate()
	storeErr := errors.New("connection refused")
	mockRepo.EXPECT().Append(gomock.Any(), update).Return(int64(0), storeErr)

	err := uc.ProcessLocationUpdate(context.Background(), update)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestProcessLocationUpdate_BroadcastFailureIsNonFatal(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t, models.TrackingConfig{})

	update := validUpdate()
	mockRepo.EXPECT().Append(gomock.Any(), update).Return(int64(1), nil)
	mockGW.EXPECT().BroadcastLocationUpdate(update).Return(errors.New("marshal failure"))

	err := uc.ProcessLocationUpdate(context.Background(), update)
	assert.NoError(t, err)
}

func TestProcessLocationUpdate_NotifyFailureIsNonFatal(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t, models.TrackingConfig{})

	update := validUpdate()
	update.Status = models.StatusAvailable

	mockRepo.EXPECT().Append(gomock.Any(), update).Return(int64(1), nil)
	mockGW.EXPECT().PublishNotificationEvent(gomock.Any(), gomock.Any()).Return(errors.New("publish timeout"))
	mockGW.EXPECT().BroadcastLocationUpdate(update).Return(nil)

	err := uc.ProcessLocationUpdate(context.Background(), update)
	assert.NoError(t, err)
}

func TestProcessLocationUpdate_EdgeTriggeredSuppressesRepeat(t *testing.T) {
	uc, mockRepo, mockProj, mockGW := newTestUC(t, models.TrackingConfig{EdgeTriggeredNotify: true})

	update := validUpdate()
	update.Status = models.StatusAvailable

	mockRepo.EXPECT().Append(gomock.Any(), update).Return(int64(1), nil)
	mockProj.EXPECT().GetLastStatus(gomock.Any(), int64(42)).Return(models.StatusAvailable, nil)
	mockProj.EXPECT().SetLastStatus(gomock.Any(), int64(42), models.StatusAvailable).Return(nil)
	mockGW.EXPECT().BroadcastLocationUpdate(update).Return(nil)

	err := uc.ProcessLocationUpdate(context.Background(), update)
	assert.NoError(t, err)
}

func TestProcessLocationUpdate_EdgeTriggeredEmitsOnTransition(t *testing.T) {
	uc, mockRepo, mockProj, mockGW := newTestUC(t, models.TrackingConfig{EdgeTriggeredNotify: true})

	update := validUpdate()
	update.Status = models.StatusAvailable

	mockRepo.EXPECT().Append(gomock.Any(), update).Return(int64(1), nil)
	mockProj.EXPECT().GetLastStatus(gomock.Any(), int64(42)).Return(models.StatusBusy, nil)
	mockProj.EXPECT().SetLastStatus(gomock.Any(), int64(42), models.StatusAvailable).Return(nil)
	mockGW.EXPECT().PublishNotificationEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().BroadcastLocationUpdate(update).Return(nil)

	err := uc.ProcessLocationUpdate(context.Background(), update)
	assert.NoError(t, err)
}

func TestProcessLocationUpdate_ProjectionCacheUpdated(t *testing.T) {
	uc, mockRepo, mockProj, mockGW := newTestUC(t, models.TrackingConfig{ProjectionCacheEnabled: true})

	update := validUpdate()
	mockRepo.EXPECT().Append(gomock.Any(), update).Return(int64(5), nil)
	mockProj.EXPECT().SetLatest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, stored *models.StoredLocation) error {
			assert.Equal(t, int64(5), stored.ID)
			assert.Equal(t, int64(42), stored.DriverID)
			return nil
		})
	mockGW.EXPECT().BroadcastLocationUpdate(update).Return(nil)

	err := uc.ProcessLocationUpdate(context.Background(), update)
	assert.NoError(t, err)
}

func stored(id, driverID, ts int64, city, status string) *models.StoredLocation {
	return &models.StoredLocation{
		ID: id,
		LocationUpdate: models.LocationUpdate{
			DriverID:  driverID,
			Latitude:  1,
			Longitude: 2,
			Timestamp: ts,
			City:      city,
			Status:    status,
		},
	}
}

func TestGetRecentLocations_NewestFirstCapped(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t, models.TrackingConfig{})

	mockRepo.EXPECT().ScanByDriver(gomock.Any(), int64(42)).Return([]*models.StoredLocation{
		stored(1, 42, 100, "Jakarta", models.StatusBusy),
		stored(2, 42, 300, "Jakarta", models.StatusBusy),
		stored(3, 42, 200, "Jakarta", models.StatusBusy),
	}, nil)

	locations, err := uc.GetRecentLocations(context.Background(), 42, 2)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, int64(300), locations[0].Timestamp)
	assert.Equal(t, int64(200), locations[1].Timestamp)
}

func TestGetRecentLocations_TimestampTieBrokenByID(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t, models.TrackingConfig{})

	mockRepo.EXPECT().ScanByDriver(gomock.Any(), int64(42)).Return([]*models.StoredLocation{
		stored(10, 42, 100, "Jakarta", models.StatusBusy),
		stored(11, 42, 100, "Bandung", models.StatusBusy),
	}, nil)

	locations, err := uc.GetRecentLocations(context.Background(), 42, 10)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Bandung", locations[0].City)
	assert.Equal(t, "Jakarta", locations[1].City)
}

func TestGetRecentLocations_NonPositiveLimit(t *testing.T) {
	uc, _, _, _ := newTestUC(t, models.TrackingConfig{})

	locations, err := uc.GetRecentLocations(context.Background(), 42, 0)
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestGetRecentLocations_UnknownDriverEmpty(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t, models.TrackingConfig{})

	mockRepo.EXPECT().ScanByDriver(gomock.Any(), int64(99)).Return(nil, nil)

	locations, err := uc.GetRecentLocations(context.Background(), 99, 10)
	require.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}

func TestGetLatestLocations_OnePerDriver(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t, models.TrackingConfig{})

	mockRepo.EXPECT().ScanAll(gomock.Any()).Return([]*models.StoredLocation{
		stored(1, 1, 100, "Jakarta", models.StatusBusy),
		stored(2, 1, 200, "Bandung", models.StatusAvailable),
		stored(3, 2, 50, "Surabaya", models.StatusOffline),
	}, nil)

	locations, err := uc.GetLatestLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 2)

	byDriver := make(map[int64]*models.LocationUpdate)
	for _, loc := range locations {
		byDriver[loc.DriverID] = loc
	}
	assert.Equal(t, "Bandung", byDriver[1].City)
	assert.Equal(t, "Surabaya", byDriver[2].City)
}

func TestGetLatestLocations_CacheFallsBackToStore(t *testing.T) {
	uc, mockRepo, mockProj, _ := newTestUC(t, models.TrackingConfig{ProjectionCacheEnabled: true})

	mockProj.EXPECT().GetLatest(gomock.Any()).Return(nil, errors.New("redis down"))
	mockRepo.EXPECT().ScanAll(gomock.Any()).Return([]*models.StoredLocation{
		stored(1, 1, 100, "Jakarta", models.StatusBusy),
	}, nil)

	locations, err := uc.GetLatestLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, int64(1), locations[0].DriverID)
}

func TestGetLatestLocationsFiltered_FilterBeforeReduce(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t, models.TrackingConfig{})

	// Driver 1's latest overall update is in Bandung, but their latest
	// Jakarta update must still be returned when filtering by Jakarta.
	mockRepo.EXPECT().ScanAll(gomock.Any()).Return([]*models.StoredLocation{
		stored(1, 1, 100, "Jakarta", models.StatusBusy),
		stored(2, 1, 300, "Bandung", models.StatusBusy),
		stored(3, 2, 200, "Jakarta", models.StatusAvailable),
	}, nil)

	locations, err := uc.GetLatestLocationsFiltered(context.Background(), "jakarta", "")
	require.NoError(t, err)
	require.Len(t, locations, 2)

	byDriver := make(map[int64]*models.LocationUpdate)
	for _, loc := range locations {
		byDriver[loc.DriverID] = loc
	}
	assert.Equal(t, int64(100), byDriver[1].Timestamp)
	assert.Equal(t, int64(200), byDriver[2].Timestamp)
}

func TestGetLatestLocationsFiltered_ByCityAndStatus(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t, models.TrackingConfig{})

	mockRepo.EXPECT().ScanAll(gomock.Any()).Return([]*models.StoredLocation{
		stored(1, 1, 100, "Jakarta", models.StatusAvailable),
		stored(2, 2, 100, "Jakarta", models.StatusBusy),
		stored(3, 3, 100, "Bandung", models.StatusAvailable),
	}, nil)

	locations, err := uc.GetLatestLocationsFiltered(context.Background(), "Jakarta", "AVAILABLE")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, int64(1), locations[0].DriverID)
}

func TestGetLatestLocationsFiltered_NoMatchesEmpty(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t, models.TrackingConfig{})

	mockRepo.EXPECT().ScanAll(gomock.Any()).Return([]*models.StoredLocation{
		stored(1, 1, 100, "Jakarta", models.StatusBusy),
	}, nil)

	locations, err := uc.GetLatestLocationsFiltered(context.Background(), "Medan", "")
	require.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}

func TestPruneOlderThan(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t, models.TrackingConfig{})

	before := time.Now().Add(-24 * time.Hour).UnixMilli()
	mockRepo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff int64) (int64, error) {
			assert.GreaterOrEqual(t, cutoff, before)
			return int64(3), nil
		})

	removed, err := uc.PruneOlderThan(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
