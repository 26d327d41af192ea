package sink

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/skumar/cabtrack/internal/pkg/models"
	"github.com/skumar/cabtrack/internal/pkg/retry"
	"github.com/skumar/cabtrack/services/notification/mocks"
	"github.com/stretchr/testify/assert"
)

func fastRetryConfig() retry.Config {
	return retry.Config{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
	}
}

func TestRetryingSink_SucceedsAfterTransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSink := mocks.NewMockSink(ctrl)
	event := &models.NotificationEvent{DriverID: 1, Type: models.NotificationDriverAvailable}

	gomock.InOrder(
		mockSink.EXPECT().Deliver(gomock.Any(), event).Return(errors.New("timeout")),
		mockSink.EXPECT().Deliver(gomock.Any(), event).Return(nil),
	)

	s := NewRetryingSink(mockSink, fastRetryConfig())
	assert.NoError(t, s.Deliver(context.Background(), event))
}

func TestRetryingSink_ExhaustsRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSink := mocks.NewMockSink(ctrl)
	event := &models.NotificationEvent{DriverID: 1}

	deliveryErr := errors.New("permanent failure")
	mockSink.EXPECT().Deliver(gomock.Any(), event).Return(deliveryErr).Times(3)

	s := NewRetryingSink(mockSink, fastRetryConfig())
	assert.ErrorIs(t, s.Deliver(context.Background(), event), deliveryErr)
}

func TestLogSink_AlwaysDelivers(t *testing.T) {
	s := NewLogSink()
	event := &models.NotificationEvent{
		DriverID: 42,
		Type:     models.NotificationDriverAvailable,
		Message:  "Driver 42 is now available in Jakarta",
	}
	assert.NoError(t, s.Deliver(context.Background(), event))
}
