package models

// Notification event types published on the notification-events topic.
const (
	NotificationDriverAvailable = "DRIVER_AVAILABLE"
)

// NotificationEvent is derived by the tracking pipeline from qualifying
// location updates and consumed by the notification worker.
type NotificationEvent struct {
	DriverID  int64  `json:"driverId"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}
