package constants

// Topic and consumer-group names. These are the only wire-compatibility
// sensitive strings in the system; deployments may override them through
// config but the defaults below are the contract.
const (
	TopicLocationUpdates    = "driver-location-updates"
	TopicNotificationEvents = "notification-events"

	GroupLocationTracking    = "location-tracking-group"
	GroupNotificationService = "notification-service-group"
)

// JetStream stream names backing the two topics.
const (
	StreamLocation     = "LOCATION_UPDATES"
	StreamNotification = "NOTIFICATION_EVENTS"
)

// Live broadcast channel destination.
const (
	ChannelLocationUpdates = "/topic/location-updates"
)
