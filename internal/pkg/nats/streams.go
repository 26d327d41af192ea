package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/skumar/cabtrack/internal/pkg/constants"
)

// StreamConfig describes a JetStream stream.
type StreamConfig struct {
	Name      string
	Subjects  []string
	Retention jetstream.RetentionPolicy
	Storage   jetstream.StorageType
	Replicas  int
	MaxAge    time.Duration
	MaxBytes  int64
	MaxMsgs   int64
	Discard   jetstream.DiscardPolicy
}

// ConsumerConfig describes a durable consumer. One durable per consumer group:
// members of the group share it and each message is delivered to one member
// per attempt.
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	DeliverPolicy jetstream.DeliverPolicy
	AckPolicy     jetstream.AckPolicy
	AckWait       time.Duration
	MaxDeliver    int
	MaxAckPending int
}

// DefaultStreamConfigs returns the stream layout backing the two topics.
// Both streams use limits-based retention so independent consumer groups can
// each read every record.
func DefaultStreamConfigs(locationTopic, notificationTopic string) []StreamConfig {
	return []StreamConfig{
		{
			Name:      constants.StreamLocation,
			Subjects:  []string{locationTopic},
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			Replicas:  1,
			MaxAge:    24 * time.Hour,
			MaxBytes:  256 * 1024 * 1024,
			MaxMsgs:   2_000_000,
			Discard:   jetstream.DiscardOld,
		},
		{
			Name:      constants.StreamNotification,
			Subjects:  []string{notificationTopic},
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			Replicas:  1,
			MaxAge:    24 * time.Hour,
			MaxBytes:  64 * 1024 * 1024,
			MaxMsgs:   500_000,
			Discard:   jetstream.DiscardOld,
		},
	}
}

// GroupConsumerConfig returns the durable consumer configuration for a
// consumer group on a topic. Explicit acks with bounded ack-pending give
// at-least-once delivery with serialized redelivery of failed records.
func GroupConsumerConfig(streamName, groupName, topic string) ConsumerConfig {
	return ConsumerConfig{
		StreamName:    streamName,
		ConsumerName:  groupName,
		FilterSubject: topic,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    5,
		MaxAckPending: 1000,
	}
}
