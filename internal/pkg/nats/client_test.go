package nats

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runJetStreamServer(t *testing.T) *server.Server {
	t.Helper()

	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()

	s := natsserver.RunServer(&opts)
	t.Cleanup(s.Shutdown)
	return s
}

func testStreamConfig(name, subject string) StreamConfig {
	return StreamConfig{
		Name:      name,
		Subjects:  []string{subject},
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.MemoryStorage,
		Replicas:  1,
		MaxAge:    time.Hour,
	}
}

func TestPublishAndConsume_RoundTrip(t *testing.T) {
	s := runJetStreamServer(t)

	client, err := NewClient(s.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.CreateStream(testStreamConfig("ROUND_TRIP", "round.trip")))

	received := make(chan []byte, 1)
	consumer, err := NewJetStreamConsumer(client,
		GroupConsumerConfig("ROUND_TRIP", "round-trip-group", "round.trip"),
		func(msg jetstream.Msg) error {
			received <- msg.Data()
			return nil
		})
	require.NoError(t, err)
	defer consumer.Stop()

	err = client.PublishWithOptions(context.Background(), PublishOptions{
		Subject: "round.trip",
		Data:    []byte(`{"driverId":42}`),
	})
	require.NoError(t, err)

	select {
	case data := <-received:
		assert.Equal(t, `{"driverId":42}`, string(data))
	case <-time.After(5 * time.Second):
		t.Fatal("did not receive published message")
	}
}

func TestPublishWithOptions_MsgIDDeduplicates(t *testing.T) {
	s := runJetStreamServer(t)

	client, err := NewClient(s.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.CreateStream(testStreamConfig("DEDUP", "dedup.updates")))

	var count atomic.Int64
	consumer, err := NewJetStreamConsumer(client,
		GroupConsumerConfig("DEDUP", "dedup-group", "dedup.updates"),
		func(msg jetstream.Msg) error {
			count.Add(1)
			return nil
		})
	require.NoError(t, err)
	defer consumer.Stop()

	for i := 0; i < 3; i++ {
		err = client.PublishWithOptions(context.Background(), PublishOptions{
			Subject: "dedup.updates",
			Data:    []byte(`{"driverId":7}`),
			MsgID:   "loc-7-100",
		})
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool { return count.Load() == 1 },
		5*time.Second, 50*time.Millisecond)

	// Give any duplicate time to arrive before asserting it never did.
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int64(1), count.Load())
}

func TestConsumer_NakTriggersRedelivery(t *testing.T) {
	s := runJetStreamServer(t)

	client, err := NewClient(s.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.CreateStream(testStreamConfig("REDELIVER", "redeliver.updates")))

	config := GroupConsumerConfig("REDELIVER", "redeliver-group", "redeliver.updates")
	config.AckWait = time.Second

	var attempts atomic.Int64
	done := make(chan struct{})
	consumer, err := NewJetStreamConsumer(client, config, func(msg jetstream.Msg) error {
		if attempts.Add(1) == 1 {
			return assert.AnError
		}
		close(done)
		return nil
	})
	require.NoError(t, err)
	defer consumer.Stop()

	err = client.PublishWithOptions(context.Background(), PublishOptions{
		Subject: "redeliver.updates",
		Data:    []byte(`{"driverId":1}`),
	})
	require.NoError(t, err)

	select {
	case <-done:
		assert.GreaterOrEqual(t, attempts.Load(), int64(2))
	case <-time.After(10 * time.Second):
		t.Fatal("message was not redelivered after NAK")
	}
}

func TestCreateStream_Idempotent(t *testing.T) {
	s := runJetStreamServer(t)

	client, err := NewClient(s.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	cfg := testStreamConfig("IDEMPOTENT", "idempotent.updates")
	require.NoError(t, client.CreateStream(cfg))
	require.NoError(t, client.CreateStream(cfg))
}
