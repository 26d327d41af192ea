package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcast_DeliversToAllSubscribers(t *testing.T) {
	hub := NewHub(4)

	sub1 := hub.Subscribe("/topic/location-updates")
	sub2 := hub.Subscribe("/topic/location-updates")
	defer sub1.Close()
	defer sub2.Close()

	payload := map[string]interface{}{"driverId": float64(42)}
	require.NoError(t, hub.Broadcast("/topic/location-updates", payload))

	for _, sub := range []*Subscriber{sub1, sub2} {
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(<-sub.C(), &got))
		assert.Equal(t, payload, got)
	}
}

func TestBroadcast_TopicsAreIsolated(t *testing.T) {
	hub := NewHub(4)

	sub := hub.Subscribe("/topic/other")
	defer sub.Close()

	require.NoError(t, hub.Broadcast("/topic/location-updates", "msg"))

	select {
	case <-sub.C():
		t.Fatal("subscriber received message from another topic")
	default:
	}
}

func TestBroadcast_SlowSubscriberDropsOldest(t *testing.T) {
	hub := NewHub(2)

	sub := hub.Subscribe("/topic/location-updates")
	defer sub.Close()

	for i := 1; i <= 3; i++ {
		require.NoError(t, hub.Broadcast("/topic/location-updates", i))
	}

	// The first message was dropped to make room for the third.
	assert.Equal(t, "2", string(<-sub.C()))
	assert.Equal(t, "3", string(<-sub.C()))
}

func TestBroadcast_NoSubscribers(t *testing.T) {
	hub := NewHub(4)
	assert.NoError(t, hub.Broadcast("/topic/location-updates", "msg"))
}

func TestBroadcast_UnmarshalablePayload(t *testing.T) {
	hub := NewHub(4)
	assert.Error(t, hub.Broadcast("/topic/location-updates", make(chan int)))
}

func TestSubscriberClose_Unregisters(t *testing.T) {
	hub := NewHub(4)

	sub := hub.Subscribe("/topic/location-updates")
	assert.Equal(t, 1, hub.SubscriberCount("/topic/location-updates"))

	sub.Close()
	assert.Equal(t, 0, hub.SubscriberCount("/topic/location-updates"))

	_, open := <-sub.C()
	assert.False(t, open)

	// Close is idempotent.
	sub.Close()
}

func TestBroadcast_AfterCloseDoesNotPanic(t *testing.T) {
	hub := NewHub(4)

	sub := hub.Subscribe("/topic/location-updates")
	sub.Close()

	assert.NoError(t, hub.Broadcast("/topic/location-updates", "msg"))
}
