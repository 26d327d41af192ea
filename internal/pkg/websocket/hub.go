package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/skumar/cabtrack/internal/pkg/logger"
)

// Hub is a topic-based broadcast channel. Delivery is best effort: each
// subscriber has a bounded queue and the oldest message is dropped on
// overflow, so a slow subscriber never slows the pipeline. Subscribers that
// connect late do not see earlier messages.
type Hub struct {
	mu         sync.RWMutex
	topics     map[string]map[*Subscriber]struct{}
	bufferSize int
}

// Subscriber receives broadcast payloads for one topic.
type Subscriber struct {
	hub   *Hub
	topic string
	ch    chan []byte
	once  sync.Once
}

// NewHub creates a hub with the given per-subscriber buffer size.
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &Hub{
		topics:     make(map[string]map[*Subscriber]struct{}),
		bufferSize: bufferSize,
	}
}

// Subscribe registers a new subscriber on a topic.
func (h *Hub) Subscribe(topic string) *Subscriber {
	sub := &Subscriber{
		hub:   h,
		topic: topic,
		ch:    make(chan []byte, h.bufferSize),
	}

	h.mu.Lock()
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[*Subscriber]struct{})
		h.topics[topic] = subs
	}
	subs[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

// Broadcast serializes the payload once and pushes it to every subscriber of
// the topic. The call never blocks on a subscriber.
func (h *Hub) Broadcast(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast payload: %w", err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.topics[topic] {
		select {
		case sub.ch <- data:
		default:
			// Queue full: drop the oldest message to make room.
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- data:
			default:
				logger.Warn("Dropped broadcast message for slow subscriber",
					logger.String("topic", topic))
			}
		}
	}
	return nil
}

// SubscriberCount returns the number of subscribers on a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// C returns the subscriber's receive channel. It is closed by Close.
func (s *Subscriber) C() <-chan []byte {
	return s.ch
}

// Topic returns the topic this subscriber is registered on.
func (s *Subscriber) Topic() string {
	return s.topic
}

// Close unregisters the subscriber and closes its channel. Safe to call more
// than once.
func (s *Subscriber) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		if subs, ok := s.hub.topics[s.topic]; ok {
			delete(subs, s)
			if len(subs) == 0 {
				delete(s.hub.topics, s.topic)
			}
		}
		s.hub.mu.Unlock()
		close(s.ch)
	})
}
