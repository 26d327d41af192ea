package nats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/skumar/cabtrack/internal/pkg/logger"
)

// Client wraps a NATS connection with a JetStream context. Streams and durable
// consumers created through it are cached by name.
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream

	mu        sync.Mutex
	streams   map[string]jetstream.Stream
	consumers map[string]jetstream.Consumer
}

// NewClient connects to the NATS server and initializes JetStream.
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	return &Client{
		conn:      conn,
		js:        js,
		streams:   make(map[string]jetstream.Stream),
		consumers: make(map[string]jetstream.Consumer),
	}, nil
}

// GetConn returns the underlying NATS connection.
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// CreateStream creates or updates a stream and caches it.
func (c *Client) CreateStream(config StreamConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stream, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      config.Name,
		Subjects:  config.Subjects,
		Retention: config.Retention,
		Storage:   config.Storage,
		Replicas:  config.Replicas,
		MaxAge:    config.MaxAge,
		MaxBytes:  config.MaxBytes,
		MaxMsgs:   config.MaxMsgs,
		Discard:   config.Discard,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", config.Name, err)
	}

	c.mu.Lock()
	c.streams[config.Name] = stream
	c.mu.Unlock()

	logger.Info("Stream ready",
		logger.String("stream", config.Name),
		logger.Any("subjects", config.Subjects))
	return nil
}

// CreateConsumer creates or updates a durable consumer on a stream and caches
// it under "<stream>:<consumer>".
func (c *Client) CreateConsumer(config ConsumerConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	consumer, err := c.js.CreateOrUpdateConsumer(ctx, config.StreamName, jetstream.ConsumerConfig{
		Durable:       config.ConsumerName,
		FilterSubject: config.FilterSubject,
		DeliverPolicy: config.DeliverPolicy,
		AckPolicy:     config.AckPolicy,
		AckWait:       config.AckWait,
		MaxDeliver:    config.MaxDeliver,
		MaxAckPending: config.MaxAckPending,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer %s on stream %s: %w",
			config.ConsumerName, config.StreamName, err)
	}

	c.mu.Lock()
	c.consumers[consumerKey(config.StreamName, config.ConsumerName)] = consumer
	c.mu.Unlock()
	return nil
}

func (c *Client) getConsumer(streamName, consumerName string) (jetstream.Consumer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	consumer, ok := c.consumers[consumerKey(streamName, consumerName)]
	return consumer, ok
}

func consumerKey(streamName, consumerName string) string {
	return fmt.Sprintf("%s:%s", streamName, consumerName)
}

// PublishOptions controls a JetStream publish.
type PublishOptions struct {
	Subject string
	Data    []byte
	// MsgID enables bus-side duplicate suppression within the dedup window.
	MsgID   string
	Timeout time.Duration
}

// PublishWithOptions publishes a message and waits for the stream ack. The
// call returns only after the bus has taken ownership of the message.
func (c *Client) PublishWithOptions(ctx context.Context, opts PublishOptions) error {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var pubOpts []jetstream.PublishOpt
	if opts.MsgID != "" {
		pubOpts = append(pubOpts, jetstream.WithMsgID(opts.MsgID))
	}

	if _, err := c.js.Publish(ctx, opts.Subject, opts.Data, pubOpts...); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", opts.Subject, err)
	}
	return nil
}

// Publish sends a message to a subject over core NATS, without stream acks.
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Close closes the NATS connection.
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
