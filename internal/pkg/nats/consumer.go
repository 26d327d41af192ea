package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/skumar/cabtrack/internal/pkg/logger"
)

// JetStreamMessageHandler processes a JetStream message. A nil return
// acknowledges the message; an error triggers a negative acknowledgement and
// the bus re-delivers.
type JetStreamMessageHandler func(msg jetstream.Msg) error

// Consumer is a running JetStream push consumer.
type Consumer struct {
	consumer   jetstream.Consumer
	consumeCtx jetstream.ConsumeContext
	ctx        context.Context
	cancelFunc context.CancelFunc
}

// NewJetStreamConsumer creates the durable consumer if needed and starts
// consuming with the provided handler.
func NewJetStreamConsumer(client *Client, config ConsumerConfig, handler JetStreamMessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	if err := client.CreateConsumer(config); err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	consumer, ok := client.getConsumer(config.StreamName, config.ConsumerName)
	if !ok {
		return nil, fmt.Errorf("consumer %s not found after creation", config.ConsumerName)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Consumer{
		consumer:   consumer,
		ctx:        ctx,
		cancelFunc: cancel,
	}

	if err := c.startConsuming(handler); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}
	return c, nil
}

func (c *Consumer) startConsuming(handler JetStreamMessageHandler) error {
	consumeCtx, err := c.consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("subject", msg.Subject()),
				logger.Err(err))

			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return err
	}
	c.consumeCtx = consumeCtx
	return nil
}

// Pending returns the number of messages not yet delivered to this consumer.
func (c *Consumer) Pending() (uint64, error) {
	info, err := c.consumer.Info(c.ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get consumer info: %w", err)
	}
	return info.NumPending, nil
}

// Stop drains in-flight messages and stops the consumer.
func (c *Consumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Drain()
		c.consumeCtx = nil
	}
	if c.cancelFunc != nil {
		c.cancelFunc()
	}
}
