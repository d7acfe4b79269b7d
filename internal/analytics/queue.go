package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// DefaultClickQueue is the queue name used when none is configured.
const DefaultClickQueue = "careeros.clicks"

// QueueSink publishes click events to a RabbitMQ queue for downstream
// analytics consumers.
type QueueSink struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// NewQueueSink dials the broker and declares the click queue.
func NewQueueSink(url, queue string) (*QueueSink, error) {
	if queue == "" {
		queue = DefaultClickQueue
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial message broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	return &QueueSink{conn: conn, channel: channel, queue: queue}, nil
}

// Record publishes the event as a persistent JSON message.
func (s *QueueSink) Record(_ context.Context, event types.ClickEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal click event: %w", err)
	}

	err = s.channel.Publish("", s.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish click event: %w", err)
	}
	return nil
}

// Close releases the channel and connection.
func (s *QueueSink) Close() error {
	if s.channel != nil {
		_ = s.channel.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
