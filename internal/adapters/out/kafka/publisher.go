// Package kafka publishes order events to a Kafka topic. Messages are keyed
// by order id so all events of one order land on the same partition and keep
// their relative order.
package kafka

import (
	"context"
	"errors"
	"strings"

	"vinylshop/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// ErrNoBrokers is returned by NewEventPublisher when the broker list is empty.
var ErrNoBrokers = errors.New("no kafka brokers configured")

// EventPublisher ships outbox messages to a single Kafka topic.
type EventPublisher struct {
	writer *kafka.Writer
}

// NewEventPublisher creates a publisher for the given topic. brokersCSV is a
// comma separated broker list, e.g. "localhost:9092,localhost:9093".
func NewEventPublisher(brokersCSV string, topic string) (*EventPublisher, error) {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &EventPublisher{writer: writer}, nil
}

// Publish sends one staged event to the topic. The event name travels in a
// message header so consumers can route without parsing the payload.
func (p *EventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(message.Key),
		Value: message.Payload,
		Time:  message.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event-name", Value: []byte(message.Name)},
		},
	})
}

// Close flushes and releases the underlying writer.
func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
