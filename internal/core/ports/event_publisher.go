package ports

import (
	"context"
	"time"

	"vinylshop/internal/core/domain/model/order"
)

// EventOutbox stages domain events for publication within the same transaction
// that persists the aggregate, so a committed state change and its event are
// never separated. The relay job ships staged events to the broker afterwards.
type EventOutbox interface {
	// Store serializes the event and appends it to the outbox.
	Store(ctx context.Context, event order.Event) error
}

// OutboxMessage is a staged event as the relay sees it: already serialized,
// ready to be handed to the publisher.
type OutboxMessage struct {
	ID        int64
	Name      string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

// EventOutboxReader is the relay's view of the outbox.
type EventOutboxReader interface {
	// FetchPending returns up to limit unsent messages in staging order.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkSent records that a message has been handed to the publisher.
	MarkSent(ctx context.Context, id int64) error
}

// EventPublisher delivers a staged event to the message broker. Delivery
// guarantees beyond the publish call (ordering, at-least-once redelivery)
// are the broker's concern, not the domain's.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
