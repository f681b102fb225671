package outboxrepo

import (
	"context"
	"time"

	"vinylshop/internal/core/domain/model/order"
	"vinylshop/internal/core/ports"

	"gorm.io/gorm"
)

// GormEventOutbox implements the event outbox on the same GORM connection as
// the order repository, so staged events join the aggregate's transaction.
type GormEventOutbox struct {
	db *gorm.DB
}

// NewGormEventOutbox creates a new GORM-backed event outbox.
func NewGormEventOutbox(db *gorm.DB) *GormEventOutbox {
	return &GormEventOutbox{db: db}
}

// Store serializes the event and appends it to the outbox table.
func (o *GormEventOutbox) Store(ctx context.Context, event order.Event) error {
	dto, err := fromDomainEvent(event)
	if err != nil {
		return err
	}

	return o.db.WithContext(ctx).Create(&dto).Error
}

// FetchPending returns up to limit unsent events in staging order.
func (o *GormEventOutbox) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []EventDTO
	err := o.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, ports.OutboxMessage{
			ID:        dto.ID,
			Name:      dto.Name,
			Key:       dto.Key,
			Payload:   dto.Payload,
			CreatedAt: dto.CreatedAt,
		})
	}

	return messages, nil
}

// MarkSent records that a staged event has been handed to the publisher.
func (o *GormEventOutbox) MarkSent(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	return o.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id = ?", id).
		Update("sent_at", &now).Error
}
