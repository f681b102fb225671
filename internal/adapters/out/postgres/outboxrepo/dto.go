// Package outboxrepo stages domain events in a transactional outbox table.
// Events are inserted in the same database transaction that persists the
// aggregate, then shipped to the broker by the relay job. This keeps a
// committed state change and its event from ever being separated.
package outboxrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/core/domain/model/order"
)

// EventDTO represents one staged event row.
type EventDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(64);index"`
	Key       string `gorm:"type:varchar(36)"`
	Payload   []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
	SentAt    *time.Time `gorm:"index"`
}

// TableName specifies the database table name for staged events.
func (EventDTO) TableName() string {
	return "outbox_events"
}

type moneyPayload struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type itemPayload struct {
	ProductID string       `json:"productId"`
	Price     moneyPayload `json:"price"`
}

type orderPaidPayload struct {
	OrderID string       `json:"orderId"`
	Amount  moneyPayload `json:"amount"`
}

type payFailedAlreadyPaidPayload struct {
	OrderID string `json:"orderId"`
}

type payFailedAmountIsDifferentPayload struct {
	OrderID  string       `json:"orderId"`
	Amount   moneyPayload `json:"amount"`
	Expected moneyPayload `json:"expected"`
}

type itemsAddedPayload struct {
	OrderID string        `json:"orderId"`
	Items   []itemPayload `json:"items"`
}

// fromDomainEvent serializes a domain event into an outbox row.
// The row key is the order id, so a partitioned broker preserves per-order
// event ordering.
func fromDomainEvent(event order.Event) (EventDTO, error) {
	var (
		key     string
		payload any
	)

	switch e := event.(type) {
	case order.OrderPaid:
		key = e.OrderID.String()
		payload = orderPaidPayload{
			OrderID: e.OrderID.String(),
			Amount:  toMoneyPayload(e.Amount),
		}
	case order.OrderPayFailedAlreadyPaid:
		key = e.OrderID.String()
		payload = payFailedAlreadyPaidPayload{
			OrderID: e.OrderID.String(),
		}
	case order.OrderPayFailedAmountIsDifferent:
		key = e.OrderID.String()
		payload = payFailedAmountIsDifferentPayload{
			OrderID:  e.OrderID.String(),
			Amount:   toMoneyPayload(e.Amount),
			Expected: toMoneyPayload(e.Expected),
		}
	case order.ItemsAddedToOrder:
		items := make([]itemPayload, 0, len(e.Items))
		for _, item := range e.Items {
			items = append(items, itemPayload{
				ProductID: item.ProductID().String(),
				Price:     toMoneyPayload(item.Price()),
			})
		}
		key = e.OrderID.String()
		payload = itemsAddedPayload{
			OrderID: e.OrderID.String(),
			Items:   items,
		}
	default:
		return EventDTO{}, fmt.Errorf("unknown event type %q", event.Name())
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return EventDTO{}, err
	}

	return EventDTO{
		Name:    event.Name(),
		Key:     key,
		Payload: data,
	}, nil
}

func toMoneyPayload(m kernel.Money) moneyPayload {
	return moneyPayload{
		Amount:   m.Amount().String(),
		Currency: m.Currency(),
	}
}
