package commands

import (
	"errors"

	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/core/domain/model/order"
	"vinylshop/internal/pkg/guard"
)

var (
	ErrAddItemsToOrderCommandIsNotConstructed = errors.New(
		"AddItemsToOrderCommand must be created via NewAddItemsToOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// AddItemsToOrderCommand represents a request to append a batch of items to an
// open order. The batch is atomic: either every item is applied and persisted,
// or none are.
type AddItemsToOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []order.Item

	guard guard.ConstructorGuard
}

// NewAddItemsToOrderCommand creates a command to add items to an order.
// The order id must be valid and the batch must not be empty.
func NewAddItemsToOrderCommand(orderID kernel.UUID, items []order.Item) (AddItemsToOrderCommand, error) {
	orderCommand := AddItemsToOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItems(items),
	); err != nil {
		return AddItemsToOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemsToOrderCommandIsNotConstructed if validation fails.
func (c AddItemsToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsToOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c AddItemsToOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the batch of items to append.
func (c AddItemsToOrderCommand) Items() []order.Item {
	return c.items
}

func (c *AddItemsToOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemsToOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}
