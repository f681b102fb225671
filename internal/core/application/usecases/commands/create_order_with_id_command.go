package commands

import (
	"errors"

	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/core/domain/model/order"
	"vinylshop/internal/pkg/guard"
)

var (
	ErrCreateOrderWithIDCommandIsNotConstructed = errors.New(
		"CreateOrderWithIDCommand must be created via NewCreateOrderWithIDCommand constructor",
	)
)

// CreateOrderWithIDCommand represents a request to open a new purchase order
// under a caller-supplied identifier. Idempotent upsert semantics at the
// transport layer are out of scope; the handler simply persists the order
// under the given id.
type CreateOrderWithIDCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	clientID kernel.UUID
	items    []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderWithIDCommand creates a command to open a new order with the
// given identifier. Both ids must be valid; each item must be properly
// constructed.
func NewCreateOrderWithIDCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	items []order.Item,
) (CreateOrderWithIDCommand, error) {
	orderCommand := CreateOrderWithIDCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderWithIDCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderWithIDCommandIsNotConstructed if validation fails.
func (c CreateOrderWithIDCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderWithIDCommandIsNotConstructed)
}

// OrderID returns the caller-supplied order identifier.
func (c CreateOrderWithIDCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the owning client's identifier.
func (c CreateOrderWithIDCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Items returns the initial line items.
func (c CreateOrderWithIDCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderWithIDCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderWithIDCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderWithIDCommand) setItems(items []order.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}
