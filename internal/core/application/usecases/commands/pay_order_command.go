package commands

import (
	"errors"

	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/pkg/guard"
)

var (
	ErrPayOrderCommandIsNotConstructed = errors.New(
		"PayOrderCommand must be created via NewPayOrderCommand constructor",
	)
)

// PayOrderCommand represents a request to settle an order with a tendered
// amount. The client id identifies the payer, whose reputation determines the
// delivery charge.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	orderID  kernel.UUID
	amount   kernel.Money

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay an order.
// Both ids and the tendered amount must be valid.
func NewPayOrderCommand(clientID, orderID kernel.UUID, amount kernel.Money) (PayOrderCommand, error) {
	orderCommand := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setClientID(clientID),
		orderCommand.setOrderID(orderID),
		orderCommand.setAmount(amount),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPayOrderCommandIsNotConstructed if validation fails.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// ClientID returns the payer's identifier.
func (c PayOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// OrderID returns the identifier of the order to settle.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the tendered amount.
func (c PayOrderCommand) Amount() kernel.Money {
	return c.amount
}

func (c *PayOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	c.amount = amount
	return nil
}
