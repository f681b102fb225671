package commands

import (
	"context"

	"vinylshop/internal/core/domain/model/order"
)

// CreateOrderWithIDCommandHandler opens a new order under a caller-supplied
// identifier, mirroring CreateOrderCommandHandler except that no id is
// generated.
type CreateOrderWithIDCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderWithIDCommandHandler creates a handler for order creation with
// an explicit identifier.
func NewCreateOrderWithIDCommandHandler(uowFactory OrderUoWFactory) CreateOrderWithIDCommandHandler {
	return CreateOrderWithIDCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle opens the order in a transaction, rolling back on any error.
func (h *CreateOrderWithIDCommandHandler) Handle(ctx context.Context, cmd CreateOrderWithIDCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.ClientID(), cmd.Items())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
