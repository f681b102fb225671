package commands

import (
	"context"
	"errors"
	"log/slog"

	"vinylshop/internal/core/domain/model/order"
	"vinylshop/internal/pkg/errs"
)

// AddItemsToOrderCommandHandler appends a batch of items to an open order.
//
// Two behaviors are deliberate policy, not accidents:
//   - An unknown order id is a silent no-op: nothing is persisted, no event is
//     staged, no error is returned.
//   - A paid order aborts the whole batch with ErrCanNotModifyPaidOrder,
//     logged at error severity; no item of the batch is durably applied.
type AddItemsToOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewAddItemsToOrderCommandHandler creates a handler for item addition.
func NewAddItemsToOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) AddItemsToOrderCommandHandler {
	return AddItemsToOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "add_items_to_order_handler"),
	}
}

// Handle loads the order, applies every item of the batch and persists the
// result together with an ItemsAddedToOrder event in one transaction.
func (h *AddItemsToOrderCommandHandler) Handle(ctx context.Context, cmd AddItemsToOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.DebugContext(ctx, "Order not found, ignoring item addition",
				"order_id", cmd.OrderID().String())
			return nil
		}
		return err
	}

	for _, item := range cmd.Items() {
		if addErr := clientOrder.AddItem(item.ProductID(), item.Price()); addErr != nil {
			if errors.Is(addErr, order.ErrCanNotModifyPaidOrder) {
				h.logger.ErrorContext(ctx, "Can not modify paid order",
					"order_id", cmd.OrderID().String())
			}
			return addErr
		}
	}

	if err = uow.OrderRepository().Update(ctx, clientOrder); err != nil {
		return err
	}

	event := order.ItemsAddedToOrder{
		OrderID: clientOrder.ID(),
		Items:   cmd.Items(),
	}
	if err = uow.EventOutbox().Store(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
