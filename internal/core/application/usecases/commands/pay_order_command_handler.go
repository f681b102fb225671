package commands

import (
	"context"
	"errors"
	"log/slog"

	"vinylshop/internal/core/domain/model/order"
	"vinylshop/internal/core/domain/services"
	"vinylshop/internal/core/ports"
	"vinylshop/internal/pkg/errs"
)

var (
	// ErrOrderNotFound is returned when the order to pay does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderAlreadyPaid is returned when the order has already been settled.
	// Repeating the payment is safe; the order is never charged twice.
	ErrOrderAlreadyPaid = errors.New("order already paid")

	// ErrIncorrectAmount is returned when the tendered amount does not equal
	// the order value plus the delivery charge.
	ErrIncorrectAmount = errors.New("incorrect amount")
)

// PayOrderCommandHandler orchestrates the payment workflow: load the order,
// fetch the payer's reputation, compute the delivery charge, execute the pay
// transition, and on success persist the aggregate together with the OrderPaid
// event.
//
// The payment outcome is inspected as data: the two failure variants are
// translated into ErrOrderAlreadyPaid and ErrIncorrectAmount at this boundary
// after being logged. Failure outcomes are neither persisted nor published.
//
// Example:
//
//	handler := NewPayOrderCommandHandler(uowFactory, reputations, policy, logger)
//	cmd, _ := NewPayOrderCommand(clientID, orderID, amount)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    // 404
//	case errors.Is(err, ErrOrderAlreadyPaid):
//	    // 409
//	case errors.Is(err, ErrIncorrectAmount):
//	    // 422
//	}
type PayOrderCommandHandler struct {
	uowFactory         OrderUoWFactory
	reputationProvider ports.ClientReputationProvider
	deliveryCostPolicy services.DeliveryCostPolicy
	logger             *slog.Logger
}

// NewPayOrderCommandHandler creates a handler for the payment workflow.
func NewPayOrderCommandHandler(
	uowFactory OrderUoWFactory,
	reputationProvider ports.ClientReputationProvider,
	deliveryCostPolicy services.DeliveryCostPolicy,
	logger *slog.Logger,
) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory:         uowFactory,
		reputationProvider: reputationProvider,
		deliveryCostPolicy: deliveryCostPolicy,
		logger:             logger.With("component", "pay_order_handler"),
	}
}

// Handle processes the payment command.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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
			return ErrOrderNotFound
		}
		return err
	}

	reputation, err := h.reputationProvider.Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	orderValue, err := clientOrder.OrderValue()
	if err != nil {
		return err
	}

	del, err := h.deliveryCostPolicy.Calculate(orderValue, reputation)
	if err != nil {
		return err
	}

	outcome, err := clientOrder.Pay(cmd.Amount(), del)
	if err != nil {
		return err
	}

	if failure := h.raiseErrorWhenFailure(ctx, outcome); failure != nil {
		return failure
	}

	if err = uow.OrderRepository().Update(ctx, clientOrder); err != nil {
		return err
	}

	if err = uow.EventOutbox().Store(ctx, outcome); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// raiseErrorWhenFailure translates failure outcomes into the named errors of
// the command boundary. Success outcomes fall through as nil.
func (h *PayOrderCommandHandler) raiseErrorWhenFailure(ctx context.Context, outcome order.PaymentOutcome) error {
	switch event := outcome.(type) {
	case order.OrderPayFailedAlreadyPaid:
		h.logger.ErrorContext(ctx, "Payment rejected: order already paid",
			"order_id", event.OrderID.String())
		return ErrOrderAlreadyPaid
	case order.OrderPayFailedAmountIsDifferent:
		h.logger.ErrorContext(ctx, "Payment rejected: amount is different",
			"order_id", event.OrderID.String(),
			"amount", event.Amount.String(),
			"expected", event.Expected.String())
		return ErrIncorrectAmount
	default:
		h.logger.InfoContext(ctx, "Payment succeeded", "event", event.Name())
		return nil
	}
}
