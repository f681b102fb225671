package order

import (
	"vinylshop/internal/core/domain/model/kernel"
)

// Event is an immutable record of a fact that occurred inside the order
// domain. Events are published for audit and integration; they carry enough
// data (order id, amounts) to be consumed without loading the aggregate.
type Event interface {
	// Name returns the event name used as the message type on the wire.
	Name() string

	isOrderEvent()
}

// PaymentOutcome is the closed set of results the pay operation can produce.
// Exactly one of the three variants is returned from Order.Pay:
//
//   - OrderPaid: the payment succeeded and the order is now Paid
//   - OrderPayFailedAlreadyPaid: the order had already been settled
//   - OrderPayFailedAmountIsDifferent: the tendered amount did not match
//
// The two failure variants are expected business outcomes, not errors; the
// command layer decides how to report them.
type PaymentOutcome interface {
	Event

	isPaymentOutcome()
}

// OrderPaid is produced when a payment settles the order.
type OrderPaid struct {
	OrderID kernel.UUID
	Amount  kernel.Money
}

// Name implements Event.
func (OrderPaid) Name() string { return "OrderPaid" }

func (OrderPaid) isOrderEvent()     {}
func (OrderPaid) isPaymentOutcome() {}

// OrderPayFailedAlreadyPaid is produced when a payment is attempted against an
// order that has already been settled. The aggregate is left unchanged, which
// makes repeated payment attempts safe.
type OrderPayFailedAlreadyPaid struct {
	OrderID kernel.UUID
}

// Name implements Event.
func (OrderPayFailedAlreadyPaid) Name() string { return "OrderPayFailedBecauseAlreadyPaid" }

func (OrderPayFailedAlreadyPaid) isOrderEvent()     {}
func (OrderPayFailedAlreadyPaid) isPaymentOutcome() {}

// OrderPayFailedAmountIsDifferent is produced when the tendered amount does
// not exactly equal the order value plus the delivery charge.
type OrderPayFailedAmountIsDifferent struct {
	OrderID  kernel.UUID
	Amount   kernel.Money
	Expected kernel.Money
}

// Name implements Event.
func (OrderPayFailedAmountIsDifferent) Name() string { return "OrderPayFailedBecauseAmountIsDifferent" }

func (OrderPayFailedAmountIsDifferent) isOrderEvent()     {}
func (OrderPayFailedAmountIsDifferent) isPaymentOutcome() {}

// ItemsAddedToOrder is produced when a batch of items has been applied to an
// open order.
type ItemsAddedToOrder struct {
	OrderID kernel.UUID
	Items   []Item
}

// Name implements Event.
func (ItemsAddedToOrder) Name() string { return "ItemsAddedToOrder" }

func (ItemsAddedToOrder) isOrderEvent() {}
