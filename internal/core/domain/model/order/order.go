package order

import (
	"errors"
	"fmt"

	"vinylshop/internal/core/domain/model/delivery"
	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCanNotModifyPaidOrder is returned when an item addition is attempted
	// against a Paid order. This is a structural invariant violation: a paid
	// order is immutable with respect to items and payment.
	ErrCanNotModifyPaidOrder = errors.New("can not modify paid order")
)

// initialVersion is the version assigned to newly created aggregates.
// The repository bumps it on every successful update.
const initialVersion = 1

// Order represents a purchase order in the vinyl shop. It is the aggregate
// root that owns its line items and payment status.
//
// Order enforces these invariants:
//   - Must have a valid unique identifier and owning client
//   - Items may be added only while the order is Open
//   - Exactly one payment may ever succeed; once Paid the aggregate is immutable
//   - All item prices share one currency; the order value is their sum
//
// Methods mutate the in-memory aggregate only; callers are responsible for
// persistence. The exactly-one-successful-pay invariant holds under concurrent
// access only when the repository provides load-modify-store atomicity per
// order id, which the postgres adapter implements with an optimistic version
// check on update.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientID identifies the owning client
	clientID kernel.UUID

	// items are the line items in insertion order
	items []Item

	// status represents the current state in the order lifecycle
	status Status

	// version supports the repository's optimistic concurrency check
	version int

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates an Open order owned by the given client, with zero or more
// initial items. All inputs are validated; any invalid item fails construction.
func NewOrder(id kernel.UUID, clientID kernel.UUID, items []Item) (*Order, error) {
	o := &Order{
		status:        Open,
		version:       initialVersion,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with an explicit status
// and version. It is intended for repository use only.
func RestoreOrder(id kernel.UUID, clientID kernel.UUID, items []Item, status Status, version int) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setItems(items),
		o.setStatus(status),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the owning client.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the aggregate version used for optimistic concurrency.
func (o *Order) Version() int {
	return o.version
}

// AddItem appends an item to an Open order.
//
// Returns ErrCanNotModifyPaidOrder when the order is Paid: a paid order is
// immutable, and the whole command using this method must abort without
// persisting any partial batch.
func (o *Order) AddItem(productID ProductID, price kernel.Money) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.status.CanBeModified() {
		return ErrCanNotModifyPaidOrder
	}

	item, err := NewItem(productID, price)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// OrderValue returns the sum of all item prices. All items must share one
// currency; a mismatch fails fast with ErrCurrencyMismatch. An empty order
// has the neutral zero value.
func (o *Order) OrderValue() (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	value := kernel.ZeroMoney()
	for _, item := range o.items {
		sum, err := value.Add(item.Price())
		if err != nil {
			return kernel.Money{}, err
		}
		value = sum
	}

	return value, nil
}

// Pay executes the payment state transition.
//
// The three expected business outcomes are returned as PaymentOutcome values,
// never as errors:
//
//  1. The order is already Paid: OrderPayFailedAlreadyPaid, aggregate unchanged.
//  2. The tendered amount differs from order value plus delivery charge
//     (compared exactly): OrderPayFailedAmountIsDifferent, aggregate unchanged.
//  3. Otherwise the order transitions to Paid and OrderPaid is returned.
//
// The error return covers only contract violations: unconstructed inputs and
// a tendered currency that differs from the order currency, which is never
// silently compared by numeric amount.
func (o *Order) Pay(amount kernel.Money, del delivery.Delivery) (PaymentOutcome, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := amount.Validate(); err != nil {
		return nil, err
	}
	if err := del.Validate(); err != nil {
		return nil, err
	}

	if o.status.IsPaid() {
		return OrderPayFailedAlreadyPaid{OrderID: o.id}, nil
	}

	value, err := o.OrderValue()
	if err != nil {
		return nil, err
	}

	expected, err := value.Add(del.Charge())
	if err != nil {
		return nil, err
	}

	if !amount.SameCurrency(expected) {
		return nil, kernel.ErrCurrencyMismatch
	}

	if !amount.IsEqual(expected) {
		return OrderPayFailedAmountIsDifferent{
			OrderID:  o.id,
			Amount:   amount,
			Expected: expected,
		}, nil
	}

	o.status = Paid
	return OrderPaid{OrderID: o.id, Amount: amount}, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < initialVersion {
		return errs.NewValueIsInvalidErrorWithCause("version is invalid",
			fmt.Errorf("%d is not a valid aggregate version", version))
	}
	o.version = version
	return nil
}
