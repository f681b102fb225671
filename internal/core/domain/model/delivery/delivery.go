// Package delivery provides the delivery charge value object attached to a
// payment attempt. The charge itself is computed by the delivery cost policy
// domain service; the order aggregate only adds it to the order value to form
// the amount the client must pay.
package delivery

import (
	"errors"

	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed indicates that a Delivery was not created through
// the NewDelivery constructor.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is an immutable value object wrapping the delivery charge for a
// single payment attempt.
type Delivery struct {
	charge kernel.Money

	guard guard.ConstructorGuard
}

// NewDelivery creates a Delivery with a validated charge.
func NewDelivery(charge kernel.Money) (Delivery, error) {
	if err := charge.Validate(); err != nil {
		return Delivery{}, err
	}

	return Delivery{
		charge: charge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// FreeDelivery returns a Delivery with no charge. The neutral zero charge
// adapts to the order currency when added to the order value.
func FreeDelivery() Delivery {
	return Delivery{
		charge: kernel.ZeroMoney(),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the Delivery was created through a constructor.
func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// Charge returns the delivery charge.
func (d Delivery) Charge() kernel.Money {
	return d.charge
}

// IsFree reports whether no charge applies.
func (d Delivery) IsFree() bool {
	return d.charge.IsZero()
}
