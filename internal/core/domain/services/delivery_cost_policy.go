package services

import (
	"vinylshop/internal/core/domain/model/client"
	"vinylshop/internal/core/domain/model/delivery"
	"vinylshop/internal/core/domain/model/kernel"
)

// DeliveryCostPolicy is a domain service computing the delivery charge for a
// payment attempt. Implementations must be deterministic and side-effect free:
// the same order value and reputation always produce the same charge, which the
// payment transition relies on for its exact-equality check.
//
// The policy is injected into the payment command handler so the Order
// aggregate stays free of delivery-pricing knowledge.
type DeliveryCostPolicy interface {
	Calculate(orderValue kernel.Money, reputation client.Reputation) (delivery.Delivery, error)
}

// TieredDeliveryCostPolicy applies a flat standard charge, waived for VIP
// clients and for orders whose value reaches the free-delivery threshold.
//
// Example usage:
//
//	charge, _ := kernel.MoneyFromString("2.00", "USD")
//	threshold, _ := kernel.MoneyFromString("100.00", "USD")
//	policy, _ := NewTieredDeliveryCostPolicy(charge, threshold)
//
//	del, err := policy.Calculate(orderValue, client.Standard)
//	if err != nil {
//	    // order value carries a different currency than the policy
//	    return err
//	}
type TieredDeliveryCostPolicy struct {
	standardCharge kernel.Money
	freeThreshold  kernel.Money
}

// NewTieredDeliveryCostPolicy creates a policy with the given standard charge
// and free-delivery threshold. Both must be constructed Money values of the
// same currency.
func NewTieredDeliveryCostPolicy(standardCharge, freeThreshold kernel.Money) (TieredDeliveryCostPolicy, error) {
	if err := standardCharge.Validate(); err != nil {
		return TieredDeliveryCostPolicy{}, err
	}
	if err := freeThreshold.Validate(); err != nil {
		return TieredDeliveryCostPolicy{}, err
	}
	if !standardCharge.SameCurrency(freeThreshold) {
		return TieredDeliveryCostPolicy{}, kernel.ErrCurrencyMismatch
	}

	return TieredDeliveryCostPolicy{
		standardCharge: standardCharge,
		freeThreshold:  freeThreshold,
	}, nil
}

// Calculate returns the delivery charge for the given order value and client
// reputation. VIP clients and orders at or above the threshold get free
// delivery; everyone else pays the standard charge. An order value in a
// currency different from the policy's is a contract violation.
func (p TieredDeliveryCostPolicy) Calculate(
	orderValue kernel.Money,
	reputation client.Reputation,
) (delivery.Delivery, error) {
	if err := orderValue.Validate(); err != nil {
		return delivery.Delivery{}, err
	}
	if err := reputation.Validate(); err != nil {
		return delivery.Delivery{}, err
	}

	if reputation.IsVIP() {
		return delivery.FreeDelivery(), nil
	}

	if !orderValue.SameCurrency(p.freeThreshold) {
		return delivery.Delivery{}, kernel.ErrCurrencyMismatch
	}

	if orderValue.Amount().GreaterThanOrEqual(p.freeThreshold.Amount()) && !orderValue.IsZero() {
		return delivery.FreeDelivery(), nil
	}

	return delivery.NewDelivery(p.standardCharge)
}
