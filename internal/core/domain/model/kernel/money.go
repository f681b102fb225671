package kernel

import (
	"fmt"
	"strings"

	"vinylshop/internal/pkg/errs"
	"vinylshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrMoneyIsNotConstructed indicates that a Money value was not created through
	// one of the constructor functions.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
		"Money must be created via NewMoney, MoneyFromString or ZeroMoney",
	)

	// ErrCurrencyMismatch indicates an attempt to combine or compare Money values
	// of different currencies. This is a contract violation, never silently coerced.
	ErrCurrencyMismatch = errs.NewValueIsInvalidError("money currencies do not match")
)

const currencyCodeLength = 3

// Money is an immutable value object holding a decimal amount and an ISO 4217
// currency code. Two Money values are equal when both amount and currency match.
//
// Arithmetic across currencies fails fast with ErrCurrencyMismatch. The only
// exception is the neutral zero produced by ZeroMoney, which carries no currency
// and acts as the additive identity, so that the value of an empty order is
// well defined.
//
// The zero value of Money is invalid and must be constructed through NewMoney,
// MoneyFromString or ZeroMoney.
type Money struct {
	amount   decimal.Decimal
	currency string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value with the given amount and currency code.
// The currency must be a three-letter code; it is normalized to upper case.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != currencyCodeLength {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%q is not a three-letter currency code", currency),
		)
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString creates a Money value parsing the amount from its decimal
// string representation, e.g. "17.00".
func MoneyFromString(amount string, currency string) (Money, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(value, currency)
}

// ZeroMoney returns the neutral zero: amount 0 with no currency. It is the
// additive identity of Add and compares equal only to other neutral zeros.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code. The neutral zero has an empty currency.
func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// isNeutral reports whether this is the currency-less zero from ZeroMoney.
func (m Money) isNeutral() bool {
	return m.currency == "" && m.amount.IsZero()
}

// Add returns the sum of two Money values. Both operands must be constructed
// and carry the same currency; a neutral zero adopts the other operand's
// currency. Mismatched currencies return ErrCurrencyMismatch.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	currency := m.currency
	switch {
	case m.isNeutral():
		currency = other.currency
	case other.isNeutral():
	case m.currency != other.currency:
		return Money{}, ErrCurrencyMismatch
	}

	return Money{
		amount:   m.amount.Add(other.amount),
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// IsEqual compares two Money values by amount and currency. The amounts are
// compared by numeric value, so 17.0 and 17.00 of the same currency are equal.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// SameCurrency reports whether both values carry the same currency code.
// A neutral zero matches any currency.
func (m Money) SameCurrency(other Money) bool {
	return m.isNeutral() || other.isNeutral() || m.currency == other.currency
}

// String returns the amount followed by the currency code, e.g. "17.00 USD".
func (m Money) String() string {
	if m.currency == "" {
		return m.amount.String()
	}
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency)
}
