package order

import (
	"fmt"

	"vinylshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a minimal state machine:
//
//	Open ──> Paid
//
// Open is the initial state, Paid is terminal. Items may only be added while
// the order is Open; a paid order is immutable.
//
// Status is a value object that validates state values and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when an order is created.
	// Orders in this status accept item additions and a single payment.
	Open

	// Paid indicates the order has been settled. This is a final state:
	// no item additions and no further payments are allowed.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Open:    "Open",
		Paid:    "Paid",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open: "Open",
		Paid: "Paid",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Open and Paid; Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsPaid reports whether the status is the terminal Paid state.
func (s Status) IsPaid() bool {
	return s == Paid
}

// CanBeModified reports whether item mutation is allowed in this status.
// Only Open orders accept item additions.
func (s Status) CanBeModified() bool {
	return s == Open
}
