// Package order provides domain entities and business logic for purchase order
// management in the vinyl shop. It implements the Order aggregate root with
// item mutation rules and the payment state transition.
//
// The package includes:
//   - Order: The aggregate root that owns line items and the payment status
//   - Item: A value object pairing a catalog product with its unit price
//   - Status: A state machine enforcing the Open -> Paid transition
//   - PaymentOutcome: A closed set of events produced by the pay operation
//
// Key business rules:
//   - Items may be added only while the order is Open
//   - Exactly one payment may ever succeed per order
//   - A payment succeeds only when the tendered amount equals order value plus
//     delivery charge, compared exactly
//   - Payment failures are expected outcomes modeled as events, not errors
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
