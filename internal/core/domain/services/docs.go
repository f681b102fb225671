// Package services provides domain services that implement business rules
// which don't naturally belong to a single aggregate root in the vinyl shop.
//
// The package includes:
//   - DeliveryCostPolicy: A pure pricing strategy for delivery charges based
//     on order value tiers and client reputation
//
// Domain services are injected into command handlers as collaborators,
// keeping aggregates free of pricing knowledge and enabling substitution
// in tests, following Domain-Driven Design principles.
package services
