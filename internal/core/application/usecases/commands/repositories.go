// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence, with domain events staged in the same transaction.
package commands

import (
	"context"

	"vinylshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EventOutboxFactory provides access to the event outbox within a transaction.
	EventOutboxFactory interface {
		EventOutbox() ports.EventOutbox
	}

	// OrderUoW manages transactions for order operations: repository access plus
	// event staging, committed atomically.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		EventOutboxFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
