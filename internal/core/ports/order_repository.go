package ports

import (
	"context"

	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Implementations must provide load-modify-store atomicity per order id:
// when two concurrent workflows load the same order and both try to store it,
// at most one Update may succeed. The postgres adapter implements this with an
// optimistic version check. The exactly-one-successful-pay invariant of the
// Order aggregate depends on this guarantee.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails when the stored version differs from the aggregate's version,
	// signalling a concurrent modification.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
