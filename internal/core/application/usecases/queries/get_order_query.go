// Package queries contains read-only operations over the order store.
// Query handlers bypass the domain model and read directly through the
// database connection, implementing the read side of the CQRS architecture.
package queries

import (
	"errors"

	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its items and total value.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	handler := NewGetOrderQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Order %s is %s, total %s\n", resp.ID, resp.Status, resp.Total)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model of a single order.
type GetOrderQueryResponse struct {
	ID       kernel.UUID
	ClientID kernel.UUID
	Status   string
	Items    []GetOrderItemResponse
	Total    kernel.Money
}

// GetOrderItemResponse is one line item of the read model.
type GetOrderItemResponse struct {
	ProductID string
	Price     kernel.Money
}
