package queries

import (
	"context"

	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/core/domain/model/order"
	"vinylshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Items are returned in insertion order and the
// total is the sum of item prices.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	var orderRow struct {
		ID       uuid.UUID
		ClientID uuid.UUID
		Status   int
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&orderRow).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if orderRow.ID == uuid.Nil {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	response.ID = query.OrderID()
	clientID, err := kernel.UUIDFromBytes(orderRow.ClientID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.ClientID = clientID
	response.Status = order.Status(orderRow.Status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			price_amount,
			price_currency
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	total := kernel.ZeroMoney()
	response.Items = make([]GetOrderItemResponse, 0)

	for rows.Next() {
		var productID, amount, currency string

		if err = rows.Scan(&productID, &amount, &currency); err != nil {
			return GetOrderQueryResponse{}, err
		}

		price, priceErr := kernel.MoneyFromString(amount, currency)
		if priceErr != nil {
			return GetOrderQueryResponse{}, priceErr
		}

		total, err = total.Add(price)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}

		response.Items = append(response.Items, GetOrderItemResponse{
			ProductID: productID,
			Price:     price,
		})
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Total = total
	return response, nil
}
