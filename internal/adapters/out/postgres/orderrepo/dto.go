// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs the optimistic concurrency check on update.
type OrderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID uuid.UUID `gorm:"type:uuid;index"`
	Status   int
	Version  int
	Items    []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one line item row. Rows are read back ordered by id,
// which preserves the insertion order of items.
type ItemDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	ProductID     string
	PriceAmount   decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceCurrency string          `gorm:"type:varchar(3)"`
}

// TableName specifies the database table name for item rows.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:       aggregate.ID().Bytes(),
			ProductID:     item.ProductID().String(),
			PriceAmount:   item.Price().Amount(),
			PriceCurrency: item.Price().Currency(),
		})
	}

	return OrderDTO{
		ID:       aggregate.ID().Bytes(),
		ClientID: aggregate.ClientID().Bytes(),
		Status:   int(aggregate.Status()),
		Version:  aggregate.Version(),
		Items:    itemDTOs,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, productErr := order.NewProductID(itemDTO.ProductID)
		if productErr != nil {
			return nil, productErr
		}

		price, priceErr := kernel.NewMoney(itemDTO.PriceAmount, itemDTO.PriceCurrency)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(productID, price)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(id, clientID, items, order.Status(dto.Status), dto.Version)
}
