package order

import (
	"errors"
	"fmt"

	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/pkg/errs"
	"vinylshop/internal/pkg/guard"
)

var (
	// ErrProductIDIsRequired indicates that a product identifier was empty.
	ErrProductIDIsRequired = errs.NewValueIsRequiredError("productId")

	// ErrItemIsNotConstructed indicates that an Item was not created through
	// the NewItem constructor.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// ProductID is a value object referencing a record in the shop catalog.
// It is an opaque identifier owned by the catalog; the order aggregate only
// stores it. The zero value is invalid.
type ProductID struct {
	value string
}

// NewProductID creates a ProductID from its string form.
// Returns ErrProductIDIsRequired for an empty string.
func NewProductID(value string) (ProductID, error) {
	if value == "" {
		return ProductID{}, ErrProductIDIsRequired
	}
	return ProductID{value: value}, nil
}

// Validate checks that the ProductID carries a non-empty value.
func (p ProductID) Validate() error {
	if p.value == "" {
		return ErrProductIDIsRequired
	}
	return nil
}

// String returns the catalog identifier.
func (p ProductID) String() string {
	return p.value
}

// IsEqual compares two product identifiers by value.
func (p ProductID) IsEqual(other ProductID) bool {
	return p.value == other.value
}

// Item is an immutable value object pairing a catalog product with the unit
// price it was sold at. Insertion order of items is preserved for display,
// but does not affect the order value.
type Item struct {
	productID ProductID
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an Item with a validated product reference and price.
func NewItem(productID ProductID, price kernel.Money) (Item, error) {
	if err := errors.Join(
		productID.Validate(),
		price.Validate(),
	); err != nil {
		return Item{}, err
	}

	return Item{
		productID: productID,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the catalog reference of the item.
func (i Item) ProductID() ProductID {
	return i.productID
}

// Price returns the unit price the item was added at.
func (i Item) Price() kernel.Money {
	return i.price
}

// IsEqual compares two items by product reference and price.
func (i Item) IsEqual(other Item) bool {
	return i.productID.IsEqual(other.productID) && i.price.IsEqual(other.price)
}

// String renders the item for logs and debugging.
func (i Item) String() string {
	return fmt.Sprintf("%s @ %s", i.productID, i.price)
}
