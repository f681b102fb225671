package order_test

import (
	"testing"

	"vinylshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductID(t *testing.T) {
	t.Run("should create from non-empty string", func(t *testing.T) {
		pid, err := order.NewProductID("vinyl-123")

		require.NoError(t, err)
		require.NoError(t, pid.Validate())
		assert.Equal(t, "vinyl-123", pid.String())
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := order.NewProductID("")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrProductIDIsRequired)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var pid order.ProductID

		require.Error(t, pid.Validate())
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := order.NewProductID("vinyl-1")
		b, _ := order.NewProductID("vinyl-1")
		c, _ := order.NewProductID("vinyl-2")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should create item with product and price", func(t *testing.T) {
		pid, _ := order.NewProductID("vinyl-1")
		price := mustMoney(t, "9.99", "USD")

		item, err := order.NewItem(pid, price)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ProductID().IsEqual(pid))
		assert.True(t, item.Price().IsEqual(price))
	})

	t.Run("should fail with invalid product id", func(t *testing.T) {
		_, err := order.NewItem(order.ProductID{}, mustMoney(t, "9.99", "USD"))

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		pid, _ := order.NewProductID("vinyl-1")

		_, err := order.NewItem(pid, order.Item{}.Price())

		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})

	t.Run("should compare by product and price", func(t *testing.T) {
		a := mustItem(t, "vinyl-1", "9.99", "USD")
		b := mustItem(t, "vinyl-1", "9.99", "USD")
		c := mustItem(t, "vinyl-1", "8.99", "USD")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("should render product and price", func(t *testing.T) {
		item := mustItem(t, "vinyl-1", "9.99", "USD")

		assert.Equal(t, "vinyl-1 @ 9.99 USD", item.String())
	})
}
