package delivery_test

import (
	"testing"

	"vinylshop/internal/core/domain/model/delivery"
	"vinylshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	t.Run("should create delivery with a charge", func(t *testing.T) {
		charge, err := kernel.MoneyFromString("2.00", "USD")
		require.NoError(t, err)

		del, err := delivery.NewDelivery(charge)

		require.NoError(t, err)
		require.NoError(t, del.Validate())
		assert.True(t, del.Charge().IsEqual(charge))
		assert.False(t, del.IsFree())
	})

	t.Run("should fail with unconstructed charge", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.Money{})

		require.Error(t, err)
	})
}

func TestFreeDelivery(t *testing.T) {
	del := delivery.FreeDelivery()

	require.NoError(t, del.Validate())
	assert.True(t, del.IsFree())
	assert.True(t, del.Charge().IsZero())
}

func TestDelivery_Validate(t *testing.T) {
	var del delivery.Delivery

	err := del.Validate()

	require.Error(t, err)
	assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, err)
}
