package cart_test

import (
	"testing"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() cart.Item {
	return cart.Item{
		ProductID: kernel.NewUUID(),
		Name:      "Widget",
		UnitPrice: kernel.MustNewMoney(100),
		Quantity:  2,
		ImageURL:  "widget.jpg",
	}
}

func TestNewCart(t *testing.T) {
	t.Run("valid_cart", func(t *testing.T) {
		userID := kernel.NewUUID()

		c, err := cart.NewCart(userID, []cart.Item{validItem()}, kernel.MustNewMoney(200))

		require.NoError(t, err)
		assert.True(t, c.UserID().IsEqual(userID))
		assert.Len(t, c.Items(), 1)
		assert.Equal(t, 200.0, c.TotalPrice().Amount())
		assert.False(t, c.IsEmpty())
	})

	t.Run("empty_cart_allowed", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID(), nil, kernel.Money{})

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("invalid_user_rejected", func(t *testing.T) {
		_, err := cart.NewCart(kernel.UUID{}, nil, kernel.Money{})

		require.Error(t, err)
	})

	t.Run("invalid_item_rejected", func(t *testing.T) {
		item := validItem()
		item.Quantity = 0

		_, err := cart.NewCart(kernel.NewUUID(), []cart.Item{item}, kernel.MustNewMoney(200))

		require.Error(t, err)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("valid_item", func(t *testing.T) {
		require.NoError(t, validItem().Validate())
	})

	t.Run("missing_name", func(t *testing.T) {
		item := validItem()
		item.Name = ""

		require.Error(t, item.Validate())
	})

	t.Run("zero_product_id", func(t *testing.T) {
		item := validItem()
		item.ProductID = kernel.UUID{}

		require.Error(t, item.Validate())
	})
}

func TestCart_IsEmpty(t *testing.T) {
	t.Run("nil_cart_is_empty", func(t *testing.T) {
		var c *cart.Cart
		assert.True(t, c.IsEmpty())
	})
}

func TestCart_Validate(t *testing.T) {
	var c cart.Cart
	require.ErrorIs(t, c.Validate(), cart.ErrCartIsNotConstructed)
}
