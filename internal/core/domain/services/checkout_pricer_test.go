package services_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/offer"
	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutPricer_Price(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	validFrom := now.AddDate(0, -1, 0)
	validUntil := now.AddDate(0, 1, 0)

	newPercentageOffer := func(t *testing.T, minimum kernel.Money, rate float64, maxDiscount *kernel.Money) *offer.Offer {
		t.Helper()
		off, err := offer.NewPercentageOffer(
			kernel.NewUUID(), "SUMMER", minimum, rate, maxDiscount, validFrom, validUntil, nil)
		require.NoError(t, err)
		return off
	}

	t.Run("should return subtotal unchanged when no offer is given", func(t *testing.T) {
		pricer := services.NewCheckoutPricer()
		subtotal := kernel.MustNewMoney(120)

		total, applied, err := pricer.Price(subtotal, nil, now)

		require.NoError(t, err)
		assert.Nil(t, applied)
		assert.True(t, total.IsEqual(subtotal))
	})

	t.Run("should apply percentage discount and register use", func(t *testing.T) {
		pricer := services.NewCheckoutPricer()
		subtotal := kernel.MustNewMoney(200)
		off := newPercentageOffer(t, kernel.MustNewMoney(100), 10, nil)

		total, applied, err := pricer.Price(subtotal, off, now)

		require.NoError(t, err)
		require.NotNil(t, applied)
		assert.True(t, total.IsEqual(kernel.MustNewMoney(180)))
		assert.True(t, applied.Discount().IsEqual(kernel.MustNewMoney(20)))
		assert.True(t, applied.OfferID().IsEqual(off.ID()))
		assert.Equal(t, 1, off.UsedCount())
	})

	t.Run("should cap percentage discount at max discount", func(t *testing.T) {
		pricer := services.NewCheckoutPricer()
		subtotal := kernel.MustNewMoney(1000)
		maxDiscount := kernel.MustNewMoney(50)
		off := newPercentageOffer(t, kernel.MustNewMoney(100), 20, &maxDiscount)

		total, applied, err := pricer.Price(subtotal, off, now)

		require.NoError(t, err)
		require.NotNil(t, applied)
		assert.True(t, total.IsEqual(kernel.MustNewMoney(950)))
		assert.True(t, applied.Discount().IsEqual(maxDiscount))
	})

	t.Run("should apply fixed discount capped at subtotal", func(t *testing.T) {
		pricer := services.NewCheckoutPricer()
		subtotal := kernel.MustNewMoney(30)
		off, err := offer.NewFixedOffer(
			kernel.NewUUID(), "FLAT50", kernel.Money{}, kernel.MustNewMoney(50), validFrom, validUntil, nil)
		require.NoError(t, err)

		total, applied, err := pricer.Price(subtotal, off, now)

		require.NoError(t, err)
		require.NotNil(t, applied)
		assert.True(t, total.IsZero())
		assert.True(t, applied.Discount().IsEqual(subtotal))
	})

	t.Run("should ignore offer below minimum purchase", func(t *testing.T) {
		pricer := services.NewCheckoutPricer()
		subtotal := kernel.MustNewMoney(80)
		off := newPercentageOffer(t, kernel.MustNewMoney(100), 10, nil)

		total, applied, err := pricer.Price(subtotal, off, now)

		require.NoError(t, err)
		assert.Nil(t, applied)
		assert.True(t, total.IsEqual(subtotal))
		assert.Equal(t, 0, off.UsedCount())
	})

	t.Run("should ignore offer outside validity window", func(t *testing.T) {
		pricer := services.NewCheckoutPricer()
		subtotal := kernel.MustNewMoney(200)
		off := newPercentageOffer(t, kernel.MustNewMoney(100), 10, nil)

		total, applied, err := pricer.Price(subtotal, off, validUntil.AddDate(0, 0, 1))

		require.NoError(t, err)
		assert.Nil(t, applied)
		assert.True(t, total.IsEqual(subtotal))
	})

	t.Run("should ignore exhausted offer", func(t *testing.T) {
		pricer := services.NewCheckoutPricer()
		subtotal := kernel.MustNewMoney(200)
		cap := 1
		off, err := offer.NewPercentageOffer(
			kernel.NewUUID(), "ONCE", kernel.Money{}, 10, nil, validFrom, validUntil, &cap)
		require.NoError(t, err)

		_, applied, err := pricer.Price(subtotal, off, now)
		require.NoError(t, err)
		require.NotNil(t, applied)

		total, applied, err := pricer.Price(subtotal, off, now)
		require.NoError(t, err)
		assert.Nil(t, applied)
		assert.True(t, total.IsEqual(subtotal))
		assert.Equal(t, 1, off.UsedCount())
	})

	t.Run("should reject an offer that was not constructed", func(t *testing.T) {
		pricer := services.NewCheckoutPricer()

		_, _, err := pricer.Price(kernel.MustNewMoney(100), &offer.Offer{}, now)

		assert.ErrorIs(t, err, offer.ErrOfferIsNotConstructed)
	})
}
