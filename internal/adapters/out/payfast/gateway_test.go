package payfast_test

import (
	"strings"
	"testing"

	"storefront/internal/adapters/out/payfast"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() payfast.Config {
	return payfast.Config{
		MerchantID:  "10000100",
		MerchantKey: "46f0cd694581a",
		ReturnURL:   "https://shop.example.com/return",
		CancelURL:   "https://shop.example.com/cancel",
		NotifyURL:   "https://shop.example.com/notify",
		Sandbox:     true,
	}
}

func newTestItems(t *testing.T) []order.Item {
	t.Helper()
	item1, err := order.NewItem(kernel.NewUUID(), "Blue Widget", kernel.MustNewMoney(80), 1, "")
	require.NoError(t, err)
	item2, err := order.NewItem(kernel.NewUUID(), "Gadget", kernel.MustNewMoney(100), 1, "")
	require.NoError(t, err)
	return []order.Item{item1, item2}
}

func fieldValue(t *testing.T, data ports.PaymentData, name string) string {
	t.Helper()
	for _, field := range data.Fields {
		if field.Name == name {
			return field.Value
		}
	}
	t.Fatalf("field %s not found", name)
	return ""
}

func TestNewGateway(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		gateway, err := payfast.NewGateway(newTestConfig())
		require.NoError(t, err)
		assert.NotNil(t, gateway)
	})

	t.Run("missing merchant id", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.MerchantID = ""
		_, err := payfast.NewGateway(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing merchant key", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.MerchantKey = ""
		_, err := payfast.NewGateway(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGateway_BuildPayment(t *testing.T) {
	orderID, err := kernel.UUIDFromString("3f2c6f74-2f5a-4b8e-9c1d-8d2f5a1b9c3e")
	require.NoError(t, err)

	t.Run("builds signed form in posting order", func(t *testing.T) {
		gateway, err := payfast.NewGateway(newTestConfig())
		require.NoError(t, err)

		data, err := gateway.BuildPayment(orderID, kernel.MustNewMoney(180), newTestItems(t))
		require.NoError(t, err)

		assert.Equal(t, "https://sandbox.payfast.co.za/eng/process", data.ProcessURL)

		names := make([]string, 0, len(data.Fields))
		for _, field := range data.Fields {
			names = append(names, field.Name)
		}
		assert.Equal(t, []string{
			"merchant_id", "merchant_key", "return_url", "cancel_url",
			"notify_url", "m_payment_id", "amount", "item_name", "signature",
		}, names)

		assert.Equal(t, "3f2c6f74-2f5a-4b8e-9c1d-8d2f5a1b9c3e", fieldValue(t, data, "m_payment_id"))
		assert.Equal(t, "180.00", fieldValue(t, data, "amount"))
		assert.Equal(t, "Blue Widget and 1 more", fieldValue(t, data, "item_name"))
		assert.Equal(t, "9a93c9b55b0650f6f227409ae3ffa3d0", fieldValue(t, data, "signature"))
	})

	t.Run("passphrase changes signature", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Passphrase = "jt7NOE43FZPn"
		gateway, err := payfast.NewGateway(cfg)
		require.NoError(t, err)

		data, err := gateway.BuildPayment(orderID, kernel.MustNewMoney(180), newTestItems(t))
		require.NoError(t, err)

		assert.Equal(t, "dfb8681b0fccbaaeb5017a3e424f79ca", fieldValue(t, data, "signature"))
	})

	t.Run("live mode posts to live endpoint", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Sandbox = false
		gateway, err := payfast.NewGateway(cfg)
		require.NoError(t, err)

		data, err := gateway.BuildPayment(orderID, kernel.MustNewMoney(25), newTestItems(t))
		require.NoError(t, err)

		assert.Equal(t, "https://www.payfast.co.za/eng/process", data.ProcessURL)
	})

	t.Run("single item uses its name verbatim", func(t *testing.T) {
		gateway, err := payfast.NewGateway(newTestConfig())
		require.NoError(t, err)

		item, err := order.NewItem(kernel.NewUUID(), "Blue Widget", kernel.MustNewMoney(25), 1, "")
		require.NoError(t, err)

		data, err := gateway.BuildPayment(orderID, kernel.MustNewMoney(25), []order.Item{item})
		require.NoError(t, err)
		assert.Equal(t, "Blue Widget", fieldValue(t, data, "item_name"))
	})

	t.Run("long item name is truncated", func(t *testing.T) {
		gateway, err := payfast.NewGateway(newTestConfig())
		require.NoError(t, err)

		item, err := order.NewItem(kernel.NewUUID(), strings.Repeat("x", 150), kernel.MustNewMoney(25), 1, "")
		require.NoError(t, err)

		data, err := gateway.BuildPayment(orderID, kernel.MustNewMoney(25), []order.Item{item})
		require.NoError(t, err)
		assert.Len(t, fieldValue(t, data, "item_name"), 100)
	})

	t.Run("no items", func(t *testing.T) {
		gateway, err := payfast.NewGateway(newTestConfig())
		require.NoError(t, err)

		_, err = gateway.BuildPayment(orderID, kernel.MustNewMoney(25), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid order id", func(t *testing.T) {
		gateway, err := payfast.NewGateway(newTestConfig())
		require.NoError(t, err)

		_, err = gateway.BuildPayment(kernel.UUID{}, kernel.MustNewMoney(25), newTestItems(t))
		require.Error(t, err)
	})
}
