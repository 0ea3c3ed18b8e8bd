package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(t *testing.T, price float64, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Widget", kernel.MustNewMoney(price), quantity, "widget.jpg")
	require.NoError(t, err)
	return item
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress("12 Loop St", "Cape Town", "8001", "South Africa")
	require.NoError(t, err)
	return addr
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{testItem(t, 100, 2)},
		testAddress(t),
		"payfast",
		kernel.MustNewMoney(200),
		nil,
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid_order", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()
		userID := kernel.NewUUID()
		items := []order.Item{testItem(t, 100, 2)}
		createdAt := time.Now()

		// When
		o, err := order.NewOrder(id, userID, items, testAddress(t), "payfast",
			kernel.MustNewMoney(200), nil, createdAt)

		// Then
		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.UserID().IsEqual(userID))
		assert.Len(t, o.Items(), 1)
		assert.Equal(t, "payfast", o.PaymentMethod())
		assert.Equal(t, 200.0, o.TotalPrice().Amount())
		assert.Nil(t, o.AppliedOffer())
		assert.False(t, o.IsPaid())
		assert.False(t, o.IsDelivered())
		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("empty_items_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, testAddress(t),
			"payfast", kernel.MustNewMoney(0), nil, time.Now())

		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("invalid_id_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(),
			[]order.Item{testItem(t, 100, 1)}, testAddress(t), "payfast",
			kernel.MustNewMoney(100), nil, time.Now())

		require.Error(t, err)
	})

	t.Run("invalid_user_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{},
			[]order.Item{testItem(t, 100, 1)}, testAddress(t), "payfast",
			kernel.MustNewMoney(100), nil, time.Now())

		require.Error(t, err)
	})

	t.Run("missing_payment_method_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{testItem(t, 100, 1)}, testAddress(t), "",
			kernel.MustNewMoney(100), nil, time.Now())

		require.ErrorIs(t, err, order.ErrPaymentMethodIsRequired)
	})

	t.Run("unconstructed_item_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{{}}, testAddress(t), "payfast",
			kernel.MustNewMoney(100), nil, time.Now())

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("with_applied_offer", func(t *testing.T) {
		applied, err := order.NewAppliedOffer(kernel.NewUUID(), kernel.MustNewMoney(20))
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{testItem(t, 100, 2)}, testAddress(t), "payfast",
			kernel.MustNewMoney(180), &applied, time.Now())

		require.NoError(t, err)
		require.NotNil(t, o.AppliedOffer())
		assert.Equal(t, 20.0, o.AppliedOffer().Discount().Amount())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed_order_is_valid", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})

	t.Run("zero_value_order_is_invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("with_gateway_result", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		result, err := order.NewPaymentResult("pf-123", order.GatewayStatusComplete,
			"2026-08-30T10:00:00Z", "buyer@example.com")
		require.NoError(t, err)
		now := time.Now()

		// When
		err = o.MarkPaid(now, &result)

		// Then
		require.NoError(t, err)
		assert.True(t, o.IsPaid())
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, now, *o.PaidAt())
		require.NotNil(t, o.PaymentResult())
		assert.Equal(t, "pf-123", o.PaymentResult().PaymentID())
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("privileged_without_result", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.MarkPaid(time.Now(), nil))

		assert.True(t, o.IsPaid())
		assert.Nil(t, o.PaymentResult())
	})

	t.Run("second_call_keeps_original_state", func(t *testing.T) {
		o := newTestOrder(t)
		first, err := order.NewPaymentResult("pf-1", order.GatewayStatusComplete, "t1", "a@example.com")
		require.NoError(t, err)
		require.NoError(t, o.MarkPaid(time.Now(), &first))
		paidAt := *o.PaidAt()

		second, err := order.NewPaymentResult("pf-2", order.GatewayStatusComplete, "t2", "b@example.com")
		require.NoError(t, err)
		require.NoError(t, o.MarkPaid(time.Now().Add(time.Hour), &second))

		assert.Equal(t, paidAt, *o.PaidAt())
		assert.Equal(t, "pf-1", o.PaymentResult().PaymentID())
	})

	t.Run("unconstructed_result_rejected", func(t *testing.T) {
		o := newTestOrder(t)
		var result order.PaymentResult

		err := o.MarkPaid(time.Now(), &result)

		require.ErrorIs(t, err, order.ErrPaymentResultIsNotConstructed)
		assert.False(t, o.IsPaid())
	})
}

func TestOrder_MarkDelivered(t *testing.T) {
	t.Run("unpaid_order_rejected", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.MarkDelivered(time.Now())

		require.ErrorIs(t, err, order.ErrOrderNotPaid)
		assert.False(t, o.IsDelivered())
	})

	t.Run("paid_order_delivered", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid(time.Now(), nil))
		now := time.Now()

		err := o.MarkDelivered(now)

		require.NoError(t, err)
		assert.True(t, o.IsDelivered())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, now, *o.DeliveredAt())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("second_call_keeps_original_timestamp", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid(time.Now(), nil))
		require.NoError(t, o.MarkDelivered(time.Now()))
		deliveredAt := *o.DeliveredAt()

		require.NoError(t, o.MarkDelivered(time.Now().Add(time.Hour)))

		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("from_created", func(t *testing.T) {
		o := newTestOrder(t)

		o.Cancel()

		assert.False(t, o.IsPaid())
		assert.False(t, o.IsDelivered())
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("from_paid_clears_payment_state", func(t *testing.T) {
		o := newTestOrder(t)
		result, err := order.NewPaymentResult("pf-123", order.GatewayStatusComplete, "t", "a@example.com")
		require.NoError(t, err)
		require.NoError(t, o.MarkPaid(time.Now(), &result))

		o.Cancel()

		assert.False(t, o.IsPaid())
		assert.Nil(t, o.PaidAt())
		assert.Nil(t, o.PaymentResult())
	})

	t.Run("from_delivered_clears_both_flags", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid(time.Now(), nil))
		require.NoError(t, o.MarkDelivered(time.Now()))

		o.Cancel()

		assert.False(t, o.IsPaid())
		assert.False(t, o.IsDelivered())
		assert.Nil(t, o.DeliveredAt())
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("keeps_applied_offer", func(t *testing.T) {
		applied, err := order.NewAppliedOffer(kernel.NewUUID(), kernel.MustNewMoney(20))
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{testItem(t, 100, 2)}, testAddress(t), "payfast",
			kernel.MustNewMoney(180), &applied, time.Now())
		require.NoError(t, err)

		o.Cancel()

		assert.NotNil(t, o.AppliedOffer())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round_trip_of_paid_order", func(t *testing.T) {
		paidAt := time.Now().Add(-time.Hour)
		createdAt := time.Now().Add(-2 * time.Hour)
		result, err := order.NewPaymentResult("pf-9", order.GatewayStatusComplete, "t", "a@example.com")
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{testItem(t, 50, 3)}, testAddress(t), "payfast",
			kernel.MustNewMoney(150), nil,
			true, &paidAt, &result,
			false, nil,
			createdAt,
		)

		require.NoError(t, err)
		assert.True(t, o.IsPaid())
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, "pf-9", o.PaymentResult().PaymentID())
	})

	t.Run("delivered_without_payment_rejected", func(t *testing.T) {
		deliveredAt := time.Now()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{testItem(t, 50, 1)}, testAddress(t), "payfast",
			kernel.MustNewMoney(50), nil,
			false, nil, nil,
			true, &deliveredAt,
			time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a := newTestOrder(t)
	b := newTestOrder(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}

func TestOrder_ItemsAreCopied(t *testing.T) {
	o := newTestOrder(t)

	items := o.Items()
	items[0] = order.Item{}

	require.NoError(t, o.Items()[0].Validate())
}
