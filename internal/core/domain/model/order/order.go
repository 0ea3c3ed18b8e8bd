package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when attempting to create an order from an
	// empty item list. An order with an empty cart cannot exist.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")

	// ErrPaymentMethodIsRequired is returned when attempting to create an order
	// without a payment method.
	ErrPaymentMethodIsRequired = errs.NewValueIsRequiredError("payment method")

	// ErrOrderNotPaid is returned when a deliver transition is requested on an
	// unpaid order. Delivery never precedes payment.
	ErrOrderNotPaid = errors.New("order must be paid before it can be delivered")
)

// AppliedOffer records which promotional offer was applied to an order and the
// discount amount that was actually subtracted from the subtotal. It is
// immutable after creation; the total price is never re-derived from it.
type AppliedOffer struct {
	offerID  kernel.UUID
	discount kernel.Money
}

// NewAppliedOffer creates an applied-offer record.
func NewAppliedOffer(offerID kernel.UUID, discount kernel.Money) (AppliedOffer, error) {
	if err := errors.Join(offerID.Validate(), discount.Validate()); err != nil {
		return AppliedOffer{}, err
	}
	return AppliedOffer{offerID: offerID, discount: discount}, nil
}

// OfferID returns the applied offer's identifier.
func (a AppliedOffer) OfferID() kernel.UUID {
	return a.offerID
}

// Discount returns the discount amount that was applied.
func (a AppliedOffer) Discount() kernel.Money {
	return a.discount
}

// Order is the aggregate root of the order lifecycle. It is created once from
// a cart snapshot at checkout and afterwards only transitions through the
// payment/delivery/cancellation state machine.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning user
//   - Must have at least one line item
//   - Total price is computed at creation and never re-derived (avoids
//     double-discounting) and is never negative
//   - Delivery never precedes payment
//   - Payment state is cleared only by an explicit cancellation
//
// The struct uses private fields to ensure encapsulation; state changes go
// through MarkPaid, MarkDelivered, and Cancel, which enforce the transitions.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the purchasing user
	userID kernel.UUID

	// items are the line-item snapshots captured at checkout
	items []Item

	// shippingAddress is the delivery destination
	shippingAddress Address

	// paymentMethod is the payment method chosen at checkout
	paymentMethod string

	// totalPrice is the subtotal minus any applied discount
	totalPrice kernel.Money

	// appliedOffer is the offer applied at checkout (nil if none)
	appliedOffer *AppliedOffer

	// payment state, set by the pay transition
	isPaid        bool
	paidAt        *time.Time
	paymentResult *PaymentResult

	// delivery state, set by the deliver transition
	isDelivered bool
	deliveredAt *time.Time

	// createdAt is the checkout timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder/RestoreOrder
	isConstructed bool
}

// NewOrder creates an Order from checkout data. This is the only way to create
// a new order; it validates every invariant the aggregate maintains.
//
// The item list must be non-empty and each item valid. The total price is the
// already-discounted amount computed by the checkout pricing service; it is
// stored as-is and never recomputed.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	shippingAddress Address,
	paymentMethod string,
	totalPrice kernel.Money,
	appliedOffer *AppliedOffer,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
		createdAt:     createdAt,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
		o.setPaymentMethod(paymentMethod),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}
	o.appliedOffer = appliedOffer

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its payment
// and delivery state. It enforces the same field-level validation as NewOrder
// plus the cross-field invariant that a delivered order is paid.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	shippingAddress Address,
	paymentMethod string,
	totalPrice kernel.Money,
	appliedOffer *AppliedOffer,
	isPaid bool,
	paidAt *time.Time,
	paymentResult *PaymentResult,
	isDelivered bool,
	deliveredAt *time.Time,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, userID, items, shippingAddress, paymentMethod, totalPrice, appliedOffer, createdAt)
	if err != nil {
		return nil, err
	}

	if isDelivered && !isPaid {
		return nil, errs.NewValueIsInvalidErrorWithCause("order state",
			errors.New("order is delivered but not paid"))
	}
	if paymentResult != nil {
		if err = paymentResult.Validate(); err != nil {
			return nil, err
		}
	}

	o.isPaid = isPaid
	o.paidAt = paidAt
	o.paymentResult = paymentResult
	o.isDelivered = isDelivered
	o.deliveredAt = deliveredAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the line items to preserve encapsulation.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ShippingAddress returns the shipping destination.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// PaymentMethod returns the payment method chosen at checkout.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// TotalPrice returns the order total (subtotal minus applied discount).
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// AppliedOffer returns the applied offer record, or nil if no offer applied.
func (o *Order) AppliedOffer() *AppliedOffer {
	return o.appliedOffer
}

// IsPaid reports whether a successful payment was recorded.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// PaidAt returns the payment timestamp, or nil if unpaid.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// PaymentResult returns the recorded gateway result, or nil.
// The privileged administrative paid transition records no gateway result.
func (o *Order) PaymentResult() *PaymentResult {
	return o.paymentResult
}

// IsDelivered reports whether the order has been delivered.
func (o *Order) IsDelivered() bool {
	return o.isDelivered
}

// DeliveredAt returns the delivery timestamp, or nil if undelivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the lifecycle status derived from the payment and delivery flags.
func (o *Order) Status() Status {
	switch {
	case o.isDelivered:
		return Delivered
	case o.isPaid:
		return Paid
	default:
		return Created
	}
}

// MarkPaid records a successful payment. The gateway result is optional: the
// privileged administrative transition sets the paid flag without one.
//
// Marking an already-paid order paid again is a no-op, so repeated gateway
// notifications do not overwrite the original payment timestamp or result.
func (o *Order) MarkPaid(now time.Time, result *PaymentResult) error {
	if o.isPaid {
		return nil
	}

	if result != nil {
		if err := result.Validate(); err != nil {
			return err
		}
	}

	o.isPaid = true
	o.paidAt = &now
	o.paymentResult = result
	return nil
}

// MarkDelivered records delivery of a paid order.
// Returns ErrOrderNotPaid if the order has not been paid: delivery never
// precedes payment. Marking an already-delivered order is a no-op.
func (o *Order) MarkDelivered(now time.Time) error {
	if !o.isPaid {
		return ErrOrderNotPaid
	}
	if o.isDelivered {
		return nil
	}

	o.isDelivered = true
	o.deliveredAt = &now
	return nil
}

// Cancel reverts the order to its created state: payment and delivery flags,
// timestamps and the gateway result are cleared. Stock restoration is the
// caller's responsibility since it involves the inventory ledger.
//
// Cancellation is allowed from any state, including Delivered. The applied
// offer record is kept and its usage count stays consumed.
func (o *Order) Cancel() {
	o.isPaid = false
	o.paidAt = nil
	o.paymentResult = nil
	o.isDelivered = false
	o.deliveredAt = nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setShippingAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setTotalPrice(totalPrice kernel.Money) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	o.totalPrice = totalPrice
	return nil
}
