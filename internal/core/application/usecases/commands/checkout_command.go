package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// CheckoutCommand represents a request to convert the requester's cart into an order.
// Carries the shipping destination, the payment method the customer picked, and
// an optional offer code.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	address, _ := order.NewAddress("123 Main Street", "Springfield", "62704", "US")
//	cmd, err := NewCheckoutCommand(actor, orderID, address, "payfast", "SUMMER")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, gateway)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrCartIsEmpty) {
//	    // nothing to check out
//	    return
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	actor           account.Actor
	orderID         kernel.UUID
	shippingAddress order.Address
	paymentMethod   string
	offerCode       string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the actor's cart.
// The offer code may be empty; an unknown or inapplicable code is ignored at
// handling time rather than rejected here.
func NewCheckoutCommand(
	actor account.Actor,
	orderID kernel.UUID,
	shippingAddress order.Address,
	paymentMethod string,
	offerCode string,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setActor(actor),
		checkoutCommand.setOrderID(orderID),
		checkoutCommand.setShippingAddress(shippingAddress),
		checkoutCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	checkoutCommand.offerCode = offerCode
	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// Actor returns the requester checking out their cart.
func (c CheckoutCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the identifier assigned to the new order.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShippingAddress returns the delivery destination.
func (c CheckoutCommand) ShippingAddress() order.Address {
	return c.shippingAddress
}

// PaymentMethod returns the payment method the customer picked.
func (c CheckoutCommand) PaymentMethod() string {
	return c.paymentMethod
}

// OfferCode returns the optional offer code; empty when none was entered.
func (c CheckoutCommand) OfferCode() string {
	return c.offerCode
}

func (c *CheckoutCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setShippingAddress(shippingAddress order.Address) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = paymentMethod
	return nil
}
