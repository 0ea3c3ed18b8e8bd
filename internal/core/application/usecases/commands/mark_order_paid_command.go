package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
		"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
	)
	ErrGatewayPaymentIDIsRequired = errors.New("gateway payment id is required")
	ErrGatewayStatusIsRequired    = errors.New("gateway status is required")
)

// MarkOrderPaidCommand represents a payment confirmation reported back by the
// payment gateway after the customer completed the hosted payment flow.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	actor             account.Actor
	orderID           kernel.UUID
	gatewayPaymentID  string
	gatewayStatus     string
	gatewayUpdateTime string
	payerEmail        string

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to record a gateway payment result
// on an order. The update time and payer email are optional gateway fields.
func NewMarkOrderPaidCommand(
	actor account.Actor,
	orderID kernel.UUID,
	gatewayPaymentID string,
	gatewayStatus string,
	gatewayUpdateTime string,
	payerEmail string,
) (MarkOrderPaidCommand, error) {
	markPaidCommand := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		markPaidCommand.setActor(actor),
		markPaidCommand.setOrderID(orderID),
		markPaidCommand.setGatewayPaymentID(gatewayPaymentID),
		markPaidCommand.setGatewayStatus(gatewayStatus),
	); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	markPaidCommand.gatewayUpdateTime = gatewayUpdateTime
	markPaidCommand.payerEmail = payerEmail
	return markPaidCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// Actor returns the requester reporting the payment.
func (c MarkOrderPaidCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being paid.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// GatewayPaymentID returns the gateway's identifier for the payment.
func (c MarkOrderPaidCommand) GatewayPaymentID() string {
	return c.gatewayPaymentID
}

// GatewayStatus returns the status string the gateway reported.
func (c MarkOrderPaidCommand) GatewayStatus() string {
	return c.gatewayStatus
}

// GatewayUpdateTime returns the gateway's timestamp for the payment, if any.
func (c MarkOrderPaidCommand) GatewayUpdateTime() string {
	return c.gatewayUpdateTime
}

// PayerEmail returns the payer's email address, if the gateway reported one.
func (c MarkOrderPaidCommand) PayerEmail() string {
	return c.payerEmail
}

func (c *MarkOrderPaidCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderPaidCommand) setGatewayPaymentID(gatewayPaymentID string) error {
	if gatewayPaymentID == "" {
		return ErrGatewayPaymentIDIsRequired
	}

	c.gatewayPaymentID = gatewayPaymentID
	return nil
}

func (c *MarkOrderPaidCommand) setGatewayStatus(gatewayStatus string) error {
	if gatewayStatus == "" {
		return ErrGatewayStatusIsRequired
	}

	c.gatewayStatus = gatewayStatus
	return nil
}
