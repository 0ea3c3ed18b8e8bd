package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
	"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
)

// MarkOrderDeliveredCommand represents a request to record that an order
// reached the customer. Restricted to administrators.
type MarkOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderDeliveredCommand creates a command to mark an order as delivered.
func NewMarkOrderDeliveredCommand(actor account.Actor, orderID kernel.UUID) (MarkOrderDeliveredCommand, error) {
	deliveredCommand := MarkOrderDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveredCommand.setActor(actor),
		deliveredCommand.setOrderID(orderID),
	); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}

	return deliveredCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

// Actor returns the requester recording the delivery.
func (c MarkOrderDeliveredCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the identifier of the delivered order.
func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderDeliveredCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *MarkOrderDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
