package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand represents an administrative status transition:
// forcing an order to paid, delivered, or cancelled.
//
// Example:
//
//	target, err := order.ParseTargetStatus("cancelled")
//	if err != nil {
//	    return err // unknown status string
//	}
//	cmd, _ := NewSetOrderStatusCommand(adminActor, orderID, target)
//	err = NewSetOrderStatusCommandHandler(uowFactory).Handle(ctx, cmd)
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	orderID kernel.UUID
	target  order.TargetStatus

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to transition an order to the
// given target status.
func NewSetOrderStatusCommand(
	actor account.Actor,
	orderID kernel.UUID,
	target order.TargetStatus,
) (SetOrderStatusCommand, error) {
	statusCommand := SetOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setActor(actor),
		statusCommand.setOrderID(orderID),
		statusCommand.setTarget(target),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// Actor returns the administrator requesting the transition.
func (c SetOrderStatusCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being transitioned.
func (c SetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested target status.
func (c SetOrderStatusCommand) Target() order.TargetStatus {
	return c.target
}

func (c *SetOrderStatusCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SetOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetOrderStatusCommand) setTarget(target order.TargetStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
