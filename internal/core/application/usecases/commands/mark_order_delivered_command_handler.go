package commands

import (
	"context"
	"time"
)

// MarkOrderDeliveredCommandHandler records delivery of a paid order.
// Delivery of an unpaid order is rejected with order.ErrOrderNotPaid.
type MarkOrderDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderDeliveredCommandHandler creates a handler for delivery confirmations.
func NewMarkOrderDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
func (h MarkOrderDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkOrderDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().RequireAdmin("mark order delivered"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkDelivered(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
