package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// SetOrderStatusCommandHandler applies administrative status transitions.
//
// The paid transition bypasses gateway verification and records no payment
// result. The delivered transition keeps the payment precondition. The
// cancelled transition returns every item's reserved stock to the catalog and
// clears the payment and delivery flags; the applied offer's usage count is
// deliberately left as is.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderInventoryUoWFactory
}

// NewSetOrderStatusCommandHandler creates a handler for administrative status
// transitions.
func NewSetOrderStatusCommandHandler(uowFactory OrderInventoryUoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().RequireAdmin("set order status"); err != nil {
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

	now := time.Now().UTC()
	switch cmd.Target() {
	case order.TargetPaid:
		err = aggregate.MarkPaid(now, nil)
	case order.TargetDelivered:
		err = aggregate.MarkDelivered(now)
	case order.TargetCancelled:
		err = h.cancel(ctx, uow.ProductRepository(), aggregate)
	default:
		err = order.ErrInvalidStatus
	}
	if err != nil {
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

// cancel releases every item's reserved stock, then clears the order's payment
// and delivery state. A product that has since been removed from the catalog
// is skipped: the cancellation must not fail because of it.
func (h SetOrderStatusCommandHandler) cancel(
	ctx context.Context,
	productRepo ports.ProductRepository,
	aggregate *order.Order,
) error {
	for _, item := range aggregate.Items() {
		err := productRepo.ReleaseStock(ctx, item.ProductID(), item.Quantity())
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return err
		}
	}

	aggregate.Cancel()
	return nil
}
