package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
)

// ErrPaymentNotSuccessful is returned when the gateway reported anything other
// than a completed payment. The order is left untouched.
var ErrPaymentNotSuccessful = errors.New("payment was not successful")

// MarkOrderPaidCommandHandler records a gateway payment confirmation on an order.
//
// Only the order's owner or an administrator may report a payment. A gateway
// status other than the completed one rejects the command without state change.
// Reporting a completed payment on an already-paid order is a no-op, so revenue
// is never double-counted.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderPaidCommandHandler creates a handler for payment confirmations.
func NewMarkOrderPaidCommandHandler(uowFactory OrderUoWFactory) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment confirmation command.
func (h MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	result, err := order.NewPaymentResult(
		cmd.GatewayPaymentID(), cmd.GatewayStatus(), cmd.GatewayUpdateTime(), cmd.PayerEmail())
	if err != nil {
		return err
	}
	if !result.IsSuccessful() {
		return ErrPaymentNotSuccessful
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = cmd.Actor().CanAccessOrder(aggregate.UserID()); err != nil {
		return err
	}

	if err = aggregate.MarkPaid(time.Now().UTC(), &result); err != nil {
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
