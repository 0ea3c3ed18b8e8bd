package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/offer"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checkout is attempted with no cart or an
// empty one.
var ErrCartIsEmpty = errors.New("cart is empty")

// CheckoutResult carries the outcome of a successful checkout: the persisted
// order and the payment payload the frontend redirects the customer with.
type CheckoutResult struct {
	Order   *order.Order
	Payment ports.PaymentData
}

// CheckoutCommandHandler converts the requester's cart into a persisted order.
//
// The whole operation runs in a single transaction: the order is persisted,
// stock is reserved for every item, the applied offer's usage count is
// incremented, and the cart is cleared. If any step fails — most notably a
// stock reservation — the transaction rolls back and nothing changes.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, gateway)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrCartIsEmpty):
//	    // nothing to check out
//	case errors.Is(err, product.ErrInsufficientStock):
//	    // at least one item exceeds available stock; no stock changed
//	case err != nil:
//	    // checkout failed
//	default:
//	    redirect(result.Payment)
//	}
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	gateway    ports.PaymentGateway
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence and a
// PaymentGateway for building the payment-initiation payload.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, gateway ports.PaymentGateway) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the checkout command.
//
// An offer code that is unknown, expired, exhausted, or below its minimum
// purchase amount is silently ignored: the order is created at the cart's
// subtotal. The payment payload is built after the transaction commits, since
// building it has no side effects on order state.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userCart, err := uow.CartRepository().GetByUser(ctx, cmd.Actor().ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return CheckoutResult{}, ErrCartIsEmpty
	}
	if err != nil {
		return CheckoutResult{}, err
	}
	if userCart.IsEmpty() {
		return CheckoutResult{}, ErrCartIsEmpty
	}

	items := make([]order.Item, 0, len(userCart.Items()))
	for _, cartItem := range userCart.Items() {
		item, err := order.NewItem(
			cartItem.ProductID, cartItem.Name, cartItem.UnitPrice, cartItem.Quantity, cartItem.ImageURL)
		if err != nil {
			return CheckoutResult{}, err
		}
		items = append(items, item)
	}

	appliedOfferAggregate, err := h.findOffer(ctx, uow.OfferRepository(), cmd.OfferCode())
	if err != nil {
		return CheckoutResult{}, err
	}

	now := time.Now().UTC()
	total, applied, err := services.NewCheckoutPricer().Price(userCart.TotalPrice(), appliedOfferAggregate, now)
	if err != nil {
		return CheckoutResult{}, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.Actor().ID(), items, cmd.ShippingAddress(), cmd.PaymentMethod(), total, applied, now)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CheckoutResult{}, err
	}

	productRepo := uow.ProductRepository()
	for _, item := range newOrder.Items() {
		if err = productRepo.ReserveStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return CheckoutResult{}, err
		}
	}

	if applied != nil {
		if err = uow.OfferRepository().Update(ctx, appliedOfferAggregate); err != nil {
			return CheckoutResult{}, err
		}
	}

	if err = uow.CartRepository().Clear(ctx, cmd.Actor().ID()); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	payment, err := h.gateway.BuildPayment(newOrder.ID(), newOrder.TotalPrice(), newOrder.Items())
	if err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{Order: newOrder, Payment: payment}, nil
}

// findOffer resolves the offer for the given code. An empty or unknown code
// yields a nil offer rather than an error.
func (h CheckoutCommandHandler) findOffer(ctx context.Context, repo ports.OfferRepository, code string) (*offer.Offer, error) {
	if code == "" {
		return nil, nil
	}

	found, err := repo.GetByCode(ctx, code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return found, nil
}
