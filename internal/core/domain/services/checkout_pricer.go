package services

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/offer"
	"storefront/internal/core/domain/model/order"
)

// CheckoutPricer is a domain service responsible for computing the final price
// of an order from its subtotal and an optional promotional offer.
//
// Business rules:
//   - An offer that is nil, outside its validity window, exhausted, or below
//     its minimum purchase threshold is silently ignored: checkout never fails
//     because of an offer, the customer simply pays the subtotal.
//   - An applied offer has its usage registered exactly once.
//   - The final total is never negative.
//
// Example usage:
//
//	pricer := services.NewCheckoutPricer()
//	total, applied, err := pricer.Price(subtotal, off, time.Now().UTC())
//	if applied != nil {
//	    // the offer reduced the price; persist its incremented usage count
//	}
type CheckoutPricer struct{}

// NewCheckoutPricer creates a new CheckoutPricer instance.
func NewCheckoutPricer() CheckoutPricer {
	return CheckoutPricer{}
}

// Price computes the order total for the given subtotal.
//
// When off is nil or not applicable at now, the subtotal is returned unchanged
// with a nil applied offer. Otherwise the offer's discount is subtracted from
// the subtotal, the offer's usage count is incremented, and a snapshot of the
// application is returned for the order to carry.
func (p CheckoutPricer) Price(subtotal kernel.Money, off *offer.Offer, now time.Time) (kernel.Money, *order.AppliedOffer, error) {
	if err := subtotal.Validate(); err != nil {
		return kernel.Money{}, nil, err
	}

	if off == nil {
		return subtotal, nil, nil
	}
	if err := off.Validate(); err != nil {
		return kernel.Money{}, nil, err
	}

	if !off.IsValidAt(now) || !subtotal.GreaterOrEqual(off.MinimumPurchase()) {
		return subtotal, nil, nil
	}

	discount := off.CalculateDiscount(subtotal)
	total, err := subtotal.Sub(discount)
	if err != nil {
		return kernel.Money{}, nil, err
	}

	applied, err := order.NewAppliedOffer(off.ID(), discount)
	if err != nil {
		return kernel.Money{}, nil, err
	}

	off.RegisterUse()
	return total, &applied, nil
}
