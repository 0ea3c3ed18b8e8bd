package ports

import (
	"context"

	"storefront/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for promotional offers.
type OfferRepository interface {
	// Add persists a new offer.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update persists changes to an existing offer, notably its usage count.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// GetByCode retrieves an offer by the code customers enter at checkout.
	// Returns errs.ObjectNotFoundError if no offer carries that code.
	GetByCode(ctx context.Context, code string) (*offer.Offer, error)
}
