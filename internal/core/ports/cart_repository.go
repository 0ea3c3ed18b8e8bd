package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for shopping carts.
// A user has at most one cart, keyed by their id.
type CartRepository interface {
	// GetByUser retrieves the cart of the given user.
	// Returns errs.ObjectNotFoundError if the user has no cart.
	GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Save persists the user's cart, replacing any existing one.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Clear removes the user's cart. Clearing an absent cart is not an error.
	Clear(ctx context.Context, userID kernel.UUID) error
}
