package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the product catalog,
// including the atomic stock operations checkout and cancellation depend on.
type ProductRepository interface {
	// Add persists a new product to the catalog.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns errs.ObjectNotFoundError if no product exists with that id.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// ReserveStock atomically decrements a product's stock by quantity.
	// The decrement only happens when the remaining stock covers the quantity;
	// otherwise product.ErrInsufficientStock is returned and stock is unchanged.
	// Stock never goes negative, even under concurrent reservations.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error

	// ReleaseStock atomically increments a product's stock by quantity.
	// Used when a cancelled order returns its reserved units.
	ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error
}
