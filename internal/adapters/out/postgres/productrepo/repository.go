package productrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
//
// Stock mutations are single conditional UPDATE statements, so concurrent
// reservations serialize on the row and stock can never go negative, whatever
// the surrounding transaction's isolation level.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product id", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ReserveStock atomically decrements a product's stock by quantity.
// The WHERE clause guards the decrement: when the remaining stock does not
// cover the quantity no row matches, nothing changes, and
// product.ErrInsufficientStock is returned.
func (r *GormProductRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND stock >= ?", id.Bytes(), quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainReservationFailure(ctx, id)
	}

	return nil
}

// ReleaseStock atomically increments a product's stock by quantity.
func (r *GormProductRepository) ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product id", id.String())
	}

	return nil
}

// explainReservationFailure distinguishes a missing product from one without
// sufficient stock.
func (r *GormProductRepository) explainReservationFailure(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("product id", id.String())
	}
	return product.ErrInsufficientStock
}
