package cartrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
// Carts are snapshots owned by the storefront frontend; the order core reads
// them at checkout and clears them afterwards, so there is no aggregate
// tracking here.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetByUser retrieves the cart of the given user with its item lines.
func (r *GormCartRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no")
		}).
		First(&dto, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user id", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save persists the user's cart, replacing any existing one.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.Clear(ctx, aggregate.UserID()); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Clear removes the user's cart and its item lines.
// Clearing an absent cart is not an error.
func (r *GormCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Delete(&CartItemDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Delete(&CartDTO{}).Error
}
