// Package cartrepo persists shopping cart snapshots, one per user.
package cartrepo

import (
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for a user's cart.
type CartDTO struct {
	UserID     uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Items      []CartItemDTO `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
	TotalPrice float64
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one line of a cart.
type CartItemDTO struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNo    int       `gorm:"primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	UnitPrice float64
	Quantity  int
	ImageURL  string
}

// TableName specifies the database table name for cart item lines.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(aggregate *cart.Cart) CartDTO {
	dto := CartDTO{
		UserID:     aggregate.UserID().Bytes(),
		TotalPrice: aggregate.TotalPrice().Amount(),
	}

	for i, item := range aggregate.Items() {
		dto.Items = append(dto.Items, CartItemDTO{
			UserID:    dto.UserID,
			LineNo:    i + 1,
			ProductID: item.ProductID.Bytes(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice.Amount(),
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		})
	}

	return dto
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		items = append(items, cart.Item{
			ProductID: productID,
			Name:      itemDTO.Name,
			UnitPrice: unitPrice,
			Quantity:  itemDTO.Quantity,
			ImageURL:  itemDTO.ImageURL,
		})
	}

	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return cart.NewCart(userID, items, totalPrice)
}
