// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The applied offer and payment result are flattened into nullable columns;
// item lines live in their own table keyed by order and line number.
type OrderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;index"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`

	Address    string
	City       string
	PostalCode string
	Country    string

	PaymentMethod string
	TotalPrice    float64

	OfferID       *uuid.UUID `gorm:"type:uuid"`
	OfferDiscount *float64

	IsPaid            bool `gorm:"index"`
	PaidAt            *time.Time
	PaymentID         *string
	PaymentStatus     *string
	PaymentUpdateTime *string
	PayerEmail        *string

	IsDelivered bool `gorm:"index"`
	DeliveredAt *time.Time

	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line of an order. The line number preserves the
// cart's ordering across round trips.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNo    int       `gorm:"primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	UnitPrice float64
	Quantity  int
	ImageURL  string
}

// TableName specifies the database table name for order item lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		Address:       aggregate.ShippingAddress().Address(),
		City:          aggregate.ShippingAddress().City(),
		PostalCode:    aggregate.ShippingAddress().PostalCode(),
		Country:       aggregate.ShippingAddress().Country(),
		PaymentMethod: aggregate.PaymentMethod(),
		TotalPrice:    aggregate.TotalPrice().Amount(),
		IsPaid:        aggregate.IsPaid(),
		PaidAt:        aggregate.PaidAt(),
		IsDelivered:   aggregate.IsDelivered(),
		DeliveredAt:   aggregate.DeliveredAt(),
		CreatedAt:     aggregate.CreatedAt(),
	}

	if applied := aggregate.AppliedOffer(); applied != nil {
		offerID := applied.OfferID().Bytes()
		discount := applied.Discount().Amount()
		dto.OfferID = &offerID
		dto.OfferDiscount = &discount
	}

	if result := aggregate.PaymentResult(); result != nil {
		paymentID := result.PaymentID()
		status := result.Status()
		updateTime := result.UpdateTime()
		payerEmail := result.PayerEmail()
		dto.PaymentID = &paymentID
		dto.PaymentStatus = &status
		dto.PaymentUpdateTime = &updateTime
		dto.PayerEmail = &payerEmail
	}

	for i, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:   dto.ID,
			LineNo:    i + 1,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Amount(),
			Quantity:  item.Quantity(),
			ImageURL:  item.ImageURL(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.Address, dto.City, dto.PostalCode, dto.Country)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Name, unitPrice, itemDTO.Quantity, itemDTO.ImageURL)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	var appliedOffer *order.AppliedOffer
	if dto.OfferID != nil {
		offerID, idErr := kernel.UUIDFromBytes((*dto.OfferID)[:])
		if idErr != nil {
			return nil, idErr
		}

		var discountAmount float64
		if dto.OfferDiscount != nil {
			discountAmount = *dto.OfferDiscount
		}
		discount, discountErr := kernel.NewMoney(discountAmount)
		if discountErr != nil {
			return nil, discountErr
		}

		applied, offerErr := order.NewAppliedOffer(offerID, discount)
		if offerErr != nil {
			return nil, offerErr
		}
		appliedOffer = &applied
	}

	var paymentResult *order.PaymentResult
	if dto.PaymentID != nil {
		result, resultErr := order.NewPaymentResult(
			*dto.PaymentID,
			derefString(dto.PaymentStatus),
			derefString(dto.PaymentUpdateTime),
			derefString(dto.PayerEmail),
		)
		if resultErr != nil {
			return nil, resultErr
		}
		paymentResult = &result
	}

	return order.RestoreOrder(
		id,
		userID,
		items,
		address,
		dto.PaymentMethod,
		totalPrice,
		appliedOffer,
		dto.IsPaid,
		dto.PaidAt,
		paymentResult,
		dto.IsDelivered,
		dto.DeliveredAt,
		dto.CreatedAt,
	)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
