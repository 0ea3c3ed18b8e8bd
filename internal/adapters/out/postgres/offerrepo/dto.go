// Package offerrepo persists promotional offers.
package offerrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offers.
// Both discount policies share one table; the unused policy's columns stay at
// their zero values.
type OfferDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code            string    `gorm:"uniqueIndex"`
	MinimumPurchase float64
	DiscountType    int
	Percentage      float64
	MaxDiscount     *float64
	FixedAmount     float64
	ValidFrom       time.Time
	ValidUntil      time.Time
	UsageCap        *int
	UsedCount       int
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "offers"
}

func fromDomain(aggregate *offer.Offer) OfferDTO {
	dto := OfferDTO{
		ID:              aggregate.ID().Bytes(),
		Code:            aggregate.Code(),
		MinimumPurchase: aggregate.MinimumPurchase().Amount(),
		DiscountType:    int(aggregate.DiscountType()),
		Percentage:      aggregate.Percentage(),
		FixedAmount:     aggregate.FixedAmount().Amount(),
		ValidFrom:       aggregate.ValidFrom(),
		ValidUntil:      aggregate.ValidUntil(),
		UsageCap:        aggregate.UsageCap(),
		UsedCount:       aggregate.UsedCount(),
	}

	if maxDiscount := aggregate.MaxDiscount(); maxDiscount != nil {
		amount := maxDiscount.Amount()
		dto.MaxDiscount = &amount
	}

	return dto
}

func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	minimumPurchase, err := kernel.NewMoney(dto.MinimumPurchase)
	if err != nil {
		return nil, err
	}

	fixedAmount, err := kernel.NewMoney(dto.FixedAmount)
	if err != nil {
		return nil, err
	}

	var maxDiscount *kernel.Money
	if dto.MaxDiscount != nil {
		amount, moneyErr := kernel.NewMoney(*dto.MaxDiscount)
		if moneyErr != nil {
			return nil, moneyErr
		}
		maxDiscount = &amount
	}

	return offer.RestoreOffer(
		id,
		dto.Code,
		minimumPurchase,
		offer.DiscountType(dto.DiscountType),
		dto.Percentage,
		maxDiscount,
		fixedAmount,
		dto.ValidFrom,
		dto.ValidUntil,
		dto.UsageCap,
		dto.UsedCount,
	)
}
