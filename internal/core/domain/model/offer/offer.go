// Package offer contains the Offer aggregate: a named promotional rule with a
// validity window, an optional usage cap, and a discount policy that is either
// a percentage of the subtotal (with an optional maximum discount) or a fixed
// amount.
package offer

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOfferIsNotConstructed is returned when an Offer was not created through
	// one of the factory functions.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewPercentageOffer or NewFixedOffer")

	// ErrCodeIsRequired is returned when attempting to create an offer without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("offer code")

	// ErrValidityWindowIsInvalid is returned when validUntil is not after validFrom.
	ErrValidityWindowIsInvalid = errs.NewValueIsInvalidError("offer validity window")
)

// DiscountType distinguishes the two discount policies an offer can carry.
type DiscountType int

const (
	// UnknownDiscount represents an invalid or undefined policy.
	UnknownDiscount DiscountType = iota

	// Percentage discounts take a fraction of the subtotal, optionally capped.
	Percentage

	// Fixed discounts subtract a flat amount, capped at the subtotal.
	Fixed
)

// String returns the name of the discount type.
func (d DiscountType) String() string {
	switch d {
	case Percentage:
		return "Percentage"
	case Fixed:
		return "Fixed"
	default:
		return "Unknown"
	}
}

// Offer is a promotional rule applied at checkout. Applying an offer to a
// successful order increments its usage count; the count is never decremented,
// even when the order is later cancelled.
type Offer struct {
	// id is the unique identifier for the offer
	id kernel.UUID

	// code is the name customers enter at checkout
	code string

	// minimumPurchase is the smallest subtotal the offer applies to
	minimumPurchase kernel.Money

	// discountType selects between the percentage and fixed policies
	discountType DiscountType

	// percentage is the discount rate (0..100) for percentage offers
	percentage float64

	// maxDiscount optionally caps a percentage discount
	maxDiscount *kernel.Money

	// fixedAmount is the flat discount for fixed offers
	fixedAmount kernel.Money

	// validity window
	validFrom  time.Time
	validUntil time.Time

	// usageCap optionally limits how many orders may use the offer
	usageCap *int

	// usedCount tracks how many orders applied the offer
	usedCount int

	// isConstructed ensures the offer was created via a factory function
	isConstructed bool
}

// NewPercentageOffer creates an offer that discounts a percentage of the
// subtotal, optionally capped at maxDiscount. The rate must be in (0, 100].
func NewPercentageOffer(
	id kernel.UUID,
	code string,
	minimumPurchase kernel.Money,
	percentage float64,
	maxDiscount *kernel.Money,
	validFrom, validUntil time.Time,
	usageCap *int,
) (*Offer, error) {
	o := &Offer{
		discountType:  Percentage,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setMinimumPurchase(minimumPurchase),
		o.setPercentage(percentage),
		o.setMaxDiscount(maxDiscount),
		o.setValidityWindow(validFrom, validUntil),
		o.setUsageCap(usageCap),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NewFixedOffer creates an offer that discounts a flat amount.
// The applied discount never exceeds the order subtotal.
func NewFixedOffer(
	id kernel.UUID,
	code string,
	minimumPurchase kernel.Money,
	fixedAmount kernel.Money,
	validFrom, validUntil time.Time,
	usageCap *int,
) (*Offer, error) {
	o := &Offer{
		discountType:  Fixed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setMinimumPurchase(minimumPurchase),
		o.setFixedAmount(fixedAmount),
		o.setValidityWindow(validFrom, validUntil),
		o.setUsageCap(usageCap),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffer reconstructs an Offer from persistence, including its used count.
func RestoreOffer(
	id kernel.UUID,
	code string,
	minimumPurchase kernel.Money,
	discountType DiscountType,
	percentage float64,
	maxDiscount *kernel.Money,
	fixedAmount kernel.Money,
	validFrom, validUntil time.Time,
	usageCap *int,
	usedCount int,
) (*Offer, error) {
	var o *Offer
	var err error

	switch discountType {
	case Percentage:
		o, err = NewPercentageOffer(id, code, minimumPurchase, percentage, maxDiscount, validFrom, validUntil, usageCap)
	case Fixed:
		o, err = NewFixedOffer(id, code, minimumPurchase, fixedAmount, validFrom, validUntil, usageCap)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("discount type",
			fmt.Errorf("%d is not a valid discount type", discountType))
	}
	if err != nil {
		return nil, err
	}

	if usedCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("used count",
			fmt.Errorf("%d is negative", usedCount))
	}
	o.usedCount = usedCount

	return o, nil
}

// Validate ensures the Offer was created through a factory function.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// Code returns the offer code customers enter at checkout.
func (o *Offer) Code() string {
	return o.code
}

// MinimumPurchase returns the smallest subtotal the offer applies to.
func (o *Offer) MinimumPurchase() kernel.Money {
	return o.minimumPurchase
}

// DiscountType returns the offer's discount policy kind.
func (o *Offer) DiscountType() DiscountType {
	return o.discountType
}

// Percentage returns the discount rate for percentage offers.
func (o *Offer) Percentage() float64 {
	return o.percentage
}

// MaxDiscount returns the optional cap on a percentage discount.
func (o *Offer) MaxDiscount() *kernel.Money {
	return o.maxDiscount
}

// FixedAmount returns the flat discount for fixed offers.
func (o *Offer) FixedAmount() kernel.Money {
	return o.fixedAmount
}

// ValidFrom returns the start of the validity window.
func (o *Offer) ValidFrom() time.Time {
	return o.validFrom
}

// ValidUntil returns the end of the validity window.
func (o *Offer) ValidUntil() time.Time {
	return o.validUntil
}

// UsageCap returns the optional usage cap.
func (o *Offer) UsageCap() *int {
	return o.usageCap
}

// UsedCount returns how many orders have applied the offer.
func (o *Offer) UsedCount() int {
	return o.usedCount
}

// IsValidAt reports whether the offer can be applied at the given time:
// the time lies within the validity window and the usage cap, if any,
// is not exhausted.
func (o *Offer) IsValidAt(now time.Time) bool {
	if now.Before(o.validFrom) || now.After(o.validUntil) {
		return false
	}
	if o.usageCap != nil && o.usedCount >= *o.usageCap {
		return false
	}
	return true
}

// CalculateDiscount returns the discount the offer grants for the given
// subtotal. A percentage discount is capped at the optional maximum; a fixed
// discount is capped at the subtotal, so the resulting total is never negative.
func (o *Offer) CalculateDiscount(subtotal kernel.Money) kernel.Money {
	switch o.discountType {
	case Percentage:
		discount := subtotal.Percent(o.percentage)
		if o.maxDiscount != nil {
			discount = discount.Min(*o.maxDiscount)
		}
		return discount
	case Fixed:
		return o.fixedAmount.Min(subtotal)
	default:
		return kernel.Money{}
	}
}

// RegisterUse increments the offer's usage count.
// Called once per successful order the offer was applied to.
// The count is never decremented, even on cancellation.
func (o *Offer) RegisterUse() {
	o.usedCount++
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	o.code = code
	return nil
}

func (o *Offer) setMinimumPurchase(minimumPurchase kernel.Money) error {
	if err := minimumPurchase.Validate(); err != nil {
		return err
	}
	o.minimumPurchase = minimumPurchase
	return nil
}

func (o *Offer) setPercentage(percentage float64) error {
	if percentage <= 0 || percentage > 100 {
		return errs.NewValueIsOutOfRangeError("percentage", percentage, 0, 100)
	}
	o.percentage = percentage
	return nil
}

func (o *Offer) setMaxDiscount(maxDiscount *kernel.Money) error {
	if maxDiscount == nil {
		return nil
	}
	if err := maxDiscount.Validate(); err != nil {
		return err
	}
	value := *maxDiscount
	o.maxDiscount = &value
	return nil
}

func (o *Offer) setFixedAmount(fixedAmount kernel.Money) error {
	if err := fixedAmount.Validate(); err != nil {
		return err
	}
	o.fixedAmount = fixedAmount
	return nil
}

func (o *Offer) setValidityWindow(validFrom, validUntil time.Time) error {
	if !validUntil.After(validFrom) {
		return ErrValidityWindowIsInvalid
	}
	o.validFrom = validFrom
	o.validUntil = validUntil
	return nil
}

func (o *Offer) setUsageCap(usageCap *int) error {
	if usageCap == nil {
		return nil
	}
	if *usageCap <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("usage cap",
			fmt.Errorf("%d is not greater than 0", *usageCap))
	}
	value := *usageCap
	o.usageCap = &value
	return nil
}
