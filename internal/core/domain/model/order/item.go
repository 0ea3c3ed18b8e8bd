package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrItemNameIsRequired is returned when a line item has no name snapshot.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
	// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a line item of an order. Name, unit price and image are snapshots
// captured at checkout time; they intentionally do not follow later catalog
// changes.
type Item struct {
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
	imageURL  string

	isConstructed bool
}

// NewItem creates a validated line item.
// The product reference must be valid and the quantity positive.
// An empty image URL is allowed: not every catalog entry carries an image.
func NewItem(productID kernel.UUID, name string, unitPrice kernel.Money, quantity int, imageURL string) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}
	item.imageURL = imageURL

	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshot.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the unit price snapshot.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// ImageURL returns the product image snapshot.
func (i Item) ImageURL() string {
	return i.imageURL
}

// LineTotal returns unit price multiplied by quantity.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
