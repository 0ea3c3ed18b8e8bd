// Package cart contains the cart snapshot consumed at checkout. The cart is
// owned by an external collaborator; the order core only reads it once, treats
// its total price as the authoritative subtotal, and clears it after a
// successful checkout.
package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart was not created via NewCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Item is a single cart line: a product reference with the name, price and
// image as displayed to the customer when the item was added.
type Item struct {
	ProductID kernel.UUID
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	ImageURL  string
}

// Validate checks a cart line's fields.
func (i Item) Validate() error {
	return errors.Join(
		i.ProductID.Validate(),
		validateName(i.Name),
		i.UnitPrice.Validate(),
		validateQuantity(i.Quantity),
	)
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("cart item name")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cart item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

// Cart is a user's shopping cart snapshot: items plus the pre-computed total.
// The total is trusted as-is rather than recomputed from item prices.
type Cart struct {
	userID     kernel.UUID
	items      []Item
	totalPrice kernel.Money

	isConstructed bool
}

// NewCart creates a validated cart snapshot. An empty item list is allowed;
// checkout rejects it, not the cart itself.
func NewCart(userID kernel.UUID, items []Item, totalPrice kernel.Money) (*Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if err := totalPrice.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	c := &Cart{
		userID:        userID,
		totalPrice:    totalPrice,
		isConstructed: true,
	}
	c.items = make([]Item, len(items))
	copy(c.items, items)

	return c, nil
}

// Validate ensures the Cart was created via NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// UserID returns the cart owner's identifier.
func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// TotalPrice returns the cart's pre-computed total, used as the checkout subtotal.
func (c *Cart) TotalPrice() kernel.Money {
	return c.totalPrice
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.items) == 0
}
