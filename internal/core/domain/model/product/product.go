// Package product contains the catalog entity as seen by the order core.
// The catalog itself is an external collaborator: the core only reads product
// data at checkout and mutates stock through the inventory ledger operations
// of the product repository.
package product

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created via NewProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("product name")

	// ErrInsufficientStock is returned by the inventory ledger when a reservation
	// asks for more units than are available. Stock never goes negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product is the slice of a catalog entry the order core cares about:
// identity, display name, price, and the available stock count.
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Money
	stock int

	isConstructed bool
}

// NewProduct creates a validated product. Stock must not be negative.
func NewProduct(id kernel.UUID, name string, price kernel.Money, stock int) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created via NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's current catalog price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the available stock count.
func (p *Product) Stock() int {
	return p.stock
}

// HasStock reports whether the product has at least the requested quantity
// available. This is the pre-flight check at checkout; the authoritative
// check-and-decrement happens in the repository's ReserveStock.
func (p *Product) HasStock(quantity int) bool {
	return p.stock >= quantity
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
