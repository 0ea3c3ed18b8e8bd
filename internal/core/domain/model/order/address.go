package order

import (
	"errors"

	"storefront/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the shipping destination of an order.
// It is immutable once the order is created.
type Address struct {
	address    string
	city       string
	postalCode string
	country    string

	isConstructed bool
}

// NewAddress creates a validated shipping address. All fields are required.
func NewAddress(address, city, postalCode, country string) (Address, error) {
	a := Address{isConstructed: true}

	if err := errors.Join(
		requireField(&a.address, address, "address"),
		requireField(&a.city, city, "city"),
		requireField(&a.postalCode, postalCode, "postalCode"),
		requireField(&a.country, country, "country"),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

func requireField(dst *string, value, name string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Address returns the street address line.
func (a Address) Address() string {
	return a.address
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country.
func (a Address) Country() string {
	return a.country
}
