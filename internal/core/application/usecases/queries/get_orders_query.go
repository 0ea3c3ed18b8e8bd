package queries

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
	ErrPageIsInvalid = errors.New("page must be greater than 0")
)

// StatusFilter narrows an order listing to a payment or delivery state.
type StatusFilter string

const (
	// FilterNone lists every order.
	FilterNone StatusFilter = ""

	// FilterPaid lists orders with a recorded payment.
	FilterPaid StatusFilter = "paid"

	// FilterUnpaid lists orders without a recorded payment.
	FilterUnpaid StatusFilter = "unpaid"

	// FilterDelivered lists orders handed to the customer.
	FilterDelivered StatusFilter = "delivered"

	// FilterPending lists orders not yet delivered.
	FilterPending StatusFilter = "pending"
)

// ParseStatusFilter converts a request filter string. An empty string means
// no filtering.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case FilterNone, FilterPaid, FilterUnpaid, FilterDelivered, FilterPending:
		return StatusFilter(s), nil
	default:
		return FilterNone, errs.NewValueIsInvalidErrorWithCause("status filter",
			fmt.Errorf("%q is not a valid status filter", s))
	}
}

// GetOrdersQuery retrieves one page of all orders, optionally narrowed by a
// status filter. Restricted to administrators.
//
// Example:
//
//	filter, _ := ParseStatusFilter("unpaid")
//	query, _ := NewGetOrdersQuery(adminActor, 1, filter)
//	page, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
type GetOrdersQuery struct {
	actor  account.Actor
	page   int
	filter StatusFilter

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for one page of the full order listing.
// Pages are 1-based.
func NewGetOrdersQuery(actor account.Actor, page int, filter StatusFilter) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if page <= 0 {
		return GetOrdersQuery{}, ErrPageIsInvalid
	}
	if _, err := ParseStatusFilter(string(filter)); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		actor:  actor,
		page:   page,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the requester.
func (q GetOrdersQuery) Actor() account.Actor {
	return q.actor
}

// Page returns the requested 1-based page.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// Filter returns the status filter.
func (q GetOrdersQuery) Filter() StatusFilter {
	return q.filter
}
