package queries

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/pkg/guard"
)

var ErrGetMyOrdersQueryIsNotConstructed = errors.New(
	"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
)

// GetMyOrdersQuery retrieves one page of the requester's own orders.
type GetMyOrdersQuery struct {
	actor account.Actor
	page  int

	guard guard.ConstructorGuard
}

// NewGetMyOrdersQuery creates a query for one page of the requester's order
// history. Pages are 1-based.
func NewGetMyOrdersQuery(actor account.Actor, page int) (GetMyOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMyOrdersQuery{}, err
	}
	if page <= 0 {
		return GetMyOrdersQuery{}, ErrPageIsInvalid
	}

	return GetMyOrdersQuery{
		actor: actor,
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

// Actor returns the requester.
func (q GetMyOrdersQuery) Actor() account.Actor {
	return q.actor
}

// Page returns the requested 1-based page.
func (q GetMyOrdersQuery) Page() int {
	return q.page
}
