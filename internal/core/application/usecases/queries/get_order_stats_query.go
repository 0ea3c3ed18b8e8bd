package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery computes order counts, revenue and the current month's
// per-day rollup. Restricted to administrators.
//
// The numbers are a point-in-time snapshot, not transactionally consistent
// with concurrent writes; they feed dashboards, not control flow.
type GetOrderStatsQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a statistics query.
func NewGetOrderStatsQuery(actor account.Actor) (GetOrderStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return GetOrderStatsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// Actor returns the requester.
func (q GetOrderStatsQuery) Actor() account.Actor {
	return q.actor
}

// DailyStatResponse is one calendar day of the current month's rollup.
type DailyStatResponse struct {
	Day     time.Time
	Orders  int64
	Revenue float64
}

// OrderStatsResponse aggregates the order book for dashboards.
type OrderStatsResponse struct {
	TotalOrders     int64
	PaidOrders      int64
	DeliveredOrders int64
	PendingOrders   int64
	TotalRevenue    float64
	MonthlyStats    []DailyStatResponse
}
