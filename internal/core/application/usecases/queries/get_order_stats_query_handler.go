package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes order statistics with aggregate SQL.
//
// Pending orders are the unpaid ones; revenue only counts paid orders. The
// monthly rollup covers orders created since the first day of the current
// month, one row per calendar day that has orders, in chronological order.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order statistics.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the query. Returns errs.NotAuthorizedError when the
// requester is not an administrator.
func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (OrderStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatsResponse{}, err
	}

	if err := query.Actor().RequireAdmin("read order statistics"); err != nil {
		return OrderStatsResponse{}, err
	}

	var resp OrderStatsResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			count(*),
			count(*) FILTER (WHERE is_paid),
			count(*) FILTER (WHERE is_delivered),
			count(*) FILTER (WHERE NOT is_paid),
			COALESCE(sum(total_price) FILTER (WHERE is_paid), 0)
		FROM orders
	`).Row()
	if err := row.Scan(
		&resp.TotalOrders,
		&resp.PaidOrders,
		&resp.DeliveredOrders,
		&resp.PendingOrders,
		&resp.TotalRevenue,
	); err != nil {
		return OrderStatsResponse{}, err
	}

	monthly, err := h.readMonthlyStats(ctx, monthStart(time.Now().UTC()))
	if err != nil {
		return OrderStatsResponse{}, err
	}
	resp.MonthlyStats = monthly

	return resp, nil
}

// monthStart returns midnight UTC on the first day of now's month.
func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (h GetOrderStatsQueryHandler) readMonthlyStats(ctx context.Context, since time.Time) ([]DailyStatResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			date_trunc('day', created_at) AS day,
			count(*),
			COALESCE(sum(total_price), 0)
		FROM orders
		WHERE created_at >= ?
		GROUP BY day
		ORDER BY day
	`, since).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]DailyStatResponse, 0)
	for rows.Next() {
		var day DailyStatResponse
		if err = rows.Scan(&day.Day, &day.Orders, &day.Revenue); err != nil {
			return nil, err
		}
		stats = append(stats, day)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
