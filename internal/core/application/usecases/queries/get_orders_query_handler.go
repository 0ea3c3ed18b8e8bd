package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads pages of the full order listing for back-office
// screens. Newest orders come first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for the full order listing.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns errs.NotAuthorizedError when the
// requester is not an administrator. A page past the end yields an empty page,
// not an error.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (PagedOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedOrdersResponse{}, err
	}

	if err := query.Actor().RequireAdmin("list all orders"); err != nil {
		return PagedOrdersResponse{}, err
	}

	where, args := filterClause(query.Filter())

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT count(*) FROM orders"+where, args...).
		Scan(&total).Error; err != nil {
		return PagedOrdersResponse{}, err
	}

	offset := (query.Page() - 1) * ordersPageSize
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+summaryColumns+`
		FROM orders`+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, append(args, ordersPageSize, offset)...).Rows()
	if err != nil {
		return PagedOrdersResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		summary, scanErr := scanSummaryRow(rows)
		if scanErr != nil {
			return PagedOrdersResponse{}, scanErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return PagedOrdersResponse{}, err
	}

	return PagedOrdersResponse{
		Orders: orders,
		Page:   query.Page(),
		Pages:  pageCount(total),
		Total:  total,
	}, nil
}

// filterClause maps a status filter to a WHERE clause over the stored flags.
func filterClause(filter StatusFilter) (string, []any) {
	switch filter {
	case FilterPaid:
		return " WHERE is_paid = ?", []any{true}
	case FilterUnpaid:
		return " WHERE is_paid = ?", []any{false}
	case FilterDelivered:
		return " WHERE is_delivered = ?", []any{true}
	case FilterPending:
		return " WHERE is_delivered = ?", []any{false}
	default:
		return "", nil
	}
}
