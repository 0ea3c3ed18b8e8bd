package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyOrdersQueryHandler reads pages of a customer's own order history.
// Newest orders come first.
type GetMyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMyOrdersQueryHandler creates a handler for personal order history.
// Requires a GORM database connection for query execution.
func NewGetMyOrdersQueryHandler(db *gorm.DB) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{db: db}
}

// Handle executes the query. The listing is always scoped to the requester's
// own orders, so no further access check is needed.
func (h GetMyOrdersQueryHandler) Handle(ctx context.Context, query GetMyOrdersQuery) (PagedOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedOrdersResponse{}, err
	}

	userID := query.Actor().ID().Bytes()

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT count(*) FROM orders WHERE user_id = ?", userID).
		Scan(&total).Error; err != nil {
		return PagedOrdersResponse{}, err
	}

	offset := (query.Page() - 1) * ordersPageSize
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+summaryColumns+`
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, userID, ordersPageSize, offset).Rows()
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
