// Package queries contains read-only operations over the storefront database.
// Query handlers bypass the domain model and read projection rows directly
// with raw SQL, as reads never mutate aggregate state.
package queries

import (
	"database/sql"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ordersPageSize is the fixed number of orders per page for list queries.
const ordersPageSize = 10

// pageCount returns the number of pages needed for total rows.
func pageCount(total int64) int {
	if total == 0 {
		return 0
	}
	return int((total + ordersPageSize - 1) / ordersPageSize)
}

// OrderSummaryResponse is a single row of an order listing.
type OrderSummaryResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	TotalPrice  float64
	IsPaid      bool
	PaidAt      *time.Time
	IsDelivered bool
	DeliveredAt *time.Time
	CreatedAt   time.Time
	Status      string
}

// PagedOrdersResponse is one page of an order listing.
type PagedOrdersResponse struct {
	Orders []OrderSummaryResponse
	Page   int
	Pages  int
	Total  int64
}

// OrderItemResponse is a single line of an order.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Name      string
	UnitPrice float64
	Quantity  int
	ImageURL  string
}

// AppliedOfferResponse describes the discount an order was created with.
type AppliedOfferResponse struct {
	OfferID  kernel.UUID
	Discount float64
}

// PaymentResultResponse carries the gateway correlation data of a payment.
type PaymentResultResponse struct {
	PaymentID  string
	Status     string
	UpdateTime string
	PayerEmail string
}

// OrderResponse is the full read model of a single order.
type OrderResponse struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	Items         []OrderItemResponse
	Address       string
	City          string
	PostalCode    string
	Country       string
	PaymentMethod string
	TotalPrice    float64
	AppliedOffer  *AppliedOfferResponse
	IsPaid        bool
	PaidAt        *time.Time
	PaymentResult *PaymentResultResponse
	IsDelivered   bool
	DeliveredAt   *time.Time
	CreatedAt     time.Time
	Status        string
}

// statusName derives the display status from the stored flags, mirroring
// order.Status.
func statusName(isPaid, isDelivered bool) string {
	switch {
	case isDelivered:
		return order.Delivered.String()
	case isPaid:
		return order.Paid.String()
	default:
		return order.Created.String()
	}
}

// summaryColumns is the select list every order listing shares. The order of
// columns matches scanSummaryRow.
const summaryColumns = `
		id,
		user_id,
		total_price,
		is_paid,
		paid_at,
		is_delivered,
		delivered_at,
		created_at`

// scanSummaryRow scans one order listing row.
func scanSummaryRow(rows *sql.Rows) (OrderSummaryResponse, error) {
	var (
		resp   OrderSummaryResponse
		id     uuid.UUID
		userID uuid.UUID
	)

	if err := rows.Scan(
		&id,
		&userID,
		&resp.TotalPrice,
		&resp.IsPaid,
		&resp.PaidAt,
		&resp.IsDelivered,
		&resp.DeliveredAt,
		&resp.CreatedAt,
	); err != nil {
		return OrderSummaryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	resp.ID = orderID
	resp.UserID = ownerID
	resp.Status = statusName(resp.IsPaid, resp.IsDelivered)
	return resp, nil
}
