package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the order
// does not exist and errs.NotAuthorizedError when the requester is neither the
// owner nor an administrator.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	resp, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if err = query.Actor().CanAccessOrder(resp.UserID); err != nil {
		return OrderResponse{}, err
	}

	items, err := h.readItems(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) readOrder(ctx context.Context, orderID kernel.UUID) (OrderResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			address,
			city,
			postal_code,
			country,
			payment_method,
			total_price,
			offer_id,
			offer_discount,
			is_paid,
			paid_at,
			payment_id,
			payment_status,
			payment_update_time,
			payer_email,
			is_delivered,
			delivered_at,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		resp              OrderResponse
		id                uuid.UUID
		userID            uuid.UUID
		offerID           *uuid.UUID
		offerDiscount     sql.NullFloat64
		paymentID         sql.NullString
		paymentStatus     sql.NullString
		paymentUpdateTime sql.NullString
		payerEmail        sql.NullString
	)

	err := row.Scan(
		&id,
		&userID,
		&resp.Address,
		&resp.City,
		&resp.PostalCode,
		&resp.Country,
		&resp.PaymentMethod,
		&resp.TotalPrice,
		&offerID,
		&offerDiscount,
		&resp.IsPaid,
		&resp.PaidAt,
		&paymentID,
		&paymentStatus,
		&paymentUpdateTime,
		&payerEmail,
		&resp.IsDelivered,
		&resp.DeliveredAt,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order id", orderID.String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.UserID, err = kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	if offerID != nil {
		appliedOfferID, idErr := kernel.UUIDFromBytes((*offerID)[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		resp.AppliedOffer = &AppliedOfferResponse{
			OfferID:  appliedOfferID,
			Discount: offerDiscount.Float64,
		}
	}

	if paymentID.Valid {
		resp.PaymentResult = &PaymentResultResponse{
			PaymentID:  paymentID.String,
			Status:     paymentStatus.String,
			UpdateTime: paymentUpdateTime.String,
			PayerEmail: payerEmail.String,
		}
	}

	resp.Status = statusName(resp.IsPaid, resp.IsDelivered)
	return resp, nil
}

func (h GetOrderQueryHandler) readItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			unit_price,
			quantity,
			image_url
		FROM order_items
		WHERE order_id = ?
		ORDER BY line_no
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			item      OrderItemResponse
			productID uuid.UUID
		)

		if err = rows.Scan(
			&productID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
			&item.ImageURL,
		); err != nil {
			return nil, err
		}

		item.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
