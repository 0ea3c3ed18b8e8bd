package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is derived from the
// payment and delivery flags rather than stored, so it can never disagree
// with them.
//
// State transitions:
//
//	Created ──pay────> Paid ──deliver──> Delivered
//	Created ──cancel─> Created (stock restored)
//	Paid    ──cancel─> Created (stock restored, payment cleared)
//
// Delivered has no outgoing transition besides cancellation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status: the order exists but is unpaid.
	Created

	// Paid indicates a successful payment was recorded.
	Paid

	// Delivered indicates the paid order has been handed to the customer.
	Delivered
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case Created:
		return "Created"
	case Paid:
		return "Paid"
	case Delivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

// TargetStatus is a requested transition for the administrative status
// endpoint. It is parsed from the request body and validated before any
// state change happens.
type TargetStatus int

const (
	// TargetUnknown represents an unparsed or invalid target.
	TargetUnknown TargetStatus = iota

	// TargetPaid requests the privileged paid transition (no gateway fields).
	TargetPaid

	// TargetDelivered requests the delivered transition.
	TargetDelivered

	// TargetCancelled requests cancellation with stock restoration.
	TargetCancelled
)

// ErrInvalidStatus is returned when a status transition request names a
// status outside {paid, delivered, cancelled}.
var ErrInvalidStatus = errs.NewValueIsInvalidError("status")

// ParseTargetStatus converts a request status string into a TargetStatus.
// Returns ErrInvalidStatus for anything outside {paid, delivered, cancelled}.
func ParseTargetStatus(s string) (TargetStatus, error) {
	switch s {
	case "paid":
		return TargetPaid, nil
	case "delivered":
		return TargetDelivered, nil
	case "cancelled":
		return TargetCancelled, nil
	default:
		return TargetUnknown, fmt.Errorf("%q: %w", s, ErrInvalidStatus)
	}
}

// String returns the request representation of the target status.
func (t TargetStatus) String() string {
	switch t {
	case TargetPaid:
		return "paid"
	case TargetDelivered:
		return "delivered"
	case TargetCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Validate checks that the target status is one of the accepted transitions.
func (t TargetStatus) Validate() error {
	switch t {
	case TargetPaid, TargetDelivered, TargetCancelled:
		return nil
	default:
		return ErrInvalidStatus
	}
}
