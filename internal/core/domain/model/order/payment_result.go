package order

import (
	"errors"

	"storefront/internal/pkg/errs"
)

// ErrPaymentResultIsNotConstructed is returned when a PaymentResult was not
// created via NewPaymentResult.
var ErrPaymentResultIsNotConstructed = errors.New(
	"PaymentResult must be created via NewPaymentResult constructor",
)

// GatewayStatusComplete is the gateway status value that denotes a successful
// payment. Any other status leaves the order unpaid.
const GatewayStatusComplete = "COMPLETE"

// PaymentResult records the gateway correlation data of a successful payment.
// It is set exactly once by the pay transition.
type PaymentResult struct {
	paymentID  string
	status     string
	updateTime string
	payerEmail string

	isConstructed bool
}

// NewPaymentResult creates a validated payment result.
// The gateway payment id and status are required; update time and payer email
// are recorded as the gateway reported them.
func NewPaymentResult(paymentID, status, updateTime, payerEmail string) (PaymentResult, error) {
	if paymentID == "" {
		return PaymentResult{}, errs.NewValueIsRequiredError("paymentID")
	}
	if status == "" {
		return PaymentResult{}, errs.NewValueIsRequiredError("paymentStatus")
	}

	return PaymentResult{
		paymentID:     paymentID,
		status:        status,
		updateTime:    updateTime,
		payerEmail:    payerEmail,
		isConstructed: true,
	}, nil
}

// Validate ensures the PaymentResult was created via NewPaymentResult.
func (p PaymentResult) Validate() error {
	if !p.isConstructed {
		return ErrPaymentResultIsNotConstructed
	}
	return nil
}

// PaymentID returns the gateway correlation id.
func (p PaymentResult) PaymentID() string {
	return p.paymentID
}

// Status returns the gateway status string.
func (p PaymentResult) Status() string {
	return p.status
}

// UpdateTime returns the gateway timestamp as reported.
func (p PaymentResult) UpdateTime() string {
	return p.updateTime
}

// PayerEmail returns the payer's email address.
func (p PaymentResult) PayerEmail() string {
	return p.payerEmail
}

// IsSuccessful reports whether the gateway status denotes a completed payment.
func (p PaymentResult) IsSuccessful() bool {
	return p.status == GatewayStatusComplete
}
