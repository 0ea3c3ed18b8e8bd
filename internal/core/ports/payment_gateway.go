package ports

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// PaymentData is the payload the storefront hands to the frontend so it can
// redirect the customer to the payment provider's hosted page.
type PaymentData struct {
	// ProcessURL is the provider endpoint the payment form posts to.
	ProcessURL string

	// Fields are the signed form fields, in the order the provider requires.
	Fields []PaymentField
}

// PaymentField is a single name/value pair of the signed payment form.
type PaymentField struct {
	Name  string
	Value string
}

// PaymentGateway builds provider-specific payment payloads for orders.
type PaymentGateway interface {
	// BuildPayment prepares the signed payment payload for the given order.
	BuildPayment(orderID kernel.UUID, total kernel.Money, items []order.Item) (PaymentData, error)
}
