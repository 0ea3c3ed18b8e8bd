// Package payfast builds PayFast payment-initiation payloads. The storefront
// never talks to PayFast directly: it hands the signed form fields to the
// frontend, which posts them to the PayFast process endpoint.
package payfast

import (
	"crypto/md5"
	"fmt"
	"net/url"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

const (
	liveProcessURL    = "https://www.payfast.co.za/eng/process"
	sandboxProcessURL = "https://sandbox.payfast.co.za/eng/process"

	// PayFast caps item_name at 100 characters.
	maxItemNameLen = 100
)

// Config holds the merchant settings PayFast issues per account.
type Config struct {
	MerchantID  string
	MerchantKey string
	// Passphrase is optional; when set it is appended to the signature base.
	Passphrase string
	ReturnURL  string
	CancelURL  string
	NotifyURL  string
	Sandbox    bool
}

// Gateway implements ports.PaymentGateway against PayFast's hosted
// payment page.
type Gateway struct {
	cfg Config
}

// NewGateway creates a PayFast gateway from merchant settings.
func NewGateway(cfg Config) (*Gateway, error) {
	if cfg.MerchantID == "" {
		return nil, errs.NewValueIsRequiredError("merchant id")
	}
	if cfg.MerchantKey == "" {
		return nil, errs.NewValueIsRequiredError("merchant key")
	}
	return &Gateway{cfg: cfg}, nil
}

// BuildPayment assembles the signed PayFast form for one order. The field
// order matters: PayFast computes the signature over the fields in the order
// they are posted.
func (g *Gateway) BuildPayment(orderID kernel.UUID, total kernel.Money, items []order.Item) (ports.PaymentData, error) {
	if err := orderID.Validate(); err != nil {
		return ports.PaymentData{}, err
	}
	if err := total.Validate(); err != nil {
		return ports.PaymentData{}, err
	}
	if len(items) == 0 {
		return ports.PaymentData{}, errs.NewValueIsRequiredError("items")
	}

	fields := []ports.PaymentField{
		{Name: "merchant_id", Value: g.cfg.MerchantID},
		{Name: "merchant_key", Value: g.cfg.MerchantKey},
		{Name: "return_url", Value: g.cfg.ReturnURL},
		{Name: "cancel_url", Value: g.cfg.CancelURL},
		{Name: "notify_url", Value: g.cfg.NotifyURL},
		{Name: "m_payment_id", Value: orderID.String()},
		{Name: "amount", Value: fmt.Sprintf("%.2f", total.Amount())},
		{Name: "item_name", Value: itemName(items)},
	}
	fields = append(fields, ports.PaymentField{
		Name:  "signature",
		Value: sign(fields, g.cfg.Passphrase),
	})

	return ports.PaymentData{
		ProcessURL: g.processURL(),
		Fields:     fields,
	}, nil
}

func (g *Gateway) processURL() string {
	if g.cfg.Sandbox {
		return sandboxProcessURL
	}
	return liveProcessURL
}

// itemName renders the order's cart lines as the single item_name PayFast
// accepts. Multi-line orders name the first product and the remaining count.
func itemName(items []order.Item) string {
	name := items[0].Name()
	if len(items) > 1 {
		name = fmt.Sprintf("%s and %d more", name, len(items)-1)
	}
	if len(name) > maxItemNameLen {
		name = name[:maxItemNameLen]
	}
	return name
}

// sign computes the PayFast MD5 signature over the non-empty fields, in
// posting order, with values urlencoded (spaces as '+') and the optional
// passphrase appended last.
func sign(fields []ports.PaymentField, passphrase string) string {
	var b strings.Builder
	for _, field := range fields {
		if field.Value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(field.Name)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(field.Value))
	}
	if passphrase != "" {
		fmt.Fprintf(&b, "&passphrase=%s", url.QueryEscape(passphrase))
	}
	return fmt.Sprintf("%x", md5.Sum([]byte(b.String())))
}
