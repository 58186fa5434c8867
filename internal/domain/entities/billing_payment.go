package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// Only an approved payment moves an invoiced estimate to Paid. A denied
// payment is still persisted for audit.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PaymentMethod is how the customer settled the invoice.
type PaymentMethod string

const (
	PaymentMethodMercadoPago PaymentMethod = "mercadopago"
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodCheck       PaymentMethod = "check"
	PaymentMethodTransfer    PaymentMethod = "transfer"
)

// IsOffline reports whether the method is recorded without a gateway call.
func (m PaymentMethod) IsOffline() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodTransfer:
		return true
	}
	return false
}

// BillingPayment is a payment against an invoiced estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimateId-index): estimateId
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for audit.
//   - MPPayload is the parsed representation, useful for debugging.
type BillingPayment struct {
	ID         string        `json:"id"`
	EstimateID string        `json:"estimateId"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`
	Method     PaymentMethod `json:"method"`
	Amount     float64       `json:"amount"`
	Reference  string        `json:"reference,omitempty"`

	MPPayloadRaw json.RawMessage        `json:"mpPayloadRaw,omitempty"`
	MPPayload    map[string]interface{} `json:"mpPayload,omitempty"`
}
