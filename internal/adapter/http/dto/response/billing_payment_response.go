package response

import (
	"time"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase"
)

type BillingPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	EstimateID  string    `json:"estimate_id"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Method      string    `json:"method"`
	Amount      float64   `json:"amount"`
	Reference   string    `json:"reference,omitempty"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		EstimateID:   p.EstimateID,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		Method:       string(p.Method),
		Amount:       p.Amount,
		Reference:    p.Reference,
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

// PaymentResultResponse is returned by the record-payment route.
type PaymentResultResponse struct {
	Payment     BillingPaymentResponse      `json:"payment"`
	Estimate    *EstimateResponse           `json:"estimate,omitempty"`
	SideEffects []usecase.SideEffectFailure `json:"sideEffects,omitempty"`
}

func FromPaymentResult(res usecase.PaymentResult) PaymentResultResponse {
	out := PaymentResultResponse{Payment: FromBillingPayment(res.Payment), SideEffects: res.SideEffects}
	if res.Estimate.ID != "" {
		est := FromEstimate(res.Estimate)
		out.Estimate = &est
	}
	return out
}
