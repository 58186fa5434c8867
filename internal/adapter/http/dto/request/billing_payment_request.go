package request

import (
	"encoding/json"
	"errors"
	"strings"

	"foampro/internal/domain/entities"
)

var ErrInvalidPaymentBody = errors.New("request body is not valid json")

// BillingPaymentCreateRequest is the body of POST /payments/:estimate_id.
//
// The body is either an envelope {"method", "reference", "mp_payload"} or a
// bare Mercado Pago payload. mp_payload is kept as raw JSON since the
// provider schema varies by payment method.
type BillingPaymentCreateRequest struct {
	Method    entities.PaymentMethod `json:"method"`
	Reference string                 `json:"reference"`
	MPPayload json.RawMessage        `json:"mp_payload"`
}

// ParseBillingPaymentRequest accepts an empty body, an envelope, or a bare
// provider payload.
func ParseBillingPaymentRequest(raw []byte) (BillingPaymentCreateRequest, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return BillingPaymentCreateRequest{MPPayload: json.RawMessage("{}")}, nil
	}
	if !json.Valid(raw) {
		return BillingPaymentCreateRequest{}, ErrInvalidPaymentBody
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return BillingPaymentCreateRequest{MPPayload: raw}, nil
	}
	_, hasPayload := envelope["mp_payload"]
	_, hasMethod := envelope["method"]
	if !hasPayload && !hasMethod {
		return BillingPaymentCreateRequest{MPPayload: raw}, nil
	}

	var req BillingPaymentCreateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return BillingPaymentCreateRequest{}, err
	}
	req.Method = entities.PaymentMethod(strings.ToLower(strings.TrimSpace(string(req.Method))))
	req.Reference = strings.TrimSpace(req.Reference)
	if hasPayload {
		if p := strings.TrimSpace(string(req.MPPayload)); p == "" || p == "null" {
			return BillingPaymentCreateRequest{}, errors.New("mp_payload cannot be empty")
		}
	}
	return req, nil
}
