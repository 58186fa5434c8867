package response

import (
	"encoding/json"
	"testing"
	"time"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase"
)

func TestFromBillingPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.BillingPayment{
		ID:           "pay-1",
		EstimateID:   "est-1",
		Date:         now,
		Status:       entities.PaymentStatusApproved,
		Method:       entities.PaymentMethodMercadoPago,
		Amount:       2040.46,
		MPPayloadRaw: raw,
		MPPayload:    payload,
	}

	res := FromBillingPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.EstimateID != "est-1" || res.Status != "approved" || res.Method != "mercadopago" || res.Amount != 2040.46 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}

func TestFromPaymentResult(t *testing.T) {
	denied := FromPaymentResult(usecase.PaymentResult{Payment: entities.BillingPayment{ID: "pay-2", Status: entities.PaymentStatusDenied}})
	if denied.Estimate != nil || denied.Payment.Status != "denied" {
		t.Fatalf("unexpected denied response: %+v", denied)
	}

	paid := FromPaymentResult(usecase.PaymentResult{
		Payment:  entities.BillingPayment{ID: "pay-3", Status: entities.PaymentStatusApproved},
		Estimate: entities.EstimateRecord{ID: "est-1", Status: entities.EstimateStatusPaid},
	})
	if paid.Estimate == nil || paid.Estimate.Stage != "Paid" {
		t.Fatalf("unexpected paid response: %+v", paid)
	}
}
