package request

import (
	"encoding/json"
	"errors"
	"testing"

	"foampro/internal/domain/lifecycle"
	"foampro/internal/usecase/interfaces"
)

func TestEstimateRequest_FlattensCalculatorState(t *testing.T) {
	var r EstimateRequest
	body := `{"version":4,"mode":"Walls Only","length":20,"wallSettings":{"type":"Closed Cell","thickness":2},"customerProfile":{"id":"c1"}}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Version != 4 || r.Length != 20 || r.WallSettings.Thickness != 2 || r.CustomerProfile.ID != "c1" {
		t.Fatalf("unexpected request: %+v", r)
	}
}

func TestSendDocumentRequest_ResolveKind(t *testing.T) {
	k, err := SendDocumentRequest{Kind: " Invoice "}.ResolveKind()
	if err != nil || k != interfaces.DocumentInvoice {
		t.Fatalf("expected invoice, got %q %v", k, err)
	}
	if _, err := (SendDocumentRequest{Kind: "receipt"}).ResolveKind(); !errors.Is(err, ErrInvalidDocumentKind) {
		t.Fatalf("expected ErrInvalidDocumentKind, got %v", err)
	}
}

func TestInvoiceRequest_Details(t *testing.T) {
	d := InvoiceRequest{InvoiceNumber: " INV-9 ", PaymentTerms: "Net 30"}.Details()
	if d.InvoiceNumber != "INV-9" || d.PaymentTerms != "Net 30" || d.InvoiceDate != "" {
		t.Fatalf("unexpected details: %+v", d)
	}
}

func TestEstimateListQuery_ResolveStage(t *testing.T) {
	s, err := EstimateListQuery{Stage: "Work Order (Scheduled)"}.ResolveStage()
	if err != nil || s != lifecycle.StageWorkOrderScheduled {
		t.Fatalf("unexpected stage %q %v", s, err)
	}
	if s, err := (EstimateListQuery{}).ResolveStage(); err != nil || s != "" {
		t.Fatalf("empty stage should pass, got %q %v", s, err)
	}
	if _, err := (EstimateListQuery{Stage: "Lost"}).ResolveStage(); !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("expected ErrInvalidStage, got %v", err)
	}
}
