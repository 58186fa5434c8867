package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false)
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestMercadoPagoGateway_Mock(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	t.Run("approves positive amount", func(t *testing.T) {
		id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":4200.5,"description":"INV-1"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" || status != "approved" {
			t.Fatalf("got id=%q status=%q", id, status)
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if body["description"] != "INV-1" || body["date_approved"] == nil {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, status, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":0}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != "rejected" {
			t.Fatalf("status = %q, want rejected", status)
		}
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		_, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`not json`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != "rejected" || len(raw) == 0 {
			t.Fatalf("status=%q raw=%s", status, raw)
		}
	})
}
