package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges invoices through the Mercado Pago SDK. In mock
// mode it approves any payload with a positive transaction_amount and rejects
// the rest, without network access.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
	log      *slog.Logger
}

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	logger := slog.Default().With("component", "payment.gateway")
	if mock {
		logger.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now, log: logger}, nil
	}

	if accessToken == "" {
		logger.Error("missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("failed creating sdk config", "err", err)
		return nil, err
	}
	logger.Info("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now, log: logger}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		slog.Error("gateway not configured", "component", "payment.gateway")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Debug("create start", "payload_len", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Warn("payload unmarshal failed", "err", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error("sdk create failed", "err", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info("create success", "provider_payment_id", resp.ID, "provider_status", resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	status, detail := "approved", "accredited"
	if amount, _ := resp["transaction_amount"].(float64); amount <= 0 {
		status, detail = "rejected", "cc_rejected_other_reason"
	}
	resp["id"] = id
	resp["status"] = status
	resp["status_detail"] = detail
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now.Format(time.RFC3339Nano)
	}
	if status == "approved" {
		if _, ok := resp["date_approved"]; !ok {
			resp["date_approved"] = now.Format(time.RFC3339Nano)
		}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info("mock create", "provider_payment_id", id, "provider_status", status)
	return id, status, b, nil
}
