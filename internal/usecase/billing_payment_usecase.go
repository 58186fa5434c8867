package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foampro/internal/domain/entities"
	"foampro/internal/domain/lifecycle"
	"foampro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentEstimateID       = errors.New("invalid estimate_id")
	ErrInvalidPaymentMethod           = errors.New("invalid payment method")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentDenied                  = errors.New("payment denied by gateway")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")

	ErrEstimateNotInvoiced = fmt.Errorf("%w: only an invoiced estimate can be paid", lifecycle.ErrPrecondition)
)

// PaymentSettings tune how Mercado Pago payloads are prepared.
type PaymentSettings struct {
	// Mock relaxes payload validation; the gateway itself fakes the charge.
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// PaymentResult is the stored payment, the estimate after the Paid
// transition and any follow-up failures.
type PaymentResult struct {
	Payment     entities.BillingPayment `json:"payment"`
	Estimate    entities.EstimateRecord `json:"estimate"`
	SideEffects []SideEffectFailure     `json:"sideEffects,omitempty"`
}

// IBillingPaymentUseCase records payments against invoices.
//
// Behavior:
//   - Only an Invoiced estimate accepts a payment.
//   - mercadopago charges through the gateway; cash, check and transfer are
//     recorded as approved without one.
//   - Every payment is stored for audit; only an approved one moves the
//     estimate to Paid.
type IBillingPaymentUseCase interface {
	RecordPayment(ctx context.Context, estimateID string, method entities.PaymentMethod, mpPayload json.RawMessage, reference string) (PaymentResult, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo         interfaces.IBillingPaymentRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
	backend      interfaces.IFieldBackend
	settings     PaymentSettings
	now          func() time.Time
	newID        func() string
	log          *slog.Logger
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, estimateRepo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway, backend interfaces.IFieldBackend, settings PaymentSettings) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{
		repo:         repo,
		estimateRepo: estimateRepo,
		gateway:      gateway,
		backend:      backend,
		settings:     settings,
		now:          time.Now,
		newID:        uuid.NewString,
		log:          slog.Default().With("component", "payment"),
	}
}

func (u *BillingPaymentUseCase) loadInvoiced(ctx context.Context, estimateID string) (entities.EstimateRecord, error) {
	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if est.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	if est.Status != entities.EstimateStatusInvoiced {
		return entities.EstimateRecord{}, fmt.Errorf("%w (status %s)", ErrEstimateNotInvoiced, est.Status)
	}
	return est, nil
}

func (u *BillingPaymentUseCase) RecordPayment(ctx context.Context, estimateID string, method entities.PaymentMethod, mpPayload json.RawMessage, reference string) (PaymentResult, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return PaymentResult{}, ErrInvalidPaymentEstimateID
	}
	if method == "" {
		method = entities.PaymentMethodMercadoPago
	}
	if method != entities.PaymentMethodMercadoPago && !method.IsOffline() {
		return PaymentResult{}, ErrInvalidPaymentMethod
	}
	log := u.log.With("estimate_id", estimateID, "method", method)
	log.Info("record payment start", "payload_len", len(mpPayload))

	est, err := u.loadInvoiced(ctx, estimateID)
	if err != nil {
		log.Info("payment rejected", "err", err)
		return PaymentResult{}, err
	}

	p := entities.BillingPayment{
		EstimateID: estimateID,
		Date:       u.now().UTC(),
		Method:     method,
		Amount:     est.TotalValue,
		Reference:  strings.TrimSpace(reference),
	}
	if method.IsOffline() {
		p.ID = u.newID()
		p.Status = entities.PaymentStatusApproved
	} else {
		if err := u.charge(ctx, est, mpPayload, &p); err != nil {
			log.Error("gateway charge failed", "err", err)
			return PaymentResult{}, err
		}
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", "payment_id", p.ID, "err", err)
		return PaymentResult{}, err
	}
	if created.Status != entities.PaymentStatusApproved {
		log.Warn("payment not approved", "payment_id", created.ID, "status", created.Status)
		return PaymentResult{Payment: created, Estimate: est}, ErrPaymentDenied
	}

	paid, err := u.markPaid(ctx, est)
	if err != nil {
		log.Error("paid transition failed after payment", "payment_id", created.ID, "err", err)
		return PaymentResult{Payment: created, Estimate: est}, err
	}
	log.Info("record payment success", "payment_id", created.ID, "amount", created.Amount)

	var effects sideEffects
	if u.backend != nil {
		effects.record(log, sideEffectMirror, external("script backend", u.backend.SaveEstimate(ctx, paid)))
	}
	return PaymentResult{Payment: created, Estimate: paid, SideEffects: effects}, nil
}

// markPaid applies the Paid transition, reloading once if another writer
// got there first. The payment is already captured at this point.
func (u *BillingPaymentUseCase) markPaid(ctx context.Context, est entities.EstimateRecord) (entities.EstimateRecord, error) {
	for attempt := 0; ; attempt++ {
		next, err := lifecycle.RecordPayment(est, u.now())
		if err != nil {
			return entities.EstimateRecord{}, err
		}
		saved, err := u.estimateRepo.Update(ctx, next)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, interfaces.ErrVersionConflict) || attempt > 0 {
			return entities.EstimateRecord{}, err
		}
		if est, err = u.loadInvoiced(ctx, est.ID); err != nil {
			return entities.EstimateRecord{}, err
		}
	}
}

// charge sends the Mercado Pago payload and fills p from the provider answer.
func (u *BillingPaymentUseCase) charge(ctx context.Context, est entities.EstimateRecord, mpPayload json.RawMessage, p *entities.BillingPayment) error {
	if u.gateway == nil {
		return ErrPaymentGatewayNotConfigured
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.settings.Mock {
			return ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		return ErrInvalidMPPayload
	}
	if reqMap == nil {
		reqMap = map[string]any{}
	}
	if !u.settings.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			return ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			return ErrInvalidMPPayload
		}
	}

	// Mercado Pago uses external_reference to reconcile events.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = est.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", est.InvoiceNumber)
	}
	// The invoiced total is the source of truth for the amount.
	reqMap["transaction_amount"] = est.TotalValue
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		switch {
		case isGatewayCustomerNotFound(err):
			return ErrPaymentGatewayCustomerNotFound
		case isGatewayInvalidUsers(err):
			return ErrPaymentGatewayInvalidUsers
		case isGatewayUnauthorized(err):
			return ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return ErrPaymentGatewayBadRequest
		}
		return external("payment gateway", err)
	}
	u.log.Info("gateway answered", "estimate_id", est.ID, "provider_payment_id", providerPaymentID, "provider_status", providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("provider response unmarshal failed", "estimate_id", est.ID, "err", err)
	}
	p.ID = providerPaymentID
	if p.ID == "" {
		p.ID = u.newID()
	}
	p.Status = paymentStatusFromProvider(providerStatus)
	p.MPPayloadRaw = providerResp
	p.MPPayload = parsed
	return nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *BillingPaymentUseCase) sandbox() bool {
	return strings.HasPrefix(u.settings.AccessToken, "TEST-")
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.settings.TestPayerEmail != "" {
			payer["email"] = u.settings.TestPayerEmail
		} else if u.sandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *BillingPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}
	if u.settings.TestPayerUserID == "" || u.settings.TestPayerEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != u.settings.TestPayerUserID {
		return
	}

	payer["email"] = u.settings.TestPayerEmail
	delete(payer, "id")
	u.log.Debug("mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.BillingPayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidPaymentEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}
