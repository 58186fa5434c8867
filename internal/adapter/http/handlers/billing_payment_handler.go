package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	request "foampro/internal/adapter/http/dto/request"
	response "foampro/internal/adapter/http/dto/response"
	"foampro/internal/usecase"
	"foampro/pkg"

	"github.com/gin-gonic/gin"
)

// BillingPaymentHandler handles payments against invoiced estimates.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
	log      *slog.Logger
}

// NewBillingPaymentHandler builds the handler. In mock mode an unreadable
// body falls back to an empty provider payload.
func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode, log: slog.Default().With("component", "payment_handler")}
}

// CreatePaymentByEstimateID godoc
// @Summary Record a payment for an invoiced estimate
// @Tags payments
// @Accept json
// @Produce json
// @Param estimate_id path string true "Estimate id"
// @Param body body request.BillingPaymentCreateRequest false "Method and Mercado Pago payload"
// @Success 200 {object} response.PaymentResultResponse
// @Failure 402 {object} response.PaymentResultResponse
// @Router /payments/{estimate_id} [post]
func (h *BillingPaymentHandler) CreatePaymentByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	log := h.log.With("estimate_id", estimateID)

	payload, err := readPaymentRequest(c)
	if err != nil {
		if !h.mockMode {
			log.Info("invalid payment payload", "err", err)
			writeError(c, errInvalidRequest)
			return
		}
		log.Info("invalid payload in mock mode; using empty payload", "err", err)
		payload = request.BillingPaymentCreateRequest{MPPayload: json.RawMessage("{}")}
	}

	res, err := h.usecase.RecordPayment(c.Request.Context(), estimateID, payload.Method, payload.MPPayload, payload.Reference)
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentDenied) && res.Payment.ID != "" {
			log.Info("payment denied", "payment_id", res.Payment.ID)
			c.JSON(http.StatusPaymentRequired, response.FromPaymentResult(res))
			return
		}
		log.Warn("payment failed", "err", err)
		writeError(c, mapBillingPaymentError(err))
		return
	}
	log.Info("payment recorded", "payment_id", res.Payment.ID, "status", res.Payment.Status)

	c.JSON(http.StatusOK, response.FromPaymentResult(res))
}

// GetPaymentByEstimateID godoc
// @Summary Latest payment of an estimate, or all of them with ?all=true
// @Tags payments
// @Produce json
// @Param estimate_id path string true "Estimate id"
// @Param all query bool false "Return every payment"
// @Success 200 {object} response.BillingPaymentResponse
// @Router /payments/{estimate_id} [get]
func (h *BillingPaymentHandler) GetPaymentByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	payments, err := h.usecase.ListByEstimateID(c.Request.Context(), estimateID)
	if err != nil {
		writeError(c, mapBillingPaymentError(err))
		return
	}

	if c.Query("all") == "true" {
		out := make([]response.BillingPaymentResponse, 0, len(payments))
		for _, p := range payments {
			out = append(out, response.FromBillingPayment(p))
		}
		c.JSON(http.StatusOK, out)
		return
	}

	if len(payments) == 0 {
		writeError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

func readPaymentRequest(c *gin.Context) (request.BillingPaymentCreateRequest, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return request.BillingPaymentCreateRequest{}, err
	}
	return request.ParseBillingPaymentRequest(raw)
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentEstimateID), errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentDenied):
		return pkg.NewDomainErrorSimple("PAYMENT_DENIED", "Payment denied", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrEstimateNotInvoiced):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_INVOICED", "Estimate not invoiced", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
