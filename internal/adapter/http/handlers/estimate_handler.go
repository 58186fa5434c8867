package handlers

import (
	"context"
	"errors"
	"net/http"

	request "foampro/internal/adapter/http/dto/request"
	response "foampro/internal/adapter/http/dto/response"
	"foampro/internal/domain/entities"
	"foampro/internal/usecase"
	"foampro/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles the office side of a job: quoting, work orders,
// invoicing and documents.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// Calculate godoc
// @Summary Calculate an estimate without saving it
// @Tags estimates
// @Accept json
// @Produce json
// @Param body body request.EstimateRequest true "Calculator state"
// @Success 200 {object} entities.CalculationResults
// @Router /estimates/calculate [post]
func (h *EstimateHandler) Calculate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload)
		return
	}
	c.JSON(http.StatusOK, h.usecase.Calculate(payload.CalculatorState))
}

// CreateEstimate godoc
// @Summary Create a draft estimate
// @Tags estimates
// @Accept json
// @Produce json
// @Param body body request.EstimateRequest true "Calculator state"
// @Success 201 {object} response.EstimateResponse
// @Router /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload)
		return
	}

	res, err := h.usecase.CreateDraft(c.Request.Context(), payload.CalculatorState)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimateResult(res))
}

// ListEstimates godoc
// @Summary List estimates, newest first
// @Tags estimates
// @Produce json
// @Param status query string false "Stored status"
// @Param stage query string false "Presentation stage"
// @Param customer_id query string false "Customer id"
// @Param include_archived query bool false "Include archived records"
// @Success 200 {array} response.EstimateResponse
// @Router /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	var q request.EstimateListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	stage, err := q.ResolveStage()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	recs, err := h.usecase.List(c.Request.Context(), usecase.EstimateFilter{
		Status:          entities.EstimateStatus(q.Status),
		CustomerID:      q.CustomerID,
		Stage:           stage,
		IncludeArchived: q.IncludeArchived,
	})
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(recs))
}

// GetEstimate godoc
// @Summary Get an estimate
// @Tags estimates
// @Produce json
// @Param id path string true "Estimate id"
// @Success 200 {object} response.EstimateResponse
// @Router /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(rec))
}

// UpdateEstimate godoc
// @Summary Re-snapshot a draft or work order from edited inputs
// @Tags estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate id"
// @Param body body request.EstimateRequest true "Calculator state and version"
// @Success 200 {object} response.EstimateResponse
// @Router /estimates/{id} [put]
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload)
		return
	}
	h.respond(c, func(ctx context.Context) (usecase.EstimateResult, error) {
		return h.usecase.UpdateInputs(ctx, c.Param("id"), payload.Version, payload.CalculatorState)
	})
}

// ConvertToWorkOrder godoc
// @Summary Convert a draft into a work order
// @Tags estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate id"
// @Param body body request.ConvertRequest false "Version and optional edited state"
// @Success 200 {object} response.EstimateResponse
// @Router /estimates/{id}/convert [post]
func (h *EstimateHandler) ConvertToWorkOrder(c *gin.Context) {
	var payload request.ConvertRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	h.respond(c, func(ctx context.Context) (usecase.EstimateResult, error) {
		return h.usecase.ConvertToWorkOrder(ctx, c.Param("id"), payload.Version, payload.State)
	})
}

// Schedule godoc
// @Summary Set the scheduled date of a work order
// @Tags estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate id"
// @Param body body request.ScheduleRequest true "Scheduled date"
// @Success 200 {object} response.EstimateResponse
// @Router /estimates/{id}/schedule [post]
func (h *EstimateHandler) Schedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(ctx context.Context) (usecase.EstimateResult, error) {
		return h.usecase.Schedule(ctx, c.Param("id"), payload.Version, payload.ResolveDate())
	})
}

// Invoice godoc
// @Summary Invoice a completed work order
// @Tags estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate id"
// @Param body body request.InvoiceRequest false "Invoice details"
// @Success 200 {object} response.EstimateResponse
// @Router /estimates/{id}/invoice [post]
func (h *EstimateHandler) Invoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	h.respond(c, func(ctx context.Context) (usecase.EstimateResult, error) {
		return h.usecase.Invoice(ctx, c.Param("id"), payload.Version, payload.Details())
	})
}

// RefreshFinancials godoc
// @Summary Recompute financials from actuals
// @Tags estimates
// @Param id path string true "Estimate id"
// @Success 200 {object} response.EstimateResponse
// @Router /estimates/{id}/financials [post]
func (h *EstimateHandler) RefreshFinancials(c *gin.Context) {
	h.versioned(c, h.usecase.RefreshFinancials)
}

// Archive godoc
// @Summary Archive a record
// @Tags estimates
// @Param id path string true "Estimate id"
// @Success 200 {object} response.EstimateResponse
// @Router /estimates/{id}/archive [post]
func (h *EstimateHandler) Archive(c *gin.Context) {
	h.versioned(c, h.usecase.Archive)
}

// Unarchive godoc
// @Summary Restore an archived record
// @Tags estimates
// @Param id path string true "Estimate id"
// @Success 200 {object} response.EstimateResponse
// @Router /estimates/{id}/unarchive [post]
func (h *EstimateHandler) Unarchive(c *gin.Context) {
	h.versioned(c, h.usecase.Unarchive)
}

// SendDocument godoc
// @Summary Email an estimate, invoice or work order to the customer
// @Tags estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate id"
// @Param body body request.SendDocumentRequest true "Document kind"
// @Success 200 {object} usecase.SentDocument
// @Router /estimates/{id}/send [post]
func (h *EstimateHandler) SendDocument(c *gin.Context) {
	var payload request.SendDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	kind, err := payload.ResolveKind()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	sent, err := h.usecase.SendDocument(c.Request.Context(), c.Param("id"), kind)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, sent)
}

func (h *EstimateHandler) versioned(c *gin.Context, op func(ctx context.Context, id string, version int64) (usecase.EstimateResult, error)) {
	var payload request.VersionRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	h.respond(c, func(ctx context.Context) (usecase.EstimateResult, error) {
		return op(ctx, c.Param("id"), payload.Version)
	})
}

func (h *EstimateHandler) respond(c *gin.Context, op func(ctx context.Context) (usecase.EstimateResult, error)) {
	res, err := op(c.Request.Context())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

// bindOptionalJSON binds the body when there is one. It writes the error
// response itself and reports whether the handler should continue.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, errInvalidRequest)
		return false
	}
	return true
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCustomerEmailRequired):
		return pkg.NewDomainError("CUSTOMER_EMAIL_REQUIRED", "Customer email required to send quote", err, http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
