package request

import (
	"errors"
	"strings"

	"foampro/internal/domain/entities"
	"foampro/internal/domain/lifecycle"
	"foampro/internal/usecase/interfaces"
)

var (
	ErrInvalidDocumentKind = errors.New("invalid document kind")
	ErrInvalidStage        = errors.New("invalid stage")
)

// EstimateRequest is the calculator payload. Version is only read by update
// routes; zero skips the caller-side version check.
type EstimateRequest struct {
	Version int64 `json:"version"`
	entities.CalculatorState
}

// VersionRequest is the body of transitions that carry no other input.
type VersionRequest struct {
	Version int64 `json:"version"`
}

// ConvertRequest optionally re-snapshots edited inputs while converting.
type ConvertRequest struct {
	Version int64                     `json:"version"`
	State   *entities.CalculatorState `json:"state"`
}

type ScheduleRequest struct {
	Version       int64  `json:"version"`
	ScheduledDate string `json:"scheduledDate" binding:"required"`
}

func (r ScheduleRequest) ResolveDate() string {
	return strings.TrimSpace(r.ScheduledDate)
}

type InvoiceRequest struct {
	Version       int64  `json:"version"`
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"`
	PaymentTerms  string `json:"paymentTerms"`
}

func (r InvoiceRequest) Details() lifecycle.InvoiceDetails {
	return lifecycle.InvoiceDetails{
		InvoiceNumber: strings.TrimSpace(r.InvoiceNumber),
		InvoiceDate:   strings.TrimSpace(r.InvoiceDate),
		PaymentTerms:  strings.TrimSpace(r.PaymentTerms),
	}
}

type SendDocumentRequest struct {
	Kind string `json:"kind" binding:"required"`
}

func (r SendDocumentRequest) ResolveKind() (interfaces.DocumentKind, error) {
	switch k := interfaces.DocumentKind(strings.ToLower(strings.TrimSpace(r.Kind))); k {
	case interfaces.DocumentEstimate, interfaces.DocumentInvoice, interfaces.DocumentWorkOrder:
		return k, nil
	}
	return "", ErrInvalidDocumentKind
}

// EstimateListQuery is bound from the query string of GET /estimates.
type EstimateListQuery struct {
	Status          string `form:"status"`
	CustomerID      string `form:"customer_id"`
	Stage           string `form:"stage"`
	IncludeArchived bool   `form:"include_archived"`
}

func (q EstimateListQuery) ResolveStage() (lifecycle.Stage, error) {
	s := lifecycle.Stage(strings.TrimSpace(q.Stage))
	switch s {
	case "", lifecycle.StageDraft, lifecycle.StageWorkOrderUnscheduled, lifecycle.StageWorkOrderScheduled,
		lifecycle.StageInProgress, lifecycle.StageCompleted, lifecycle.StageInvoiced, lifecycle.StagePaid, lifecycle.StageArchived:
		return s, nil
	}
	return "", ErrInvalidStage
}
