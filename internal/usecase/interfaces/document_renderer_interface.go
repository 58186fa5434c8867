package interfaces

import (
	"context"

	"foampro/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type DocumentKind string

const (
	DocumentEstimate  DocumentKind = "estimate"
	DocumentInvoice   DocumentKind = "invoice"
	DocumentWorkOrder DocumentKind = "work_order"
)

// DocumentLine is a priced line; amounts are rounded to cents.
type DocumentLine struct {
	Description string
	Quantity    string
	Amount      decimal.Decimal
}

// DocumentData is everything a renderer needs. Work orders carry no prices.
type DocumentData struct {
	Kind     DocumentKind
	Title    string
	Number   string
	Date     string
	Terms    string
	Company  entities.CompanyProfile
	Customer entities.CustomerProfile
	Record   entities.EstimateRecord
	Lines    []DocumentLine
	Total    decimal.Decimal
	ShowCost bool
}

type RenderedDocument struct {
	FileName    string
	ContentType string
	Body        []byte
}

type IDocumentRenderer interface {
	Render(ctx context.Context, data DocumentData) (RenderedDocument, error)
}
