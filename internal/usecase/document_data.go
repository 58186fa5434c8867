package usecase

import (
	"fmt"
	"strings"

	"foampro/internal/domain/entities"
	"foampro/internal/domain/lifecycle"
	"foampro/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func shortID(prefix, id string) string {
	compact := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(compact) > 8 {
		compact = compact[:8]
	}
	return prefix + compact
}

func dateOnly(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}

func foamLabel(s entities.FoamSettings) string {
	t := s.Type
	if t == "" {
		t = entities.FoamTypeOpenCell
	}
	return fmt.Sprintf("%s at %s\"", t, decimal.NewFromFloat(s.Thickness).String())
}

// BuildDocumentData turns a record into renderer input. Currency is rounded
// to cents per line; Total is the record's total value rounded once.
func BuildDocumentData(kind interfaces.DocumentKind, rec entities.EstimateRecord, company entities.CompanyProfile) (interfaces.DocumentData, error) {
	d := interfaces.DocumentData{
		Kind:     kind,
		Company:  company,
		Customer: rec.Customer,
		Record:   rec,
		Total:    cents(rec.TotalValue),
		ShowCost: true,
	}
	if rec.Status == entities.EstimateStatusArchived {
		return d, fmt.Errorf("%w: archived estimate has no documents", lifecycle.ErrPrecondition)
	}

	switch kind {
	case interfaces.DocumentEstimate:
		d.Title = "Estimate"
		d.Number = shortID("EST-", rec.ID)
		d.Date = dateOnly(rec.Date)
		d.Lines = priceLines(rec)
	case interfaces.DocumentInvoice:
		if rec.Status != entities.EstimateStatusInvoiced && rec.Status != entities.EstimateStatusPaid {
			return d, fmt.Errorf("%w: invoice document needs an invoiced estimate (status %s)", lifecycle.ErrPrecondition, rec.Status)
		}
		d.Title = "Invoice"
		d.Number = rec.InvoiceNumber
		d.Date = rec.InvoiceDate
		d.Terms = rec.PaymentTerms
		d.Lines = priceLines(rec)
	case interfaces.DocumentWorkOrder:
		if rec.Status == entities.EstimateStatusDraft {
			return d, fmt.Errorf("%w: work order document needs a work order", lifecycle.ErrPrecondition)
		}
		d.Title = "Work Order"
		d.Number = shortID("WO-", rec.ID)
		d.Date = rec.ScheduledDate
		if d.Date == "" {
			d.Date = dateOnly(rec.Date)
		}
		d.Lines = materialLines(rec)
		d.ShowCost = false
		d.Total = decimal.Zero
	default:
		return d, fmt.Errorf("%w: unknown document kind %q", lifecycle.ErrValidation, kind)
	}
	return d, nil
}

func priceLines(rec entities.EstimateRecord) []interfaces.DocumentLine {
	r := rec.Results
	var lines []interfaces.DocumentLine

	if rec.PricingMode == entities.PricingModeSqFt {
		if r.TotalWallArea > 0 {
			lines = append(lines, interfaces.DocumentLine{
				Description: "Wall insulation, " + foamLabel(rec.WallSettings),
				Quantity:    cents(r.TotalWallArea).String() + " sq ft",
				Amount:      cents(r.TotalWallArea * rec.SqFtRates.Wall),
			})
		}
		if r.TotalRoofArea > 0 {
			lines = append(lines, interfaces.DocumentLine{
				Description: "Roof insulation, " + foamLabel(rec.RoofSettings),
				Quantity:    cents(r.TotalRoofArea).String() + " sq ft",
				Amount:      cents(r.TotalRoofArea * rec.SqFtRates.Roof),
			})
		}
		return lines
	}

	if chem := r.OpenCellCost + r.ClosedCellCost; chem > 0 {
		lines = append(lines, interfaces.DocumentLine{
			Description: "Spray foam insulation",
			Quantity:    cents(r.WallBdFt + r.RoofBdFt).String() + " bd ft",
			Amount:      cents(chem),
		})
	}
	for _, it := range rec.Materials.Inventory {
		lines = append(lines, interfaces.DocumentLine{
			Description: it.Name,
			Quantity:    decimal.NewFromFloat(it.Quantity).String() + " " + it.Unit,
			Amount:      cents(it.Quantity * it.UnitCost),
		})
	}
	if r.LaborCost > 0 {
		lines = append(lines, interfaces.DocumentLine{
			Description: "Labor",
			Quantity:    decimal.NewFromFloat(rec.Expenses.ManHours).String() + " hrs",
			Amount:      cents(r.LaborCost),
		})
	}
	for _, fee := range []struct {
		name   string
		amount float64
	}{
		{"Trip charge", rec.Expenses.TripCharge},
		{"Fuel surcharge", rec.Expenses.FuelSurcharge},
		{rec.Expenses.Other.Description, rec.Expenses.Other.Amount},
	} {
		if fee.amount <= 0 {
			continue
		}
		name := fee.name
		if name == "" {
			name = "Other"
		}
		lines = append(lines, interfaces.DocumentLine{Description: name, Quantity: "1", Amount: cents(fee.amount)})
	}
	return lines
}

func materialLines(rec entities.EstimateRecord) []interfaces.DocumentLine {
	m := rec.Materials
	var lines []interfaces.DocumentLine
	if m.OpenCellSets > 0 {
		lines = append(lines, interfaces.DocumentLine{Description: "Open cell foam", Quantity: cents(m.OpenCellSets).String() + " sets"})
	}
	if m.ClosedCellSets > 0 {
		lines = append(lines, interfaces.DocumentLine{Description: "Closed cell foam", Quantity: cents(m.ClosedCellSets).String() + " sets"})
	}
	for _, it := range m.Inventory {
		lines = append(lines, interfaces.DocumentLine{Description: it.Name, Quantity: decimal.NewFromFloat(it.Quantity).String() + " " + it.Unit})
	}
	for _, e := range m.Equipment {
		lines = append(lines, interfaces.DocumentLine{Description: e.Name, Quantity: "1"})
	}
	return lines
}
