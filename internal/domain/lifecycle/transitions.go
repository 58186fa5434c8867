// Package lifecycle moves an estimate record through
// Draft → Work Order → Invoiced → Paid, with the crew execution sub-state
// and soft archival. Every transition takes the latest known record by value
// and either returns the new record or an error; the input is never modified.
package lifecycle

import (
	"fmt"
	"math"
	"strings"
	"time"

	"foampro/internal/domain/entities"
	"foampro/internal/domain/estimator"
)

const dateLayout = "2006-01-02"

func stamp(now time.Time) string { return now.UTC().Format(time.RFC3339) }

func precondition(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPrecondition}, args...)...)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// snapshot copies the calculator state and results onto the record.
func snapshot(rec entities.EstimateRecord, s entities.CalculatorState, r entities.CalculationResults) entities.EstimateRecord {
	rec.Inputs = s.EstimateInputs
	rec.Inputs.AdditionalAreas = append([]entities.AdditionalArea(nil), s.AdditionalAreas...)
	rec.Results = r
	rec.PricingMode = s.PricingMode
	rec.SqFtRates = s.SqFtRates
	rec.Yields = s.Yields
	rec.Costs = s.Costs
	rec.WallSettings = s.WallSettings
	rec.RoofSettings = s.RoofSettings
	rec.Expenses = s.Expenses
	if s.Expenses.LaborRate != nil {
		rate := *s.Expenses.LaborRate
		rec.Expenses.LaborRate = &rate
	}
	rec.Materials = entities.Materials{
		OpenCellSets:   r.OpenCellSets,
		ClosedCellSets: r.ClosedCellSets,
		Inventory:      append([]entities.InventoryItem(nil), s.Inventory...),
		Equipment:      append([]entities.EquipmentItem(nil), s.JobEquipment...),
	}
	rec.TotalValue = r.TotalCost
	rec.Notes = s.JobNotes
	if len(s.SitePhotos) > 0 {
		rec.SitePhotos = append([]entities.JobImage(nil), s.SitePhotos...)
	}
	if s.ScheduledDate != "" {
		rec.ScheduledDate = s.ScheduledDate
	}
	if s.PaymentTerms != "" {
		rec.PaymentTerms = s.PaymentTerms
	}
	return rec
}

// NewDraft creates a Draft record from a finalized calculation.
func NewDraft(id string, s entities.CalculatorState, r entities.CalculationResults, now time.Time) (entities.EstimateRecord, error) {
	if strings.TrimSpace(id) == "" {
		return entities.EstimateRecord{}, invalid("estimate id required")
	}
	if strings.TrimSpace(s.CustomerProfile.Name) == "" {
		return entities.EstimateRecord{}, invalid("customer name required")
	}
	rec := entities.EstimateRecord{
		ID:         id,
		CustomerID: s.CustomerProfile.ID,
		Status:     entities.EstimateStatusDraft,
		Date:       stamp(now),
		Customer:   s.CustomerProfile,
		UpdatedAt:  stamp(now),
	}
	rec.Customer.Logs = nil
	return snapshot(rec, s, r), nil
}

// UpdateInputs re-snapshots an edited calculation. Status and execution are
// kept; paid and archived records cannot be edited.
func UpdateInputs(rec entities.EstimateRecord, s entities.CalculatorState, r entities.CalculationResults, now time.Time) (entities.EstimateRecord, error) {
	switch rec.Status {
	case entities.EstimateStatusPaid:
		return rec, ErrFinancialsLocked
	case entities.EstimateStatusArchived:
		return rec, precondition("archived estimate cannot be edited")
	}
	out := snapshot(rec, s, r)
	if strings.TrimSpace(s.CustomerProfile.Name) != "" {
		out.Customer = s.CustomerProfile
		out.Customer.Logs = nil
		if s.CustomerProfile.ID != "" {
			out.CustomerID = s.CustomerProfile.ID
		}
	}
	if s.InvoiceNumber != "" {
		out.InvoiceNumber = s.InvoiceNumber
	}
	if s.InvoiceDate != "" {
		out.InvoiceDate = s.InvoiceDate
	}
	out.UpdatedAt = stamp(now)
	return out, nil
}

// ConvertToWorkOrder marks a Draft as sold. It needs a saved customer.
func ConvertToWorkOrder(rec entities.EstimateRecord, s entities.CalculatorState, r entities.CalculationResults, now time.Time) (entities.EstimateRecord, error) {
	if rec.Status != entities.EstimateStatusDraft {
		return rec, precondition("only a draft can become a work order (status %s)", rec.Status)
	}
	customerID := rec.CustomerID
	if s.CustomerProfile.ID != "" {
		customerID = s.CustomerProfile.ID
	}
	if strings.TrimSpace(customerID) == "" {
		return rec, precondition("saved customer required to create a work order")
	}
	out, err := UpdateInputs(rec, s, r, now)
	if err != nil {
		return rec, err
	}
	out.CustomerID = customerID
	out.Status = entities.EstimateStatusWorkOrder
	out.ExecutionStatus = entities.ExecutionNotStarted
	return out, nil
}

// Schedule sets the scheduled date of a Work Order. Only the date changes.
func Schedule(rec entities.EstimateRecord, date string, now time.Time) (entities.EstimateRecord, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return rec, invalid("scheduled date required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		if _, err := time.Parse(time.RFC3339, date); err != nil {
			return rec, invalid("scheduled date %q is not a date", date)
		}
	}
	if rec.Status != entities.EstimateStatusWorkOrder {
		return rec, precondition("only a work order can be scheduled (status %s)", rec.Status)
	}
	if rec.ExecutionStatus == entities.ExecutionCompleted {
		return rec, precondition("job already completed")
	}
	rec.ScheduledDate = date
	rec.UpdatedAt = stamp(now)
	return rec, nil
}

// StartJob moves execution to In Progress. Starting a job that is already
// running or completed is a no-op and reports changed=false.
func StartJob(rec entities.EstimateRecord, now time.Time) (out entities.EstimateRecord, changed bool, err error) {
	if rec.Status != entities.EstimateStatusWorkOrder && rec.Status != entities.EstimateStatusInvoiced {
		return rec, false, precondition("only a work order can be started (status %s)", rec.Status)
	}
	switch rec.ExecutionStatus {
	case entities.ExecutionInProgress, entities.ExecutionCompleted:
		return rec, false, nil
	}
	rec.ExecutionStatus = entities.ExecutionInProgress
	rec.UpdatedAt = stamp(now)
	return rec, true, nil
}

func validQuantity(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// ValidateActuals checks a crew completion payload.
func ValidateActuals(a entities.Actuals) error {
	if strings.TrimSpace(a.CompletedBy) == "" {
		return invalid("completed by required")
	}
	if !validQuantity(a.OpenCellSets) || !validQuantity(a.ClosedCellSets) {
		return invalid("chemical sets used must be non-negative numbers")
	}
	if !validQuantity(a.LaborHours) {
		return invalid("labor hours must be a non-negative number")
	}
	for _, it := range a.Inventory {
		if !validQuantity(it.Quantity) {
			return invalid("inventory quantity for %q must be a non-negative number", it.Name)
		}
	}
	return nil
}

// CompleteJob records crew actuals. The job must have been started; a
// completed job may be resubmitted and stays Completed.
func CompleteJob(rec entities.EstimateRecord, a entities.Actuals, now time.Time) (entities.EstimateRecord, error) {
	if err := ValidateActuals(a); err != nil {
		return rec, err
	}
	switch rec.Status {
	case entities.EstimateStatusWorkOrder, entities.EstimateStatusInvoiced:
	case entities.EstimateStatusPaid:
		return rec, ErrFinancialsLocked
	default:
		return rec, precondition("only a work order can be completed (status %s)", rec.Status)
	}
	switch rec.ExecutionStatus {
	case entities.ExecutionInProgress, entities.ExecutionCompleted:
	default:
		return rec, precondition("job has not been started")
	}
	if a.CompletionDate == "" {
		a.CompletionDate = stamp(now)
	}
	a.Inventory = append([]entities.InventoryItem(nil), a.Inventory...)
	a.Equipment = append([]entities.EquipmentItem(nil), a.Equipment...)
	a.CompletionPhotos = append([]entities.JobImage(nil), a.CompletionPhotos...)
	rec.Actuals = &a
	rec.ExecutionStatus = entities.ExecutionCompleted
	rec.UpdatedAt = stamp(now)
	return rec, nil
}

// InvoiceDetails are the office-entered invoice fields.
type InvoiceDetails struct {
	InvoiceNumber string
	InvoiceDate   string
	PaymentTerms  string
}

// Invoice freezes a financial snapshot on a Work Order. Execution does not
// need to be completed; without actuals the planned figures are used.
func Invoice(rec entities.EstimateRecord, d InvoiceDetails, tolerance float64, now time.Time) (entities.EstimateRecord, error) {
	if rec.Status != entities.EstimateStatusWorkOrder {
		return rec, precondition("only a work order can be invoiced (status %s)", rec.Status)
	}
	if strings.TrimSpace(rec.Customer.Name) == "" {
		return rec, precondition("customer required to invoice")
	}
	fin, disc, err := Reconcile(rec, tolerance)
	if err != nil {
		return rec, err
	}
	rec.Status = entities.EstimateStatusInvoiced
	rec.Financials = &fin
	rec.Discrepancies = disc
	if d.InvoiceNumber != "" {
		rec.InvoiceNumber = d.InvoiceNumber
	}
	if rec.InvoiceNumber == "" {
		rec.InvoiceNumber = DefaultInvoiceNumber(rec.ID)
	}
	rec.InvoiceDate = d.InvoiceDate
	if rec.InvoiceDate == "" {
		rec.InvoiceDate = now.UTC().Format(dateLayout)
	}
	if d.PaymentTerms != "" {
		rec.PaymentTerms = d.PaymentTerms
	}
	if rec.PaymentTerms == "" {
		rec.PaymentTerms = "Due on Receipt"
	}
	rec.UpdatedAt = stamp(now)
	return rec, nil
}

// DefaultInvoiceNumber derives a readable invoice number from the record id.
func DefaultInvoiceNumber(id string) string {
	compact := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(compact) > 8 {
		compact = compact[:8]
	}
	return "INV-" + compact
}

// RefreshFinancials recomputes the snapshot of an invoiced record, e.g.
// after the crew resubmits actuals.
func RefreshFinancials(rec entities.EstimateRecord, tolerance float64, now time.Time) (entities.EstimateRecord, error) {
	if rec.Status == entities.EstimateStatusPaid {
		return rec, ErrFinancialsLocked
	}
	if rec.Status != entities.EstimateStatusInvoiced {
		return rec, precondition("financials exist only after invoicing (status %s)", rec.Status)
	}
	fin, disc, err := Reconcile(rec, tolerance)
	if err != nil {
		return rec, err
	}
	rec.Financials = &fin
	rec.Discrepancies = disc
	rec.UpdatedAt = stamp(now)
	return rec, nil
}

// RecordPayment closes an invoiced record. Its financials are locked from now on.
func RecordPayment(rec entities.EstimateRecord, now time.Time) (entities.EstimateRecord, error) {
	switch rec.Status {
	case entities.EstimateStatusInvoiced:
	case entities.EstimateStatusPaid:
		return rec, precondition("estimate already paid")
	default:
		return rec, precondition("only an invoiced estimate can be paid (status %s)", rec.Status)
	}
	if rec.Financials == nil {
		return rec, precondition("invoice has no financial snapshot")
	}
	rec.Status = entities.EstimateStatusPaid
	rec.PaidDate = now.UTC().Format(dateLayout)
	rec.UpdatedAt = stamp(now)
	return rec, nil
}

// Archive hides a record without touching its data.
func Archive(rec entities.EstimateRecord, now time.Time) (entities.EstimateRecord, error) {
	if rec.Status == entities.EstimateStatusArchived {
		return rec, precondition("estimate already archived")
	}
	rec.ArchivedFrom = rec.Status
	rec.Status = entities.EstimateStatusArchived
	rec.UpdatedAt = stamp(now)
	return rec, nil
}

// Unarchive restores the status the record had when it was archived.
func Unarchive(rec entities.EstimateRecord, now time.Time) (entities.EstimateRecord, error) {
	if rec.Status != entities.EstimateStatusArchived {
		return rec, precondition("estimate is not archived")
	}
	rec.Status = rec.ArchivedFrom
	if rec.Status == "" {
		rec.Status = entities.EstimateStatusDraft
	}
	rec.ArchivedFrom = ""
	rec.UpdatedAt = stamp(now)
	return rec, nil
}

// LoadState rebuilds the calculator state stored on a record so it can be
// edited or recomputed.
func LoadState(rec entities.EstimateRecord) entities.CalculatorState {
	s := entities.CalculatorState{
		EstimateInputs:  rec.Inputs,
		WallSettings:    rec.WallSettings,
		RoofSettings:    rec.RoofSettings,
		Yields:          rec.Yields,
		Costs:           rec.Costs,
		PricingMode:     rec.PricingMode,
		SqFtRates:       rec.SqFtRates,
		Expenses:        rec.Expenses,
		Inventory:       append([]entities.InventoryItem(nil), rec.Materials.Inventory...),
		JobEquipment:    append([]entities.EquipmentItem(nil), rec.Materials.Equipment...),
		CustomerProfile: rec.Customer,
		SitePhotos:      append([]entities.JobImage(nil), rec.SitePhotos...),
		JobNotes:        rec.Notes,
		ScheduledDate:   rec.ScheduledDate,
		InvoiceDate:     rec.InvoiceDate,
		InvoiceNumber:   rec.InvoiceNumber,
		PaymentTerms:    rec.PaymentTerms,
	}
	s.AdditionalAreas = append([]entities.AdditionalArea(nil), rec.Inputs.AdditionalAreas...)
	return s
}

// Recalculate recomputes a record's results from its own snapshot.
func Recalculate(rec entities.EstimateRecord) entities.CalculationResults {
	return estimator.Calculate(LoadState(rec))
}
