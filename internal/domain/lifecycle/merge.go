package lifecycle

import "foampro/internal/domain/entities"

func statusRank(s entities.EstimateStatus) int {
	switch s {
	case entities.EstimateStatusWorkOrder:
		return 1
	case entities.EstimateStatusInvoiced:
		return 2
	case entities.EstimateStatusPaid:
		return 3
	}
	return 0
}

func executionRank(s entities.ExecutionStatus) int {
	switch s {
	case entities.ExecutionInProgress:
		return 1
	case entities.ExecutionCompleted:
		return 2
	}
	return 0
}

func isArchived(r entities.EstimateRecord) bool {
	return r.Status == entities.EstimateStatusArchived
}

// underlying is the business status of a record, looking through archival.
func underlying(r entities.EstimateRecord) entities.EstimateStatus {
	if isArchived(r) {
		if r.ArchivedFrom == "" {
			return entities.EstimateStatusDraft
		}
		return r.ArchivedFrom
	}
	return r.Status
}

// paidLocked reports whether the record's financials are frozen.
func paidLocked(r entities.EstimateRecord) bool {
	return underlying(r) == entities.EstimateStatusPaid
}

func sameFinancials(a, b *entities.FinancialSnapshot) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Merge reconciles a locally held record with a freshly fetched one. The
// newer version wins for ordinary fields, but status and execution never move
// backwards, crew actuals come from the side that got further, and a record
// paid locally keeps the financials it was paid with. Archival is kept unless
// the newer side is live at the same or a later status. conflict reports
// whether the older side contributed anything.
func Merge(local, remote entities.EstimateRecord) (merged entities.EstimateRecord, conflict bool) {
	base, other := remote, local
	if local.Version > remote.Version {
		base, other = local, remote
	}
	baseRank, otherRank := statusRank(underlying(base)), statusRank(underlying(other))

	status := underlying(base)
	if otherRank > baseRank {
		status = underlying(other)
		base.Financials = other.Financials
		base.Discrepancies = other.Discrepancies
		base.InvoiceNumber = other.InvoiceNumber
		base.InvoiceDate = other.InvoiceDate
		base.PaidDate = other.PaidDate
		conflict = true
	}

	archived := isArchived(base)
	if !archived && isArchived(other) && otherRank > baseRank {
		archived = true
		conflict = true
	}
	if archived {
		base.Status = entities.EstimateStatusArchived
		base.ArchivedFrom = status
	} else {
		base.Status = status
		base.ArchivedFrom = ""
	}

	if paidLocked(local) {
		if !sameFinancials(base.Financials, local.Financials) {
			conflict = true
		}
		base.Financials = local.Financials
		base.Discrepancies = local.Discrepancies
		base.PaidDate = local.PaidDate
	}

	switch {
	case executionRank(other.ExecutionStatus) > executionRank(base.ExecutionStatus):
		base.ExecutionStatus = other.ExecutionStatus
		base.Actuals = other.Actuals
		conflict = true
	case base.ExecutionStatus == entities.ExecutionCompleted && base.Actuals == nil && other.Actuals != nil:
		base.Actuals = other.Actuals
		conflict = true
	}

	if other.Version > base.Version {
		base.Version = other.Version
	}
	return base, conflict
}
