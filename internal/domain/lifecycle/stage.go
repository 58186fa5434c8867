package lifecycle

import "foampro/internal/domain/entities"

// Stage is the presentation state of a record. Several stages share the same
// stored status.
type Stage string

const (
	StageDraft                Stage = "Draft"
	StageWorkOrderUnscheduled Stage = "Work Order (Unscheduled)"
	StageWorkOrderScheduled   Stage = "Work Order (Scheduled)"
	StageInProgress           Stage = "In Progress"
	StageCompleted            Stage = "Completed"
	StageInvoiced             Stage = "Invoiced"
	StagePaid                 Stage = "Paid"
	StageArchived             Stage = "Archived"
)

func StageOf(rec entities.EstimateRecord) Stage {
	switch rec.Status {
	case entities.EstimateStatusWorkOrder:
		switch rec.ExecutionStatus {
		case entities.ExecutionCompleted:
			return StageCompleted
		case entities.ExecutionInProgress:
			return StageInProgress
		}
		if rec.ScheduledDate == "" {
			return StageWorkOrderUnscheduled
		}
		return StageWorkOrderScheduled
	case entities.EstimateStatusInvoiced:
		return StageInvoiced
	case entities.EstimateStatusPaid:
		return StagePaid
	case entities.EstimateStatusArchived:
		return StageArchived
	}
	return StageDraft
}

// NextAction names the operator action that moves the record forward.
func NextAction(rec entities.EstimateRecord) string {
	switch StageOf(rec) {
	case StageDraft:
		return "convert"
	case StageWorkOrderUnscheduled:
		return "schedule"
	case StageWorkOrderScheduled:
		return "start"
	case StageInProgress:
		return "complete"
	case StageCompleted:
		return "invoice"
	case StageInvoiced:
		return "record_payment"
	case StageArchived:
		return "unarchive"
	}
	return ""
}
