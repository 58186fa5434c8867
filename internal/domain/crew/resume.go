// Package crew holds the field-crew session rules: resuming a job clock after
// a restart and deciding when background refresh may run.
package crew

import (
	"time"

	"foampro/internal/domain/entities"
)

// ResumeDecision says whether a persisted timer is still meaningful.
type ResumeDecision struct {
	Keep    bool
	Reason  string
	Elapsed time.Duration
}

// Resume decides what to do with a timer found on startup. rec is the latest
// known record for the timer's job; found is false when the job is gone.
func Resume(timer entities.ActiveTimer, rec entities.EstimateRecord, found bool, now time.Time) ResumeDecision {
	if !found {
		return ResumeDecision{Reason: "job no longer exists"}
	}
	switch {
	case rec.Status == entities.EstimateStatusArchived:
		return ResumeDecision{Reason: "job archived"}
	case rec.ExecutionStatus == entities.ExecutionCompleted:
		return ResumeDecision{Reason: "job already completed"}
	case rec.Status != entities.EstimateStatusWorkOrder && rec.Status != entities.EstimateStatusInvoiced:
		return ResumeDecision{Reason: "job is not a work order"}
	}
	elapsed := now.Sub(timer.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return ResumeDecision{Keep: true, Elapsed: elapsed}
}
