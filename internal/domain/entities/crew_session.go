package entities

import "time"

// ActiveTimer is the resumable crew operation: a job clock that must survive a
// restart of the crew client. It is stored per user.
type ActiveTimer struct {
	JobID     string    `json:"jobId"`
	StartedAt time.Time `json:"startedAt"`
	User      string    `json:"user"`
}
