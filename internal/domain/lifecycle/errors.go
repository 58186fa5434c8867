package lifecycle

import "errors"

var (
	// ErrValidation marks input that can never produce a valid transition.
	ErrValidation = errors.New("validation failed")
	// ErrPrecondition marks a transition the record's current state does not allow.
	ErrPrecondition = errors.New("precondition failed")
	// ErrFinancialsLocked is returned for any attempt to recompute or edit a paid record.
	ErrFinancialsLocked = errors.New("financials are locked once paid")
)
