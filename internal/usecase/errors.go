package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"foampro/internal/domain/lifecycle"
	"foampro/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")

	ErrCustomerEmailRequired = fmt.Errorf("%w: customer email required to send quote", lifecycle.ErrPrecondition)
)

// ExternalError marks a failed call to a collaborator outside this service
// (script backend, email service, renderer, payment gateway).
type ExternalError struct {
	Service string
	Err     error
}

func (e *ExternalError) Error() string { return e.Service + ": " + e.Err.Error() }
func (e *ExternalError) Unwrap() error { return e.Err }

func external(service string, err error) error {
	if err == nil {
		return nil
	}
	return &ExternalError{Service: service, Err: err}
}

// SideEffectFailure reports a follow-up call that failed after the main
// change was committed. The change itself is never rolled back.
type SideEffectFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type sideEffects []SideEffectFailure

func (s *sideEffects) record(log *slog.Logger, name string, err error) {
	if err == nil {
		return
	}
	log.Warn("side effect failed", "side_effect", name, "err", err)
	*s = append(*s, SideEffectFailure{Name: name, Error: err.Error()})
}

func checkVersion(stored, expected int64) error {
	if expected > 0 && stored != expected {
		return fmt.Errorf("%w: expected version %d, stored %d", interfaces.ErrVersionConflict, expected, stored)
	}
	return nil
}
