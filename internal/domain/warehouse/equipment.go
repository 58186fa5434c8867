package warehouse

import (
	"errors"
	"fmt"

	"foampro/internal/domain/entities"
)

var (
	ErrEquipmentNotFound      = errors.New("equipment not found")
	ErrEquipmentUnavailable   = errors.New("equipment unavailable")
	ErrInvalidEquipmentStatus = errors.New("invalid equipment status")
)

func ValidStatus(s entities.EquipmentStatus) bool {
	switch s {
	case entities.EquipmentAvailable, entities.EquipmentInUse, entities.EquipmentLost, entities.EquipmentMaintenance:
		return true
	}
	return false
}

// CheckOut assigns a tool to a job. Checking out again for the same job is a
// no-op; any other non-available tool is rejected.
func CheckOut(e entities.EquipmentItem, seen entities.LastSeen) (entities.EquipmentItem, error) {
	switch e.Status {
	case entities.EquipmentAvailable, "":
	case entities.EquipmentInUse:
		if e.LastSeen != nil && e.LastSeen.JobID == seen.JobID {
			return e, nil
		}
		return e, fmt.Errorf("%w: %s is in use", ErrEquipmentUnavailable, e.Name)
	default:
		return e, fmt.Errorf("%w: %s is %s", ErrEquipmentUnavailable, e.Name, e.Status)
	}
	e.Status = entities.EquipmentInUse
	e.LastSeen = &seen
	return e, nil
}

// Return puts a tool back in the warehouse and records where it was last seen.
func Return(e entities.EquipmentItem, seen entities.LastSeen) entities.EquipmentItem {
	if e.Status == entities.EquipmentInUse || e.Status == "" {
		e.Status = entities.EquipmentAvailable
	}
	e.LastSeen = &seen
	return e
}

// SetStatus is the manual override used by the office.
func SetStatus(e entities.EquipmentItem, status entities.EquipmentStatus) (entities.EquipmentItem, error) {
	if !ValidStatus(status) {
		return e, fmt.Errorf("%w: %q", ErrInvalidEquipmentStatus, status)
	}
	e.Status = status
	return e, nil
}
