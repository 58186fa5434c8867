package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"foampro/internal/domain/entities"
	"foampro/internal/domain/lifecycle"
	"foampro/internal/usecase/interfaces"
)

// SyncReport summarizes one pull from the hosted backend.
type SyncReport struct {
	Imported  int           `json:"imported"`
	Updated   int           `json:"updated"`
	Unchanged int           `json:"unchanged"`
	Conflicts int           `json:"conflicts"`
	Customers int           `json:"customersImported"`
	Items     int           `json:"itemsImported"`
	Equipment int           `json:"equipmentImported"`
	Elapsed   time.Duration `json:"elapsed"`
}

// ISyncUseCase reconciles this service with the spreadsheet backend, which
// the crew app and older clients still write to.
type ISyncUseCase interface {
	SyncDown(ctx context.Context) (SyncReport, error)
	PushEstimate(ctx context.Context, id string) error
}

type SyncUseCase struct {
	backend   interfaces.IFieldBackend
	estimates interfaces.IEstimateRepository
	customers interfaces.ICustomerRepository
	warehouse interfaces.IWarehouseRepository
	equipment interfaces.IEquipmentRepository
	log       *slog.Logger
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(backend interfaces.IFieldBackend, estimates interfaces.IEstimateRepository, customers interfaces.ICustomerRepository, warehouse interfaces.IWarehouseRepository, equipment interfaces.IEquipmentRepository) *SyncUseCase {
	return &SyncUseCase{
		backend:   backend,
		estimates: estimates,
		customers: customers,
		warehouse: warehouse,
		equipment: equipment,
		log:       slog.Default().With("component", "sync"),
	}
}

// SyncDown fetches everything and merges estimates with lifecycle.Merge, so
// neither side's status or execution progress is lost. Catalog entities are
// only imported when missing locally.
func (u *SyncUseCase) SyncDown(ctx context.Context) (SyncReport, error) {
	start := time.Now()
	var report SyncReport
	if u.backend == nil {
		return report, external("script backend", interfaces.ErrCollaboratorNotConfigured)
	}
	snap, err := u.backend.FetchAll(ctx)
	if err != nil {
		u.log.Warn("fetch failed", "err", err)
		return report, external("script backend", err)
	}

	for _, remote := range snap.Estimates {
		if remote.ID == "" {
			continue
		}
		local, err := u.estimates.GetByID(ctx, remote.ID)
		if err != nil {
			return report, err
		}
		if local.ID == "" {
			if _, err := u.estimates.Create(ctx, remote); err != nil {
				return report, err
			}
			report.Imported++
			continue
		}

		merged, conflict := lifecycle.Merge(local, remote)
		if conflict {
			report.Conflicts++
			u.log.Info("merge conflict resolved", "estimate_id", local.ID, "local_status", local.Status, "remote_status", remote.Status)
		}
		merged.Version = local.Version
		if sameRecord(merged, local) {
			report.Unchanged++
			continue
		}
		if _, err := u.estimates.Update(ctx, merged); err != nil {
			if errors.Is(err, interfaces.ErrVersionConflict) {
				// Changed locally while syncing; the next pull merges again.
				report.Conflicts++
				continue
			}
			return report, err
		}
		report.Updated++
	}

	if u.customers != nil {
		for _, c := range snap.Customers {
			if c.ID == "" {
				continue
			}
			existing, err := u.customers.GetByID(ctx, c.ID)
			if err != nil {
				return report, err
			}
			if existing.ID != "" {
				continue
			}
			if _, err := u.customers.Create(ctx, c); err != nil {
				return report, err
			}
			report.Customers++
		}
	}
	if u.warehouse != nil {
		for _, it := range snap.Warehouse {
			if it.ID == "" {
				continue
			}
			existing, err := u.warehouse.GetItem(ctx, it.ID)
			if err != nil {
				return report, err
			}
			if existing.ID != "" {
				continue
			}
			if _, err := u.warehouse.PutItem(ctx, it); err != nil {
				return report, err
			}
			report.Items++
		}
	}
	if u.equipment != nil {
		for _, e := range snap.Equipment {
			if e.ID == "" {
				continue
			}
			existing, err := u.equipment.GetByID(ctx, e.ID)
			if err != nil {
				return report, err
			}
			if existing.ID != "" {
				continue
			}
			if _, err := u.equipment.Put(ctx, e); err != nil {
				return report, err
			}
			report.Equipment++
		}
	}

	report.Elapsed = time.Since(start)
	u.log.Info("sync down finished", "imported", report.Imported, "updated", report.Updated, "conflicts", report.Conflicts, "elapsed", report.Elapsed)
	return report, nil
}

// sameRecord compares the stored representation, so nil and empty slices
// count as equal.
func sameRecord(a, b entities.EstimateRecord) bool {
	ab, errA := json.Marshal(a)
	bb, errB := json.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(ab, bb)
}

// PushEstimate re-sends the stored record, e.g. after a failed mirror.
func (u *SyncUseCase) PushEstimate(ctx context.Context, id string) error {
	rec, err := loadEstimate(ctx, u.estimates, id)
	if err != nil {
		return err
	}
	if u.backend == nil {
		return external("script backend", interfaces.ErrCollaboratorNotConfigured)
	}
	return external("script backend", u.backend.SaveEstimate(ctx, rec))
}
