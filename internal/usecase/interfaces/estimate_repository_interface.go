package interfaces

import (
	"context"

	"foampro/internal/domain/entities"
)

// IEstimateRepository persists estimate records with optimistic concurrency.
//
//   - Create stores version 1 and fails if the id exists.
//   - GetByID returns a zero record when the id is unknown.
//   - Update writes only if the stored version equals rec.Version and stores
//     rec.Version+1; otherwise it returns ErrVersionConflict.
type IEstimateRepository interface {
	Create(ctx context.Context, rec entities.EstimateRecord) (entities.EstimateRecord, error)
	GetByID(ctx context.Context, id string) (entities.EstimateRecord, error)
	Update(ctx context.Context, rec entities.EstimateRecord) (entities.EstimateRecord, error)
	List(ctx context.Context) ([]entities.EstimateRecord, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.EstimateRecord, error)
}
