package interfaces

import (
	"context"

	"foampro/internal/domain/entities"
)

// ICustomerRepository persists CRM customers. GetByID returns a zero value
// for unknown ids. Update is version-checked like estimates and returns
// ErrVersionConflict when the stored customer moved on.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error)
	GetByID(ctx context.Context, id string) (entities.CustomerProfile, error)
	Update(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error)
	List(ctx context.Context) ([]entities.CustomerProfile, error)
}
