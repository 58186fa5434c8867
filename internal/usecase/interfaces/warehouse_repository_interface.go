package interfaces

import (
	"context"

	"foampro/internal/domain/entities"
)

type IWarehouseRepository interface {
	ListItems(ctx context.Context) ([]entities.WarehouseItem, error)
	GetItem(ctx context.Context, id string) (entities.WarehouseItem, error)
	PutItem(ctx context.Context, item entities.WarehouseItem) (entities.WarehouseItem, error)
	PutItems(ctx context.Context, items []entities.WarehouseItem) error
}

type IEquipmentRepository interface {
	List(ctx context.Context) ([]entities.EquipmentItem, error)
	GetByID(ctx context.Context, id string) (entities.EquipmentItem, error)
	Put(ctx context.Context, e entities.EquipmentItem) (entities.EquipmentItem, error)
}

type IPurchaseOrderRepository interface {
	Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error)
	Update(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	List(ctx context.Context) ([]entities.PurchaseOrder, error)
}

// IMaterialUsageRepository is the append-only stock movement ledger.
type IMaterialUsageRepository interface {
	Append(ctx context.Context, entries []entities.MaterialUsageLogEntry) error
	List(ctx context.Context) ([]entities.MaterialUsageLogEntry, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.MaterialUsageLogEntry, error)
}
