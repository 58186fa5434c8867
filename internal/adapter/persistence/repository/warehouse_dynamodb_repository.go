package repository

import (
	"context"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase/interfaces"
)

const (
	defaultWarehouseTableName      = "warehouse_items"
	defaultEquipmentTableName      = "equipment"
	defaultPurchaseOrdersTableName = "purchase_orders"
	defaultUsageLogTableName       = "material_usage_log"
	usageLogJobIDIndex             = "jobId-index"
)

// WarehouseDynamoRepository persists consumables and chemical stock (PK: id).
type WarehouseDynamoRepository struct {
	table dynamoTable[entities.WarehouseItem]
}

var _ interfaces.IWarehouseRepository = (*WarehouseDynamoRepository)(nil)

func NewWarehouseDynamoRepository(api DynamoAPI, table string) *WarehouseDynamoRepository {
	return &WarehouseDynamoRepository{
		table: dynamoTable[entities.WarehouseItem]{api: api, name: tableName(table, "WAREHOUSE_TABLE", defaultWarehouseTableName)},
	}
}

func (r *WarehouseDynamoRepository) ListItems(ctx context.Context) ([]entities.WarehouseItem, error) {
	return r.table.scan(ctx)
}

func (r *WarehouseDynamoRepository) GetItem(ctx context.Context, id string) (entities.WarehouseItem, error) {
	it, _, err := r.table.get(ctx, id)
	return it, err
}

func (r *WarehouseDynamoRepository) PutItem(ctx context.Context, item entities.WarehouseItem) (entities.WarehouseItem, error) {
	if err := r.table.put(ctx, item, "", nil, nil); err != nil {
		return entities.WarehouseItem{}, err
	}
	return item, nil
}

func (r *WarehouseDynamoRepository) PutItems(ctx context.Context, items []entities.WarehouseItem) error {
	return r.table.putBatch(ctx, items)
}

// EquipmentDynamoRepository persists tracked tools (PK: id).
type EquipmentDynamoRepository struct {
	table dynamoTable[entities.EquipmentItem]
}

var _ interfaces.IEquipmentRepository = (*EquipmentDynamoRepository)(nil)

func NewEquipmentDynamoRepository(api DynamoAPI, table string) *EquipmentDynamoRepository {
	return &EquipmentDynamoRepository{
		table: dynamoTable[entities.EquipmentItem]{api: api, name: tableName(table, "EQUIPMENT_TABLE", defaultEquipmentTableName)},
	}
}

func (r *EquipmentDynamoRepository) List(ctx context.Context) ([]entities.EquipmentItem, error) {
	out, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	sortByKey(out, func(e entities.EquipmentItem) string { return e.Name + e.ID })
	return out, nil
}

func (r *EquipmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.EquipmentItem, error) {
	e, _, err := r.table.get(ctx, id)
	return e, err
}

func (r *EquipmentDynamoRepository) Put(ctx context.Context, e entities.EquipmentItem) (entities.EquipmentItem, error) {
	if err := r.table.put(ctx, e, "", nil, nil); err != nil {
		return entities.EquipmentItem{}, err
	}
	return e, nil
}

// PurchaseOrderDynamoRepository persists purchase orders (PK: id).
type PurchaseOrderDynamoRepository struct {
	table dynamoTable[entities.PurchaseOrder]
}

var _ interfaces.IPurchaseOrderRepository = (*PurchaseOrderDynamoRepository)(nil)

func NewPurchaseOrderDynamoRepository(api DynamoAPI, table string) *PurchaseOrderDynamoRepository {
	return &PurchaseOrderDynamoRepository{
		table: dynamoTable[entities.PurchaseOrder]{api: api, name: tableName(table, "PURCHASE_ORDERS_TABLE", defaultPurchaseOrdersTableName)},
	}
}

func (r *PurchaseOrderDynamoRepository) Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	if err := r.table.create(ctx, po); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return po, nil
}

func (r *PurchaseOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	po, _, err := r.table.get(ctx, id)
	return po, err
}

// Update only succeeds while the stored order is still Ordered, so a
// purchase order is booked into stock at most once.
func (r *PurchaseOrderDynamoRepository) Update(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	err := r.table.put(ctx, po, "#status = :ordered",
		map[string]string{"#status": "status"},
		stringValues(":ordered", string(entities.PurchaseOrderOrdered)),
	)
	if err != nil {
		if isConditionFailed(err) {
			return entities.PurchaseOrder{}, interfaces.ErrVersionConflict
		}
		return entities.PurchaseOrder{}, err
	}
	return po, nil
}

func (r *PurchaseOrderDynamoRepository) List(ctx context.Context) ([]entities.PurchaseOrder, error) {
	out, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	sortByKey(out, func(po entities.PurchaseOrder) string { return po.Date + po.ID })
	return out, nil
}

// MaterialUsageDynamoRepository is the usage ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: jobId-index (PK: jobId)
type MaterialUsageDynamoRepository struct {
	table dynamoTable[entities.MaterialUsageLogEntry]
}

var _ interfaces.IMaterialUsageRepository = (*MaterialUsageDynamoRepository)(nil)

func NewMaterialUsageDynamoRepository(api DynamoAPI, table string) *MaterialUsageDynamoRepository {
	return &MaterialUsageDynamoRepository{
		table: dynamoTable[entities.MaterialUsageLogEntry]{api: api, name: tableName(table, "USAGE_LOG_TABLE", defaultUsageLogTableName)},
	}
}

func (r *MaterialUsageDynamoRepository) Append(ctx context.Context, entries []entities.MaterialUsageLogEntry) error {
	return r.table.putBatch(ctx, entries)
}

func (r *MaterialUsageDynamoRepository) List(ctx context.Context) ([]entities.MaterialUsageLogEntry, error) {
	out, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	sortByKey(out, func(e entities.MaterialUsageLogEntry) string { return e.Date + e.ID })
	return out, nil
}

func (r *MaterialUsageDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.MaterialUsageLogEntry, error) {
	out, err := r.table.query(ctx, usageLogJobIDIndex, "jobId", jobID)
	if err != nil {
		return nil, err
	}
	sortByKey(out, func(e entities.MaterialUsageLogEntry) string { return e.Date + e.ID })
	return out, nil
}
