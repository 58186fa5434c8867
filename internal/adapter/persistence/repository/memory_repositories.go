package repository

import (
	"context"
	"fmt"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase/interfaces"
)

type CustomerMemoryRepository struct {
	store *memoryStore[entities.CustomerProfile]
}

var _ interfaces.ICustomerRepository = (*CustomerMemoryRepository)(nil)

func NewCustomerMemoryRepository() *CustomerMemoryRepository {
	return &CustomerMemoryRepository{store: newMemoryStore[entities.CustomerProfile]()}
}

func (r *CustomerMemoryRepository) Create(_ context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error) {
	c.Version = 1
	c.Logs = append([]entities.CommunicationLogEntry(nil), c.Logs...)
	if !r.store.insert(c.ID, c) {
		return entities.CustomerProfile{}, fmt.Errorf("%w: customer %s already exists", interfaces.ErrVersionConflict, c.ID)
	}
	return c, nil
}

func (r *CustomerMemoryRepository) GetByID(_ context.Context, id string) (entities.CustomerProfile, error) {
	c, _ := r.store.get(id)
	c.Logs = append([]entities.CommunicationLogEntry(nil), c.Logs...)
	return c, nil
}

func (r *CustomerMemoryRepository) Update(_ context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error) {
	c.Logs = append([]entities.CommunicationLogEntry(nil), c.Logs...)
	expected := c.Version
	c.Version = expected + 1
	missing := false
	ok := r.store.swap(c.ID, c, func(cur entities.CustomerProfile, exists bool) bool {
		missing = !exists
		return exists && cur.Version == expected
	})
	switch {
	case missing:
		return entities.CustomerProfile{}, nil
	case !ok:
		return entities.CustomerProfile{}, fmt.Errorf("%w: customer %s version %d", interfaces.ErrVersionConflict, c.ID, expected)
	}
	return c, nil
}

func (r *CustomerMemoryRepository) List(_ context.Context) ([]entities.CustomerProfile, error) {
	out := r.store.all(nil)
	sortByKey(out, func(c entities.CustomerProfile) string { return c.Name + c.ID })
	return out, nil
}

type WarehouseMemoryRepository struct {
	store *memoryStore[entities.WarehouseItem]
}

var _ interfaces.IWarehouseRepository = (*WarehouseMemoryRepository)(nil)

func NewWarehouseMemoryRepository() *WarehouseMemoryRepository {
	return &WarehouseMemoryRepository{store: newMemoryStore[entities.WarehouseItem]()}
}

func (r *WarehouseMemoryRepository) ListItems(_ context.Context) ([]entities.WarehouseItem, error) {
	out := r.store.all(nil)
	sortByKey(out, func(it entities.WarehouseItem) string { return it.ID })
	return out, nil
}

func (r *WarehouseMemoryRepository) GetItem(_ context.Context, id string) (entities.WarehouseItem, error) {
	it, _ := r.store.get(id)
	return it, nil
}

func (r *WarehouseMemoryRepository) PutItem(_ context.Context, item entities.WarehouseItem) (entities.WarehouseItem, error) {
	r.store.set(item.ID, item)
	return item, nil
}

func (r *WarehouseMemoryRepository) PutItems(_ context.Context, items []entities.WarehouseItem) error {
	for _, it := range items {
		r.store.set(it.ID, it)
	}
	return nil
}

type EquipmentMemoryRepository struct {
	store *memoryStore[entities.EquipmentItem]
}

var _ interfaces.IEquipmentRepository = (*EquipmentMemoryRepository)(nil)

func NewEquipmentMemoryRepository() *EquipmentMemoryRepository {
	return &EquipmentMemoryRepository{store: newMemoryStore[entities.EquipmentItem]()}
}

func (r *EquipmentMemoryRepository) List(_ context.Context) ([]entities.EquipmentItem, error) {
	out := r.store.all(nil)
	sortByKey(out, func(e entities.EquipmentItem) string { return e.Name + e.ID })
	return out, nil
}

func (r *EquipmentMemoryRepository) GetByID(_ context.Context, id string) (entities.EquipmentItem, error) {
	e, _ := r.store.get(id)
	return e, nil
}

func (r *EquipmentMemoryRepository) Put(_ context.Context, e entities.EquipmentItem) (entities.EquipmentItem, error) {
	r.store.set(e.ID, e)
	return e, nil
}

type PurchaseOrderMemoryRepository struct {
	store *memoryStore[entities.PurchaseOrder]
}

var _ interfaces.IPurchaseOrderRepository = (*PurchaseOrderMemoryRepository)(nil)

func NewPurchaseOrderMemoryRepository() *PurchaseOrderMemoryRepository {
	return &PurchaseOrderMemoryRepository{store: newMemoryStore[entities.PurchaseOrder]()}
}

func (r *PurchaseOrderMemoryRepository) Create(_ context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	if !r.store.insert(po.ID, po) {
		return entities.PurchaseOrder{}, fmt.Errorf("purchase order %s already exists", po.ID)
	}
	return po, nil
}

func (r *PurchaseOrderMemoryRepository) GetByID(_ context.Context, id string) (entities.PurchaseOrder, error) {
	po, _ := r.store.get(id)
	return po, nil
}

func (r *PurchaseOrderMemoryRepository) Update(_ context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	ok := r.store.swap(po.ID, po, func(cur entities.PurchaseOrder, exists bool) bool {
		return exists && cur.Status == entities.PurchaseOrderOrdered
	})
	if !ok {
		return entities.PurchaseOrder{}, interfaces.ErrVersionConflict
	}
	return po, nil
}

func (r *PurchaseOrderMemoryRepository) List(_ context.Context) ([]entities.PurchaseOrder, error) {
	out := r.store.all(nil)
	sortByKey(out, func(po entities.PurchaseOrder) string { return po.Date + po.ID })
	return out, nil
}

type MaterialUsageMemoryRepository struct {
	store *memoryStore[entities.MaterialUsageLogEntry]
}

var _ interfaces.IMaterialUsageRepository = (*MaterialUsageMemoryRepository)(nil)

func NewMaterialUsageMemoryRepository() *MaterialUsageMemoryRepository {
	return &MaterialUsageMemoryRepository{store: newMemoryStore[entities.MaterialUsageLogEntry]()}
}

func (r *MaterialUsageMemoryRepository) Append(_ context.Context, entries []entities.MaterialUsageLogEntry) error {
	for _, e := range entries {
		r.store.set(e.ID, e)
	}
	return nil
}

func (r *MaterialUsageMemoryRepository) List(_ context.Context) ([]entities.MaterialUsageLogEntry, error) {
	out := r.store.all(nil)
	sortByKey(out, func(e entities.MaterialUsageLogEntry) string { return e.Date + e.ID })
	return out, nil
}

func (r *MaterialUsageMemoryRepository) ListByJobID(_ context.Context, jobID string) ([]entities.MaterialUsageLogEntry, error) {
	out := r.store.all(func(e entities.MaterialUsageLogEntry) bool { return e.JobID == jobID })
	sortByKey(out, func(e entities.MaterialUsageLogEntry) string { return e.Date + e.ID })
	return out, nil
}

type BillingPaymentMemoryRepository struct {
	store *memoryStore[entities.BillingPayment]
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentMemoryRepository)(nil)

func NewBillingPaymentMemoryRepository() *BillingPaymentMemoryRepository {
	return &BillingPaymentMemoryRepository{store: newMemoryStore[entities.BillingPayment]()}
}

func (r *BillingPaymentMemoryRepository) Create(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	if !r.store.insert(p.ID, p) {
		return entities.BillingPayment{}, fmt.Errorf("payment %s already exists", p.ID)
	}
	return p, nil
}

func (r *BillingPaymentMemoryRepository) GetByID(_ context.Context, id string) (entities.BillingPayment, error) {
	p, _ := r.store.get(id)
	return p, nil
}

func (r *BillingPaymentMemoryRepository) ListByEstimateID(_ context.Context, estimateID string) ([]entities.BillingPayment, error) {
	out := r.store.all(func(p entities.BillingPayment) bool { return p.EstimateID == estimateID })
	sortByKey(out, func(p entities.BillingPayment) string { return p.Date.UTC().Format("20060102150405.000000000") + p.ID })
	return out, nil
}
