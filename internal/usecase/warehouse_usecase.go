package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foampro/internal/domain/entities"
	"foampro/internal/domain/lifecycle"
	"foampro/internal/domain/warehouse"
	"foampro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidItemID          = errors.New("invalid warehouse item id")
	ErrInvalidEquipmentID     = errors.New("invalid equipment id")
	ErrInvalidPurchaseOrderID = errors.New("invalid purchase order id")
	ErrPurchaseOrderNotFound  = errors.New("purchase order not found")
	ErrInvalidVendor          = errors.New("vendor name required")
)

// PurchasePlan is the suggested order for one job.
type PurchasePlan struct {
	EstimateID string                       `json:"estimateId"`
	Lines      []entities.PurchaseOrderLine `json:"lines"`
	Total      float64                      `json:"total"`
}

type ReceiveResult struct {
	Order   entities.PurchaseOrder   `json:"order"`
	Changed []entities.WarehouseItem `json:"changed"`
}

// IWarehouseUseCase manages the shared stock ledger: consumables, tools and
// purchase orders.
type IWarehouseUseCase interface {
	ListItems(ctx context.Context) ([]entities.WarehouseItem, error)
	SaveItem(ctx context.Context, item entities.WarehouseItem) (entities.WarehouseItem, error)
	AdjustStock(ctx context.Context, id string, delta float64) (entities.WarehouseItem, error)
	LowStock(ctx context.Context) ([]entities.WarehouseItem, error)
	ListEquipment(ctx context.Context) ([]entities.EquipmentItem, error)
	SaveEquipment(ctx context.Context, e entities.EquipmentItem) (entities.EquipmentItem, error)
	SetEquipmentStatus(ctx context.Context, id string, status entities.EquipmentStatus) (entities.EquipmentItem, error)
	PlanPurchase(ctx context.Context, estimateID string) (PurchasePlan, error)
	CreatePurchaseOrder(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context) ([]entities.PurchaseOrder, error)
	ReceivePurchaseOrder(ctx context.Context, id string) (ReceiveResult, error)
	UsageLog(ctx context.Context, jobID string) ([]entities.MaterialUsageLogEntry, error)
}

// WarehouseStores groups the ledger repositories.
type WarehouseStores struct {
	Items     interfaces.IWarehouseRepository
	Equipment interfaces.IEquipmentRepository
	Orders    interfaces.IPurchaseOrderRepository
	Usage     interfaces.IMaterialUsageRepository
	Estimates interfaces.IEstimateRepository
}

type WarehouseUseCase struct {
	stores WarehouseStores
	costs  entities.ChemicalCosts
	now    func() time.Time
	newID  func() string
	log    *slog.Logger
}

var _ IWarehouseUseCase = (*WarehouseUseCase)(nil)

// NewWarehouseUseCase builds the use case. costs prices chemical purchase
// lines when an estimate carries no costs of its own.
func NewWarehouseUseCase(stores WarehouseStores, costs entities.ChemicalCosts) *WarehouseUseCase {
	return &WarehouseUseCase{
		stores: stores,
		costs:  costs,
		now:    time.Now,
		newID:  uuid.NewString,
		log:    slog.Default().With("component", "warehouse"),
	}
}

func (u *WarehouseUseCase) catalog(ctx context.Context) (warehouse.Catalog, error) {
	items, err := u.stores.Items.ListItems(ctx)
	if err != nil {
		return warehouse.Catalog{}, err
	}
	return warehouse.NewCatalog(items), nil
}

// ListItems includes the two chemical set lines even before any stock was
// booked.
func (u *WarehouseUseCase) ListItems(ctx context.Context) ([]entities.WarehouseItem, error) {
	c, err := u.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.List(), nil
}

// SaveItem creates the item when it has no id, otherwise replaces it.
func (u *WarehouseUseCase) SaveItem(ctx context.Context, item entities.WarehouseItem) (entities.WarehouseItem, error) {
	item.ID = strings.TrimSpace(item.ID)
	item.Name = strings.TrimSpace(item.Name)
	if err := warehouse.ValidateItem(item); err != nil {
		return entities.WarehouseItem{}, err
	}
	if item.ID == "" {
		item.ID = u.newID()
	}
	saved, err := u.stores.Items.PutItem(ctx, item)
	if err != nil {
		return entities.WarehouseItem{}, err
	}
	u.log.Info("warehouse item saved", "item_id", saved.ID, "quantity", saved.Quantity)
	return saved, nil
}

func (u *WarehouseUseCase) AdjustStock(ctx context.Context, id string, delta float64) (entities.WarehouseItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WarehouseItem{}, ErrInvalidItemID
	}
	c, err := u.catalog(ctx)
	if err != nil {
		return entities.WarehouseItem{}, err
	}
	_, it, err := warehouse.Adjust(c, id, delta)
	if err != nil {
		return entities.WarehouseItem{}, err
	}
	return u.stores.Items.PutItem(ctx, it)
}

func (u *WarehouseUseCase) LowStock(ctx context.Context) ([]entities.WarehouseItem, error) {
	items, err := u.stores.Items.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return warehouse.LowStock(items), nil
}

func (u *WarehouseUseCase) ListEquipment(ctx context.Context) ([]entities.EquipmentItem, error) {
	return u.stores.Equipment.List(ctx)
}

// SaveEquipment creates or replaces a tool. New tools start Available.
func (u *WarehouseUseCase) SaveEquipment(ctx context.Context, e entities.EquipmentItem) (entities.EquipmentItem, error) {
	e.ID = strings.TrimSpace(e.ID)
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return entities.EquipmentItem{}, fmt.Errorf("%w: name required", warehouse.ErrInvalidItem)
	}
	if e.Status == "" {
		e.Status = entities.EquipmentAvailable
	}
	if !warehouse.ValidStatus(e.Status) {
		return entities.EquipmentItem{}, fmt.Errorf("%w: %q", warehouse.ErrInvalidEquipmentStatus, e.Status)
	}
	if e.ID == "" {
		e.ID = u.newID()
	}
	return u.stores.Equipment.Put(ctx, e)
}

func (u *WarehouseUseCase) SetEquipmentStatus(ctx context.Context, id string, status entities.EquipmentStatus) (entities.EquipmentItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EquipmentItem{}, ErrInvalidEquipmentID
	}
	e, err := u.stores.Equipment.GetByID(ctx, id)
	if err != nil {
		return entities.EquipmentItem{}, err
	}
	if e.ID == "" {
		return entities.EquipmentItem{}, warehouse.ErrEquipmentNotFound
	}
	next, err := warehouse.SetStatus(e, status)
	if err != nil {
		return entities.EquipmentItem{}, err
	}
	u.log.Info("equipment status changed", "equipment_id", id, "from", e.Status, "to", status)
	return u.stores.Equipment.Put(ctx, next)
}

// PlanPurchase nets the job's planned materials against current stock.
func (u *WarehouseUseCase) PlanPurchase(ctx context.Context, estimateID string) (PurchasePlan, error) {
	rec, err := loadEstimate(ctx, u.stores.Estimates, estimateID)
	if err != nil {
		return PurchasePlan{}, err
	}
	c, err := u.catalog(ctx)
	if err != nil {
		return PurchasePlan{}, err
	}
	costs := rec.Costs
	if costs.OpenCell == 0 && costs.ClosedCell == 0 {
		costs = u.costs
	}
	lines := warehouse.PlanPurchase(rec.Materials, c, costs)
	return PurchasePlan{EstimateID: rec.ID, Lines: lines, Total: warehouse.OrderTotal(lines)}, nil
}

func (u *WarehouseUseCase) CreatePurchaseOrder(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	po.VendorName = strings.TrimSpace(po.VendorName)
	if po.VendorName == "" {
		return entities.PurchaseOrder{}, ErrInvalidVendor
	}
	if len(po.Items) == 0 {
		return entities.PurchaseOrder{}, warehouse.ErrEmptyOrder
	}
	for i, l := range po.Items {
		if l.Quantity <= 0 || l.UnitCost < 0 {
			return entities.PurchaseOrder{}, fmt.Errorf("%w: line %d", lifecycle.ErrValidation, i+1)
		}
		po.Items[i].Total = l.Quantity * l.UnitCost
	}
	po.ID = u.newID()
	po.Status = entities.PurchaseOrderOrdered
	if po.Date == "" {
		po.Date = u.now().UTC().Format("2006-01-02")
	}
	po.TotalCost = warehouse.OrderTotal(po.Items)

	saved, err := u.stores.Orders.Create(ctx, po)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	u.log.Info("purchase order created", "purchase_order_id", saved.ID, "vendor", saved.VendorName, "total", saved.TotalCost)
	return saved, nil
}

func (u *WarehouseUseCase) ListPurchaseOrders(ctx context.Context) ([]entities.PurchaseOrder, error) {
	return u.stores.Orders.List(ctx)
}

// ReceivePurchaseOrder books an order into stock. The order is marked
// received first so a concurrent receive cannot book it twice.
func (u *WarehouseUseCase) ReceivePurchaseOrder(ctx context.Context, id string) (ReceiveResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ReceiveResult{}, ErrInvalidPurchaseOrderID
	}
	po, err := u.stores.Orders.GetByID(ctx, id)
	if err != nil {
		return ReceiveResult{}, err
	}
	if po.ID == "" {
		return ReceiveResult{}, ErrPurchaseOrderNotFound
	}
	c, err := u.catalog(ctx)
	if err != nil {
		return ReceiveResult{}, err
	}
	_, received, changed, err := warehouse.Receive(c, po)
	if err != nil {
		return ReceiveResult{}, fmt.Errorf("%w: %w", lifecycle.ErrPrecondition, err)
	}
	if _, err := u.stores.Orders.Update(ctx, received); err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return ReceiveResult{}, fmt.Errorf("%w: %w", lifecycle.ErrPrecondition, warehouse.ErrAlreadyReceived)
		}
		return ReceiveResult{}, err
	}
	if err := u.stores.Items.PutItems(ctx, changed); err != nil {
		return ReceiveResult{}, err
	}
	u.log.Info("purchase order received", "purchase_order_id", id, "lines", len(changed))
	return ReceiveResult{Order: received, Changed: changed}, nil
}

// UsageLog returns the stock movement ledger, optionally for one job.
func (u *WarehouseUseCase) UsageLog(ctx context.Context, jobID string) ([]entities.MaterialUsageLogEntry, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return u.stores.Usage.List(ctx)
	}
	return u.stores.Usage.ListByJobID(ctx, jobID)
}
