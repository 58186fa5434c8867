package request

import "foampro/internal/domain/entities"

type WarehouseItemRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unitCost"`
	MinLevel float64 `json:"minLevel"`
}

func (r WarehouseItemRequest) Item() entities.WarehouseItem {
	return entities.WarehouseItem{ID: r.ID, Name: r.Name, Quantity: r.Quantity, Unit: r.Unit, UnitCost: r.UnitCost, MinLevel: r.MinLevel}
}

// AdjustStockRequest carries a signed delta; a pointer tells zero from absent.
type AdjustStockRequest struct {
	Delta *float64 `json:"delta" binding:"required"`
}

type EquipmentRequest struct {
	ID     string                   `json:"id"`
	Name   string                   `json:"name" binding:"required"`
	Status entities.EquipmentStatus `json:"status"`
}

func (r EquipmentRequest) Equipment() entities.EquipmentItem {
	return entities.EquipmentItem{ID: r.ID, Name: r.Name, Status: r.Status}
}

type EquipmentStatusRequest struct {
	Status entities.EquipmentStatus `json:"status" binding:"required"`
}

type PurchaseOrderRequest struct {
	VendorName string                       `json:"vendorName" binding:"required"`
	Date       string                       `json:"date"`
	Items      []entities.PurchaseOrderLine `json:"items"`
	Notes      string                       `json:"notes"`
}

func (r PurchaseOrderRequest) Order() entities.PurchaseOrder {
	return entities.PurchaseOrder{VendorName: r.VendorName, Date: r.Date, Items: r.Items, Notes: r.Notes}
}
