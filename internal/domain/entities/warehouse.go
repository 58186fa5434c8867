package entities

// InventoryItem is a job-local line copied from a WarehouseItem. It is not
// linked back to the catalog after the copy.
type InventoryItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unitCost,omitempty"`
	// WarehouseItemID is the catalog line the item was copied from, if any.
	WarehouseItemID string `json:"warehouseItemId,omitempty"`
}

// WarehouseItem is a consumable tracked in the shared catalog.
type WarehouseItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unitCost,omitempty"`
	MinLevel float64 `json:"minLevel,omitempty"`
}

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "Available"
	EquipmentInUse       EquipmentStatus = "In Use"
	EquipmentLost        EquipmentStatus = "Lost"
	EquipmentMaintenance EquipmentStatus = "Maintenance"
)

// LastSeen is a lookup-only back-reference to the job that last used a tool.
type LastSeen struct {
	JobID        string `json:"jobId"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	CrewMember   string `json:"crewMember"`
}

type EquipmentItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Status   EquipmentStatus `json:"status"`
	LastSeen *LastSeen       `json:"lastSeen,omitempty"`
}

type PurchaseOrderStatus string

const (
	PurchaseOrderOrdered  PurchaseOrderStatus = "Ordered"
	PurchaseOrderReceived PurchaseOrderStatus = "Received"
)

type PurchaseLineType string

const (
	PurchaseLineOpenCell   PurchaseLineType = "open_cell"
	PurchaseLineClosedCell PurchaseLineType = "closed_cell"
	PurchaseLineInventory  PurchaseLineType = "inventory"
)

type PurchaseOrderLine struct {
	Description string           `json:"description"`
	Quantity    float64          `json:"quantity"`
	UnitCost    float64          `json:"unitCost"`
	Total       float64          `json:"total"`
	Type        PurchaseLineType `json:"type"`
	InventoryID string           `json:"inventoryId,omitempty"`
}

type PurchaseOrder struct {
	ID         string              `json:"id"`
	Date       string              `json:"date"`
	VendorName string              `json:"vendorName"`
	Status     PurchaseOrderStatus `json:"status"`
	Items      []PurchaseOrderLine `json:"items"`
	TotalCost  float64             `json:"totalCost"`
	Notes      string              `json:"notes,omitempty"`
}

// MaterialUsageLogEntry records a stock deduction caused by a job.
type MaterialUsageLogEntry struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	JobID        string  `json:"jobId"`
	CustomerName string  `json:"customerName"`
	MaterialName string  `json:"materialName"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	LoggedBy     string  `json:"loggedBy"`
}
