package warehouse

import (
	"errors"
	"fmt"
	"math"

	"foampro/internal/domain/entities"
)

var (
	ErrAlreadyReceived = errors.New("purchase order already received")
	ErrEmptyOrder      = errors.New("purchase order has no lines")
)

// PlanPurchase lists what must be bought to cover a job's planned materials
// after netting against stock. Chemical sets are rounded up to whole sets.
func PlanPurchase(m entities.Materials, c Catalog, costs entities.ChemicalCosts) []entities.PurchaseOrderLine {
	var lines []entities.PurchaseOrderLine

	chem := []struct {
		id   string
		need float64
		cost float64
		typ  entities.PurchaseLineType
	}{
		{OpenCellStockID, m.OpenCellSets, costs.OpenCell, entities.PurchaseLineOpenCell},
		{ClosedCellStockID, m.ClosedCellSets, costs.ClosedCell, entities.PurchaseLineClosedCell},
	}
	for _, ch := range chem {
		short := ch.need - math.Max(c.Items[ch.id].Quantity, 0)
		if !finite(short) || short <= 0 {
			continue
		}
		qty := math.Ceil(short)
		lines = append(lines, entities.PurchaseOrderLine{
			Description: c.Items[ch.id].Name,
			Quantity:    qty,
			UnitCost:    ch.cost,
			Total:       qty * ch.cost,
			Type:        ch.typ,
			InventoryID: ch.id,
		})
	}

	need := linkedQuantities(c, m.Inventory)
	seen := map[string]bool{}
	for _, l := range m.Inventory {
		id := l.WarehouseItemID
		if id == "" {
			id = l.ID
		}
		if _, ok := need[id]; !ok || seen[id] {
			continue
		}
		seen[id] = true
		it := c.Items[id]
		short := need[id] - math.Max(it.Quantity, 0)
		if short <= 0 {
			continue
		}
		qty := math.Ceil(short)
		lines = append(lines, entities.PurchaseOrderLine{
			Description: it.Name,
			Quantity:    qty,
			UnitCost:    it.UnitCost,
			Total:       qty * it.UnitCost,
			Type:        entities.PurchaseLineInventory,
			InventoryID: id,
		})
	}
	return lines
}

// OrderTotal sums line totals.
func OrderTotal(lines []entities.PurchaseOrderLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Total
	}
	return total
}

// Receive books an ordered purchase into stock. It can only happen once.
func Receive(c Catalog, po entities.PurchaseOrder) (Catalog, entities.PurchaseOrder, []entities.WarehouseItem, error) {
	if po.Status == entities.PurchaseOrderReceived {
		return c, po, nil, fmt.Errorf("%w: %s", ErrAlreadyReceived, po.ID)
	}
	out := c.Clone()
	touched := map[string]bool{}
	var order []string
	for _, l := range po.Items {
		id := l.InventoryID
		switch l.Type {
		case entities.PurchaseLineOpenCell:
			id = OpenCellStockID
		case entities.PurchaseLineClosedCell:
			id = ClosedCellStockID
		}
		it, ok := out.Items[id]
		if id == "" || !ok || !finite(l.Quantity) {
			continue
		}
		it.Quantity += l.Quantity
		out.Items[id] = it
		if !touched[id] {
			touched[id] = true
			order = append(order, id)
		}
	}
	changed := make([]entities.WarehouseItem, 0, len(order))
	for _, id := range order {
		changed = append(changed, out.Items[id])
	}
	po.Status = entities.PurchaseOrderReceived
	return out, po, changed, nil
}
