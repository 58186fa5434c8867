// Package warehouse is the shared stock ledger: consumables, chemical sets,
// equipment and purchase orders. It performs no I/O.
package warehouse

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"foampro/internal/domain/entities"
)

// Chemical set stock lives in the catalog under these reserved ids.
const (
	OpenCellStockID   = "open_cell_sets"
	ClosedCellStockID = "closed_cell_sets"
	setsUnit          = "sets"
)

var (
	ErrItemNotFound    = errors.New("warehouse item not found")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidItem     = errors.New("invalid warehouse item")
)

// Catalog indexes warehouse items by id.
type Catalog struct {
	Items map[string]entities.WarehouseItem
}

// NewCatalog builds a catalog and makes sure both chemical stock lines exist.
func NewCatalog(items []entities.WarehouseItem) Catalog {
	c := Catalog{Items: make(map[string]entities.WarehouseItem, len(items)+2)}
	for _, it := range items {
		c.Items[it.ID] = it
	}
	if _, ok := c.Items[OpenCellStockID]; !ok {
		c.Items[OpenCellStockID] = entities.WarehouseItem{ID: OpenCellStockID, Name: "Open Cell Foam", Unit: setsUnit}
	}
	if _, ok := c.Items[ClosedCellStockID]; !ok {
		c.Items[ClosedCellStockID] = entities.WarehouseItem{ID: ClosedCellStockID, Name: "Closed Cell Foam", Unit: setsUnit}
	}
	return c
}

func (c Catalog) Get(id string) (entities.WarehouseItem, bool) {
	it, ok := c.Items[id]
	return it, ok
}

func (c Catalog) OpenCellSets() float64   { return c.Items[OpenCellStockID].Quantity }
func (c Catalog) ClosedCellSets() float64 { return c.Items[ClosedCellStockID].Quantity }

// Clone returns a catalog that can be modified without touching c.
func (c Catalog) Clone() Catalog {
	out := Catalog{Items: make(map[string]entities.WarehouseItem, len(c.Items))}
	for k, v := range c.Items {
		out.Items[k] = v
	}
	return out
}

// List returns the items ordered by name, then id.
func (c Catalog) List() []entities.WarehouseItem {
	out := make([]entities.WarehouseItem, 0, len(c.Items))
	for _, it := range c.Items {
		out = append(out, it)
	}
	sortItems(out)
	return out
}

func sortItems(items []entities.WarehouseItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}

// ValidateItem checks a catalog line before it is stored.
func ValidateItem(it entities.WarehouseItem) error {
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidItem)
	}
	if !finite(it.Quantity) || !finite(it.UnitCost) || it.UnitCost < 0 || !finite(it.MinLevel) || it.MinLevel < 0 {
		return fmt.Errorf("%w: quantity, unit cost and min level must be valid numbers", ErrInvalidItem)
	}
	return nil
}

// Select copies a catalog line into a job inventory line. The copy does not
// follow later catalog edits.
func Select(c Catalog, itemID string, qty float64) (entities.InventoryItem, error) {
	it, ok := c.Items[itemID]
	if !ok {
		return entities.InventoryItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	if !finite(qty) || qty < 0 {
		return entities.InventoryItem{}, fmt.Errorf("%w: %v", ErrInvalidQuantity, qty)
	}
	return entities.InventoryItem{
		ID:              itemID,
		Name:            it.Name,
		Quantity:        qty,
		Unit:            it.Unit,
		UnitCost:        it.UnitCost,
		WarehouseItemID: itemID,
	}, nil
}

// Adjust adds delta (possibly negative) to an item's stock.
func Adjust(c Catalog, itemID string, delta float64) (Catalog, entities.WarehouseItem, error) {
	it, ok := c.Items[itemID]
	if !ok {
		return c, entities.WarehouseItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	if !finite(delta) {
		return c, entities.WarehouseItem{}, fmt.Errorf("%w: %v", ErrInvalidQuantity, delta)
	}
	out := c.Clone()
	it.Quantity += delta
	out.Items[itemID] = it
	return out, it, nil
}

// LowStock lists items at or below their minimum level. Items without a
// minimum level are never low.
func LowStock(items []entities.WarehouseItem) []entities.WarehouseItem {
	var out []entities.WarehouseItem
	for _, it := range items {
		if it.MinLevel > 0 && it.Quantity <= it.MinLevel {
			out = append(out, it)
		}
	}
	sortItems(out)
	return out
}

// Shortages lists items whose stock went negative.
func Shortages(c Catalog) []entities.WarehouseItem {
	var out []entities.WarehouseItem
	for _, it := range c.Items {
		if it.Quantity < 0 {
			out = append(out, it)
		}
	}
	sortItems(out)
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
