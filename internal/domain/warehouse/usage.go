package warehouse

import (
	"sort"

	"foampro/internal/domain/entities"
)

// Usage is the material a job has drawn from the warehouse.
type Usage struct {
	OpenCellSets   float64
	ClosedCellSets float64
	Inventory      []entities.InventoryItem
}

// UsageFromActuals returns the zero Usage for nil actuals.
func UsageFromActuals(a *entities.Actuals) Usage {
	if a == nil {
		return Usage{}
	}
	return Usage{OpenCellSets: a.OpenCellSets, ClosedCellSets: a.ClosedCellSets, Inventory: a.Inventory}
}

// JobRef identifies the job and person behind a stock movement.
type JobRef struct {
	JobID        string
	CustomerName string
	LoggedBy     string
	Date         string
}

// Consumption is the outcome of Consume.
type Consumption struct {
	Catalog Catalog
	Changed []entities.WarehouseItem
	Log     []entities.MaterialUsageLogEntry
}

// Consume deducts the difference between the previously reported usage and
// the new one, so resubmitting the same actuals never deducts twice. Lines
// that are not linked to a catalog item are skipped. Stock may go negative;
// see Shortages.
func Consume(c Catalog, prev, next Usage, ref JobRef, newID func() string) Consumption {
	deltas := map[string]float64{
		OpenCellStockID:   next.OpenCellSets - prev.OpenCellSets,
		ClosedCellStockID: next.ClosedCellSets - prev.ClosedCellSets,
	}
	for id, q := range linkedQuantities(c, next.Inventory) {
		deltas[id] += q
	}
	for id, q := range linkedQuantities(c, prev.Inventory) {
		deltas[id] -= q
	}

	ids := make([]string, 0, len(deltas))
	for id, d := range deltas {
		if d != 0 && finite(d) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := Consumption{Catalog: c.Clone()}
	for _, id := range ids {
		it, ok := out.Catalog.Items[id]
		if !ok {
			continue
		}
		d := deltas[id]
		it.Quantity -= d
		out.Catalog.Items[id] = it
		out.Changed = append(out.Changed, it)
		out.Log = append(out.Log, entities.MaterialUsageLogEntry{
			ID:           newID(),
			Date:         ref.Date,
			JobID:        ref.JobID,
			CustomerName: ref.CustomerName,
			MaterialName: it.Name,
			Quantity:     d,
			Unit:         it.Unit,
			LoggedBy:     ref.LoggedBy,
		})
	}
	return out
}

func linkedQuantities(c Catalog, lines []entities.InventoryItem) map[string]float64 {
	out := make(map[string]float64, len(lines))
	for _, l := range lines {
		id := l.WarehouseItemID
		if id == "" {
			id = l.ID
		}
		if _, ok := c.Items[id]; !ok || !finite(l.Quantity) {
			continue
		}
		out[id] += l.Quantity
	}
	return out
}
