package lifecycle

import (
	"foampro/internal/domain/entities"
	"foampro/internal/domain/estimator"
)

// Reconcile builds the financial snapshot of a record from the unit costs
// captured at estimate time. Crew actuals are used when present, otherwise
// the planned materials and man-hours. Discrepancies are only reported
// against actuals and never block anything.
func Reconcile(rec entities.EstimateRecord, tolerance float64) (entities.FinancialSnapshot, []entities.DiscrepancyItem, error) {
	if rec.Status == entities.EstimateStatusPaid {
		return entities.FinancialSnapshot{}, nil, ErrFinancialsLocked
	}

	oc, cc := rec.Materials.OpenCellSets, rec.Materials.ClosedCellSets
	hours := rec.Expenses.ManHours
	inventory := rec.Materials.Inventory
	var disc []entities.DiscrepancyItem
	if a := rec.Actuals; a != nil {
		oc, cc, hours = a.OpenCellSets, a.ClosedCellSets, a.LaborHours
		inventory = priceActualInventory(a.Inventory, rec.Materials.Inventory)
		disc = Discrepancies(rec, tolerance)
	}

	rate := estimator.LaborRate(rec.Costs, rec.Expenses)
	f := entities.FinancialSnapshot{
		Revenue:       rec.TotalValue,
		ChemicalCost:  oc*rec.Costs.OpenCell + cc*rec.Costs.ClosedCell,
		LaborCost:     hours * rate,
		InventoryCost: estimator.InventoryCost(inventory),
	}
	f.TotalCOGS = f.ChemicalCost + f.LaborCost + f.InventoryCost
	f.NetProfit = f.Revenue - f.TotalCOGS
	if f.Revenue != 0 {
		f.Margin = f.NetProfit / f.Revenue
	}
	return f, disc, nil
}

// priceActualInventory prices actual lines at the matching planned line's
// unit cost. Only lines that were never planned keep the submitted cost.
func priceActualInventory(actual, planned []entities.InventoryItem) []entities.InventoryItem {
	costs := make(map[string]float64, len(planned))
	for _, p := range planned {
		costs[p.ID] = p.UnitCost
		if p.WarehouseItemID != "" {
			costs[p.WarehouseItemID] = p.UnitCost
		}
	}
	out := make([]entities.InventoryItem, len(actual))
	for i, a := range actual {
		if c, ok := costs[a.ID]; ok && a.ID != "" {
			a.UnitCost = c
		} else if c, ok := costs[a.WarehouseItemID]; ok && a.WarehouseItemID != "" {
			a.UnitCost = c
		}
		out[i] = a
	}
	return out
}

// Discrepancies lists chemical sets and labor hours where the crew used more
// than planned by over tolerance (a fraction, 0.05 = 5%). Variance is
// actual minus planned.
func Discrepancies(rec entities.EstimateRecord, tolerance float64) []entities.DiscrepancyItem {
	a := rec.Actuals
	if a == nil {
		return nil
	}
	if tolerance < 0 {
		tolerance = 0
	}
	checks := []struct {
		name            string
		planned, actual float64
	}{
		{"Open Cell Sets", rec.Materials.OpenCellSets, a.OpenCellSets},
		{"Closed Cell Sets", rec.Materials.ClosedCellSets, a.ClosedCellSets},
		{"Labor Hours", rec.Expenses.ManHours, a.LaborHours},
	}
	var out []entities.DiscrepancyItem
	for _, c := range checks {
		if c.actual > c.planned*(1+tolerance) {
			out = append(out, entities.DiscrepancyItem{
				Material: c.name,
				Planned:  c.planned,
				Actual:   c.actual,
				Variance: c.actual - c.planned,
			})
		}
	}
	return out
}
