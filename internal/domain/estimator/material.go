package estimator

import "foampro/internal/domain/entities"

// MaterialEstimate holds board-feet, fractional set counts and material cost.
type MaterialEstimate struct {
	WallBdFt            float64
	RoofBdFt            float64
	TotalOpenCellBdFt   float64
	TotalClosedCellBdFt float64
	OpenCellSets        float64
	ClosedCellSets      float64
	OpenCellCost        float64
	ClosedCellCost      float64
	InventoryCost       float64
	MaterialCost        float64
}

// BoardFeet is area * thickness * (1 + waste/100).
func BoardFeet(area, thickness, waste float64) float64 {
	return clamp(area) * clamp(thickness) * (1 + clamp(waste)/100)
}

// Sets divides board-feet by the per-set yield. The result is not rounded.
func Sets(bdft, yield float64) float64 {
	if clamp(yield) == 0 {
		return 0
	}
	return clamp(bdft) / yield
}

// InventoryCost sums quantity * unit cost over job inventory lines.
func InventoryCost(items []entities.InventoryItem) float64 {
	var total float64
	for _, it := range items {
		total += clamp(it.Quantity) * clamp(it.UnitCost)
	}
	return total
}

// EstimateMaterials sizes the chemical requirement for both surfaces. Wall and
// roof may use different foam types; an unset type counts as open cell.
func EstimateMaterials(a Areas, wall, roof entities.FoamSettings, y entities.Yields, c entities.ChemicalCosts, inventory []entities.InventoryItem) MaterialEstimate {
	var m MaterialEstimate
	m.WallBdFt = BoardFeet(a.TotalWallArea, wall.Thickness, wall.WastePercentage)
	m.RoofBdFt = BoardFeet(a.TotalRoofArea, roof.Thickness, roof.WastePercentage)

	bucket := func(t entities.FoamType, bdft float64) {
		if t == entities.FoamTypeClosedCell {
			m.TotalClosedCellBdFt += bdft
			return
		}
		m.TotalOpenCellBdFt += bdft
	}
	bucket(wall.Type, m.WallBdFt)
	bucket(roof.Type, m.RoofBdFt)

	m.OpenCellSets = Sets(m.TotalOpenCellBdFt, y.OpenCell)
	m.ClosedCellSets = Sets(m.TotalClosedCellBdFt, y.ClosedCell)

	m.OpenCellCost = m.OpenCellSets * clamp(c.OpenCell)
	m.ClosedCellCost = m.ClosedCellSets * clamp(c.ClosedCell)
	m.InventoryCost = InventoryCost(inventory)
	m.MaterialCost = m.OpenCellCost + m.ClosedCellCost + m.InventoryCost
	return m
}
