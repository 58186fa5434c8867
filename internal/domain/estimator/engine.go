package estimator

import "foampro/internal/domain/entities"

// Calculate runs geometry, materials and pricing over a calculator state.
// Equal states always produce equal results.
func Calculate(s entities.CalculatorState) entities.CalculationResults {
	a := Geometry(s.EstimateInputs)
	m := EstimateMaterials(a, s.WallSettings, s.RoofSettings, s.Yields, s.Costs, s.Inventory)
	p := Price(m, a, s.Expenses, LaborRate(s.Costs, s.Expenses), s.PricingMode, s.SqFtRates)

	return entities.CalculationResults{
		Perimeter:     a.Perimeter,
		SlopeFactor:   a.SlopeFactor,
		BaseWallArea:  a.BaseWallArea,
		GableArea:     a.GableArea,
		TotalWallArea: a.TotalWallArea,
		BaseRoofArea:  a.BaseRoofArea,
		TotalRoofArea: a.TotalRoofArea,

		WallBdFt: m.WallBdFt,
		RoofBdFt: m.RoofBdFt,

		TotalOpenCellBdFt:   m.TotalOpenCellBdFt,
		TotalClosedCellBdFt: m.TotalClosedCellBdFt,
		OpenCellSets:        m.OpenCellSets,
		ClosedCellSets:      m.ClosedCellSets,

		OpenCellCost:   m.OpenCellCost,
		ClosedCellCost: m.ClosedCellCost,
		InventoryCost:  m.InventoryCost,

		LaborCost:    p.LaborCost,
		MiscExpenses: p.MiscExpenses,
		MaterialCost: m.MaterialCost,
		TotalCost:    p.TotalCost,
		Margin:       p.Margin,
	}
}
