package estimator

import (
	"math"
	"testing"

	"foampro/internal/domain/entities"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func scenarioA() entities.CalculatorState {
	return entities.CalculatorState{
		EstimateInputs: entities.EstimateInputs{
			Mode:       entities.CalculationModeBuilding,
			Length:     40,
			Width:      30,
			WallHeight: 9,
			RoofPitch:  "4",
		},
		WallSettings: entities.FoamSettings{Type: entities.FoamTypeOpenCell, Thickness: 3, WastePercentage: 10},
		RoofSettings: entities.FoamSettings{Type: entities.FoamTypeClosedCell, Thickness: 2, WastePercentage: 5},
		Yields:       entities.Yields{OpenCell: 16000, ClosedCell: 6600},
		Costs:        entities.ChemicalCosts{OpenCell: 2000, ClosedCell: 2600, LaborRate: 85},
		PricingMode:  entities.PricingModeCostPlus,
		Expenses: entities.EstimateExpenses{
			ManHours:      24,
			TripCharge:    150,
			FuelSurcharge: 40,
			Other:         entities.OtherExpense{Description: "lift rental", Amount: 200},
		},
		Inventory: []entities.InventoryItem{
			{ID: "i1", Name: "Tape", Quantity: 4, Unit: "roll", UnitCost: 12.5},
		},
	}
}

func TestCalculate_ScenarioA(t *testing.T) {
	r := Calculate(scenarioA())

	slope := math.Sqrt(1 + (4.0/12)*(4.0/12))
	nearlyEqual(t, "perimeter", r.Perimeter, 140)
	nearlyEqual(t, "baseWallArea", r.BaseWallArea, 1260)
	nearlyEqual(t, "slopeFactor", r.SlopeFactor, slope)
	if math.Abs(r.SlopeFactor-1.0541) > 1e-4 {
		t.Fatalf("slopeFactor = %v, want ~1.0541", r.SlopeFactor)
	}
	nearlyEqual(t, "baseRoofArea", r.BaseRoofArea, 1200*slope)
	if math.Abs(r.BaseRoofArea-1264.9) > 0.05 {
		t.Fatalf("baseRoofArea = %v, want ~1264.9", r.BaseRoofArea)
	}
	nearlyEqual(t, "gableArea", r.GableArea, 0)
	nearlyEqual(t, "totalWallArea", r.TotalWallArea, 1260)

	wallBdFt := 1260 * 3 * 1.10
	roofBdFt := 1200 * slope * 2 * 1.05
	nearlyEqual(t, "wallBdFt", r.WallBdFt, wallBdFt)
	nearlyEqual(t, "roofBdFt", r.RoofBdFt, roofBdFt)
	nearlyEqual(t, "totalOpenCellBdFt", r.TotalOpenCellBdFt, wallBdFt)
	nearlyEqual(t, "totalClosedCellBdFt", r.TotalClosedCellBdFt, roofBdFt)
	nearlyEqual(t, "openCellSets", r.OpenCellSets, wallBdFt/16000)
	nearlyEqual(t, "closedCellSets", r.ClosedCellSets, roofBdFt/6600)

	material := wallBdFt/16000*2000 + roofBdFt/6600*2600 + 50
	nearlyEqual(t, "materialCost", r.MaterialCost, material)
	nearlyEqual(t, "laborCost", r.LaborCost, 24*85)
	nearlyEqual(t, "miscExpenses", r.MiscExpenses, 390)
	nearlyEqual(t, "totalCost", r.TotalCost, r.MaterialCost+r.LaborCost+r.MiscExpenses)
	nearlyEqual(t, "margin", r.Margin, 0)
}

func TestGeometry_Gables(t *testing.T) {
	a := Geometry(entities.EstimateInputs{
		Mode: entities.CalculationModeBuilding, Length: 40, Width: 30, WallHeight: 9,
		RoofPitch: "6/12", IncludeGables: true,
	})
	// two triangles: base 30, rise 15*6/12
	nearlyEqual(t, "gableArea", a.GableArea, 2*(0.5*30*(15*0.5)))
	nearlyEqual(t, "totalWallArea", a.TotalWallArea, a.BaseWallArea+a.GableArea)
}

func TestGeometry_Modes(t *testing.T) {
	in := entities.EstimateInputs{Length: 20, Width: 10, WallHeight: 8, RoofPitch: "4", IncludeGables: true}

	t.Run("walls only has no roof", func(t *testing.T) {
		in := in
		in.Mode = entities.CalculationModeWallsOnly
		a := Geometry(in)
		nearlyEqual(t, "totalWallArea", a.TotalWallArea, 480)
		nearlyEqual(t, "totalRoofArea", a.TotalRoofArea, 0)
		nearlyEqual(t, "gableArea", a.GableArea, 0)
	})

	t.Run("flat area is roof equivalent", func(t *testing.T) {
		in := in
		in.Mode = entities.CalculationModeFlatArea
		a := Geometry(in)
		nearlyEqual(t, "perimeter", a.Perimeter, 0)
		nearlyEqual(t, "totalWallArea", a.TotalWallArea, 0)
		nearlyEqual(t, "totalRoofArea", a.TotalRoofArea, 200)
	})

	t.Run("custom uses additional areas only", func(t *testing.T) {
		in := in
		in.Mode = entities.CalculationModeCustom
		in.AdditionalAreas = []entities.AdditionalArea{
			{ID: "a", Length: 10, Width: 8, Type: entities.AreaTypeWall},
			{ID: "b", Length: 5, Width: 5, Type: entities.AreaTypeRoof},
		}
		a := Geometry(in)
		nearlyEqual(t, "totalWallArea", a.TotalWallArea, 80)
		nearlyEqual(t, "totalRoofArea", a.TotalRoofArea, 25)
	})

	t.Run("metal surface", func(t *testing.T) {
		in := in
		in.Mode = entities.CalculationModeWallsOnly
		in.IsMetalSurface = true
		a := Geometry(in)
		nearlyEqual(t, "baseWallArea", a.BaseWallArea, 480)
		nearlyEqual(t, "totalWallArea", a.TotalWallArea, 480*MetalSurfaceFactor)
	})
}

func TestGeometry_NonFiniteInputsAreZero(t *testing.T) {
	a := Geometry(entities.EstimateInputs{
		Mode:       entities.CalculationModeBuilding,
		Length:     math.NaN(),
		Width:      -10,
		WallHeight: math.Inf(1),
		RoofPitch:  "steep",
	})
	for name, v := range map[string]float64{
		"perimeter": a.Perimeter, "baseWallArea": a.BaseWallArea,
		"totalWallArea": a.TotalWallArea, "totalRoofArea": a.TotalRoofArea,
	} {
		if math.IsNaN(v) || v != 0 {
			t.Fatalf("%s = %v, want 0", name, v)
		}
	}
	nearlyEqual(t, "slopeFactor", a.SlopeFactor, 1)
}

func TestParsePitch(t *testing.T) {
	cases := map[string]float64{
		"4":     4,
		" 6 ":   6,
		"4/12":  4,
		"6/24":  3,
		"":      0,
		"abc":   0,
		"-3":    0,
		"4/0":   0,
		"NaN":   0,
		"1/x":   0,
		"12/12": 12,
	}
	for in, want := range cases {
		nearlyEqual(t, "pitch("+in+")", ParsePitch(in), want)
	}
}

func TestGeometry_WallTotalNeverBelowBase(t *testing.T) {
	for _, l := range []float64{0, 1, 12.5, 40} {
		for _, w := range []float64{0, 3, 30} {
			for _, h := range []float64{0, 8, 16} {
				for _, p := range []string{"0", "4", "12"} {
					for _, g := range []bool{false, true} {
						a := Geometry(entities.EstimateInputs{
							Mode: entities.CalculationModeBuilding, Length: l, Width: w,
							WallHeight: h, RoofPitch: p, IncludeGables: g,
						})
						if a.TotalWallArea < a.BaseWallArea {
							t.Fatalf("total %v < base %v for l=%v w=%v h=%v p=%s g=%v",
								a.TotalWallArea, a.BaseWallArea, l, w, h, p, g)
						}
					}
				}
			}
		}
	}
}

func TestBoardFeet_WasteNeverReduces(t *testing.T) {
	for _, area := range []float64{0, 1, 250, 1260} {
		for _, th := range []float64{0, 0.5, 3, 6} {
			base := BoardFeet(area, th, 0)
			if base < 0 {
				t.Fatalf("boardFeet(%v,%v,0) = %v, want >= 0", area, th, base)
			}
			for _, waste := range []float64{1, 10, 35} {
				if got := BoardFeet(area, th, waste); got < base {
					t.Fatalf("boardFeet(%v,%v,%v) = %v < %v", area, th, waste, got, base)
				}
			}
		}
	}
}

func TestEstimateMaterials_ZeroAreaAndZeroYield(t *testing.T) {
	m := EstimateMaterials(Areas{}, entities.FoamSettings{Type: entities.FoamTypeOpenCell, Thickness: 3},
		entities.FoamSettings{Type: entities.FoamTypeClosedCell, Thickness: 2},
		entities.Yields{}, entities.ChemicalCosts{OpenCell: 2000, ClosedCell: 2600}, nil)
	nearlyEqual(t, "openCellSets", m.OpenCellSets, 0)
	nearlyEqual(t, "closedCellSets", m.ClosedCellSets, 0)
	nearlyEqual(t, "materialCost", m.MaterialCost, 0)
}

func TestEstimateMaterials_SameFoamBothSurfaces(t *testing.T) {
	oc := entities.FoamSettings{Type: entities.FoamTypeOpenCell, Thickness: 1}
	m := EstimateMaterials(Areas{TotalWallArea: 100, TotalRoofArea: 60}, oc, oc,
		entities.Yields{OpenCell: 80, ClosedCell: 10}, entities.ChemicalCosts{OpenCell: 10}, nil)
	nearlyEqual(t, "totalOpenCellBdFt", m.TotalOpenCellBdFt, 160)
	nearlyEqual(t, "totalClosedCellBdFt", m.TotalClosedCellBdFt, 0)
	nearlyEqual(t, "openCellSets", m.OpenCellSets, 2)
	nearlyEqual(t, "materialCost", m.MaterialCost, 20)
}

func TestPrice_SqFtMode(t *testing.T) {
	s := scenarioA()
	s.PricingMode = entities.PricingModeSqFt
	s.SqFtRates = entities.SqFtRates{Wall: 2, Roof: 3}
	r := Calculate(s)

	want := r.TotalWallArea*2 + r.TotalRoofArea*3
	nearlyEqual(t, "totalCost", r.TotalCost, want)
	nearlyEqual(t, "laborCost", r.LaborCost, 24*85)
	cost := r.MaterialCost + r.LaborCost + r.MiscExpenses
	nearlyEqual(t, "margin", r.Margin, (want-cost)/want)
}

func TestPrice_SqFtModeZeroRates(t *testing.T) {
	s := scenarioA()
	s.PricingMode = entities.PricingModeSqFt
	r := Calculate(s)
	nearlyEqual(t, "totalCost", r.TotalCost, 0)
	nearlyEqual(t, "margin", r.Margin, 0)
}

func TestLaborRate_Override(t *testing.T) {
	rate := 60.0
	got := LaborRate(entities.ChemicalCosts{LaborRate: 85}, entities.EstimateExpenses{LaborRate: &rate})
	nearlyEqual(t, "laborRate", got, 60)
	got = LaborRate(entities.ChemicalCosts{LaborRate: 85}, entities.EstimateExpenses{})
	nearlyEqual(t, "laborRate", got, 85)
}

func TestCalculate_Deterministic(t *testing.T) {
	s := scenarioA()
	s.IncludeGables = true
	s.AdditionalAreas = []entities.AdditionalArea{{ID: "x", Length: 7, Width: 3, Type: entities.AreaTypeRoof}}
	if Calculate(s) != Calculate(s) {
		t.Fatalf("calculate is not deterministic")
	}
}
