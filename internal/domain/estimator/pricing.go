package estimator

import "foampro/internal/domain/entities"

// Pricing is the result of the pricing step.
type Pricing struct {
	LaborCost    float64
	MiscExpenses float64
	TotalCost    float64
	Margin       float64
}

// LaborRate returns the job override when present, else the company rate.
func LaborRate(c entities.ChemicalCosts, e entities.EstimateExpenses) float64 {
	if e.LaborRate != nil {
		return clamp(*e.LaborRate)
	}
	return clamp(c.LaborRate)
}

// Margin is (total-cost)/total, or 0 when total is 0.
func Margin(total, cost float64) float64 {
	if total == 0 {
		return 0
	}
	return (total - cost) / total
}

// Price derives the customer price. Under sqft pricing labor and misc are
// still reported but only the area rates drive the total.
func Price(m MaterialEstimate, a Areas, e entities.EstimateExpenses, laborRate float64, mode entities.PricingMode, rates entities.SqFtRates) Pricing {
	p := Pricing{
		LaborCost:    clamp(e.ManHours) * clamp(laborRate),
		MiscExpenses: clamp(e.TripCharge) + clamp(e.FuelSurcharge) + clamp(e.Other.Amount),
	}
	cost := m.MaterialCost + p.LaborCost + p.MiscExpenses

	if mode == entities.PricingModeSqFt {
		p.TotalCost = a.TotalWallArea*clamp(rates.Wall) + a.TotalRoofArea*clamp(rates.Roof)
	} else {
		p.TotalCost = cost
	}
	p.Margin = Margin(p.TotalCost, cost)
	return p
}
