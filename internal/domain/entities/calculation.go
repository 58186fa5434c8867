package entities

// CalculationMode selects which geometry applies to the dimension inputs.
type CalculationMode string

const (
	CalculationModeBuilding  CalculationMode = "Building"
	CalculationModeWallsOnly CalculationMode = "Walls Only"
	CalculationModeFlatArea  CalculationMode = "Flat Area"
	CalculationModeCustom    CalculationMode = "Custom"
)

type FoamType string

const (
	FoamTypeOpenCell   FoamType = "Open Cell"
	FoamTypeClosedCell FoamType = "Closed Cell"
)

type AreaType string

const (
	AreaTypeWall AreaType = "wall"
	AreaTypeRoof AreaType = "roof"
)

// PricingMode selects how the customer price is derived.
//
//   - level_pricing: cost-plus, price = material + labor + misc expenses
//   - sqft_pricing: price = wall area * wall rate + roof area * roof rate
type PricingMode string

const (
	PricingModeCostPlus PricingMode = "level_pricing"
	PricingModeSqFt     PricingMode = "sqft_pricing"
)

// AdditionalArea is an ad-hoc rectangle (bump-out, dormer, attic section)
// added to the wall or roof total.
type AdditionalArea struct {
	ID          string   `json:"id"`
	Length      float64  `json:"length"`
	Width       float64  `json:"width"`
	Type        AreaType `json:"type"`
	Description string   `json:"description,omitempty"`
}

type FoamSettings struct {
	Type            FoamType `json:"type"`
	Thickness       float64  `json:"thickness"`
	WastePercentage float64  `json:"wastePercentage"`
}

// EstimateInputs is the geometry snapshot stored on a record so it can be
// reloaded into the calculator.
type EstimateInputs struct {
	Mode            CalculationMode  `json:"mode"`
	Length          float64          `json:"length"`
	Width           float64          `json:"width"`
	WallHeight      float64          `json:"wallHeight"`
	RoofPitch       string           `json:"roofPitch"`
	IncludeGables   bool             `json:"includeGables"`
	IsMetalSurface  bool             `json:"isMetalSurface,omitempty"`
	AdditionalAreas []AdditionalArea `json:"additionalAreas"`
}

// Yields is the board-feet produced by one chemical set.
type Yields struct {
	OpenCell   float64 `json:"openCell"`
	ClosedCell float64 `json:"closedCell"`
}

// ChemicalCosts are the unit costs used for costing: price per set and labor per hour.
type ChemicalCosts struct {
	OpenCell   float64 `json:"openCell"`
	ClosedCell float64 `json:"closedCell"`
	LaborRate  float64 `json:"laborRate"`
}

type OtherExpense struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// EstimateExpenses are the labor and fee inputs of the pricing engine.
// LaborRate, when set, overrides the company labor rate for this job.
type EstimateExpenses struct {
	ManHours      float64      `json:"manHours"`
	LaborRate     *float64     `json:"laborRate,omitempty"`
	TripCharge    float64      `json:"tripCharge"`
	FuelSurcharge float64      `json:"fuelSurcharge"`
	Other         OtherExpense `json:"other"`
}

type SqFtRates struct {
	Wall float64 `json:"wall"`
	Roof float64 `json:"roof"`
}

// CalculatorState is the working draft edited before it becomes (or while it
// re-edits) an EstimateRecord. The warehouse catalog is not part of it; job
// inventory lines are already copied from the catalog.
type CalculatorState struct {
	EstimateInputs

	WallSettings FoamSettings     `json:"wallSettings"`
	RoofSettings FoamSettings     `json:"roofSettings"`
	Yields       Yields           `json:"yields"`
	Costs        ChemicalCosts    `json:"costs"`
	PricingMode  PricingMode      `json:"pricingMode"`
	SqFtRates    SqFtRates        `json:"sqFtRates"`
	Expenses     EstimateExpenses `json:"expenses"`

	Inventory    []InventoryItem `json:"inventory"`
	JobEquipment []EquipmentItem `json:"jobEquipment,omitempty"`

	CustomerProfile CustomerProfile `json:"customerProfile"`
	SitePhotos      []JobImage      `json:"sitePhotos,omitempty"`
	JobNotes        string          `json:"jobNotes,omitempty"`
	ScheduledDate   string          `json:"scheduledDate,omitempty"`
	InvoiceDate     string          `json:"invoiceDate,omitempty"`
	InvoiceNumber   string          `json:"invoiceNumber,omitempty"`
	PaymentTerms    string          `json:"paymentTerms,omitempty"`
}

// CalculationResults is derived from a CalculatorState and only persisted as
// part of an EstimateRecord snapshot.
type CalculationResults struct {
	Perimeter     float64 `json:"perimeter"`
	SlopeFactor   float64 `json:"slopeFactor"`
	BaseWallArea  float64 `json:"baseWallArea"`
	GableArea     float64 `json:"gableArea"`
	TotalWallArea float64 `json:"totalWallArea"`
	BaseRoofArea  float64 `json:"baseRoofArea"`
	TotalRoofArea float64 `json:"totalRoofArea"`

	WallBdFt float64 `json:"wallBdFt"`
	RoofBdFt float64 `json:"roofBdFt"`

	TotalOpenCellBdFt   float64 `json:"totalOpenCellBdFt"`
	TotalClosedCellBdFt float64 `json:"totalClosedCellBdFt"`

	OpenCellSets   float64 `json:"openCellSets"`
	ClosedCellSets float64 `json:"closedCellSets"`

	OpenCellCost   float64 `json:"openCellCost"`
	ClosedCellCost float64 `json:"closedCellCost"`
	InventoryCost  float64 `json:"inventoryCost"`

	LaborCost    float64 `json:"laborCost"`
	MiscExpenses float64 `json:"miscExpenses"`
	MaterialCost float64 `json:"materialCost"`
	TotalCost    float64 `json:"totalCost"`
	Margin       float64 `json:"margin"`
}
