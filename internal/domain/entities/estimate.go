package entities

// EstimateStatus represents the commercial lifecycle of a job record.
//
// Domain notes:
//   - Draft → Work Order → Invoiced → Paid is the normal flow.
//   - Archived is a reversible soft hide reachable from any status.
//   - The string values are part of the wire contract with the script backend.
type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "Draft"
	EstimateStatusWorkOrder EstimateStatus = "Work Order"
	EstimateStatusInvoiced  EstimateStatus = "Invoiced"
	EstimateStatusPaid      EstimateStatus = "Paid"
	EstimateStatusArchived  EstimateStatus = "Archived"
)

// ExecutionStatus is the crew-side sub-state of a Work Order.
type ExecutionStatus string

const (
	ExecutionNotStarted ExecutionStatus = "Not Started"
	ExecutionInProgress ExecutionStatus = "In Progress"
	ExecutionCompleted  ExecutionStatus = "Completed"
)

type ImageKind string

const (
	ImageKindSiteCondition ImageKind = "site_condition"
	ImageKindCompletion    ImageKind = "completion"
)

type JobImage struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption,omitempty"`
	UploadedAt string    `json:"uploadedAt"`
	UploadedBy string    `json:"uploadedBy"`
	Type       ImageKind `json:"type"`
}

// Materials is what was planned/ordered for the job at snapshot time.
type Materials struct {
	OpenCellSets   float64         `json:"openCellSets"`
	ClosedCellSets float64         `json:"closedCellSets"`
	Inventory      []InventoryItem `json:"inventory"`
	Equipment      []EquipmentItem `json:"equipment,omitempty"`
}

// Actuals is what the crew reports as truly consumed. Only the "complete job"
// transition populates it.
type Actuals struct {
	OpenCellSets     float64         `json:"openCellSets"`
	ClosedCellSets   float64         `json:"closedCellSets"`
	Inventory        []InventoryItem `json:"inventory"`
	Equipment        []EquipmentItem `json:"equipment,omitempty"`
	CompletionDate   string          `json:"completionDate"`
	CompletedBy      string          `json:"completedBy"`
	LaborHours       float64         `json:"laborHours,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CompletionPhotos []JobImage      `json:"completionPhotos,omitempty"`
}

type FinancialSnapshot struct {
	Revenue       float64 `json:"revenue"`
	ChemicalCost  float64 `json:"chemicalCost"`
	LaborCost     float64 `json:"laborCost"`
	InventoryCost float64 `json:"inventoryCost"`
	TotalCOGS     float64 `json:"totalCOGS"`
	NetProfit     float64 `json:"netProfit"`
	Margin        float64 `json:"margin"`
}

// DiscrepancyItem is one planned-vs-actual line flagged for operator review.
type DiscrepancyItem struct {
	Material string  `json:"material"`
	Planned  float64 `json:"planned"`
	Actual   float64 `json:"actual"`
	Variance float64 `json:"variance"`
}

// EstimateRecord is the durable unit of work.
//
// Domain notes:
//   - Customer is a snapshot copied at creation; CustomerID links to the CRM entity.
//   - Inputs/Results/Materials/Costs are snapshots taken at each transition.
//   - Actuals is nil until ExecutionStatus is Completed.
//   - Financials is nil until the record is invoiced and frozen once Paid.
//   - Version is incremented on every write and guards concurrent edits.
type EstimateRecord struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId,omitempty"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	Status        EstimateStatus  `json:"status"`
	Date          string          `json:"date"`
	ScheduledDate string          `json:"scheduledDate,omitempty"`
	InvoiceDate   string          `json:"invoiceDate,omitempty"`
	PaidDate      string          `json:"paidDate,omitempty"`
	PaymentTerms  string          `json:"paymentTerms,omitempty"`
	Customer      CustomerProfile `json:"customer"`

	WorkOrderSheetURL string     `json:"workOrderSheetUrl,omitempty"`
	SitePhotos        []JobImage `json:"sitePhotos,omitempty"`

	ExecutionStatus ExecutionStatus `json:"executionStatus,omitempty"`
	Actuals         *Actuals        `json:"actuals,omitempty"`

	Inputs      EstimateInputs     `json:"inputs"`
	Results     CalculationResults `json:"results"`
	PricingMode PricingMode        `json:"pricingMode,omitempty"`
	SqFtRates   SqFtRates          `json:"sqFtRates"`
	Yields      Yields             `json:"yields"`
	Costs       ChemicalCosts      `json:"costs"`

	Materials    Materials        `json:"materials"`
	TotalValue   float64          `json:"totalValue"`
	WallSettings FoamSettings     `json:"wallSettings"`
	RoofSettings FoamSettings     `json:"roofSettings"`
	Expenses     EstimateExpenses `json:"expenses"`

	Financials    *FinancialSnapshot `json:"financials,omitempty"`
	Discrepancies []DiscrepancyItem  `json:"discrepancies,omitempty"`

	Notes        string         `json:"notes,omitempty"`
	ArchivedFrom EstimateStatus `json:"archivedFrom,omitempty"`

	Version   int64  `json:"version"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
