package lifecycle

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"foampro/internal/domain/entities"
	"foampro/internal/domain/estimator"
)

var now = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func testState() entities.CalculatorState {
	return entities.CalculatorState{
		EstimateInputs: entities.EstimateInputs{
			Mode: entities.CalculationModeBuilding, Length: 40, Width: 30, WallHeight: 9,
			RoofPitch: "4", IncludeGables: true,
			AdditionalAreas: []entities.AdditionalArea{{ID: "dormer", Length: 6, Width: 4, Type: entities.AreaTypeRoof}},
		},
		WallSettings: entities.FoamSettings{Type: entities.FoamTypeOpenCell, Thickness: 3, WastePercentage: 10},
		RoofSettings: entities.FoamSettings{Type: entities.FoamTypeClosedCell, Thickness: 2, WastePercentage: 5},
		Yields:       entities.Yields{OpenCell: 16000, ClosedCell: 6600},
		Costs:        entities.ChemicalCosts{OpenCell: 2000, ClosedCell: 2600, LaborRate: 85},
		PricingMode:  entities.PricingModeSqFt,
		SqFtRates:    entities.SqFtRates{Wall: 2.5, Roof: 3.25},
		Expenses:     entities.EstimateExpenses{ManHours: 20, TripCharge: 100},
		Inventory:    []entities.InventoryItem{{ID: "tape", Name: "Tape", Quantity: 4, Unit: "roll", UnitCost: 12.5, WarehouseItemID: "tape"}},
		CustomerProfile: entities.CustomerProfile{
			ID: "cust-1", Name: "Acme Barns", Email: "owner@acme.test",
		},
	}
}

func draft(t *testing.T) entities.EstimateRecord {
	t.Helper()
	s := testState()
	rec, err := NewDraft("est-1", s, estimator.Calculate(s), now)
	if err != nil {
		t.Fatalf("new draft: %v", err)
	}
	return rec
}

func workOrder(t *testing.T) entities.EstimateRecord {
	t.Helper()
	s := testState()
	rec, err := ConvertToWorkOrder(draft(t), s, estimator.Calculate(s), now)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	return rec
}

func completed(t *testing.T, a entities.Actuals) entities.EstimateRecord {
	t.Helper()
	rec, _, err := StartJob(workOrder(t), now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	rec, err = CompleteJob(rec, a, now)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	return rec
}

func TestNewDraft(t *testing.T) {
	rec := draft(t)
	if rec.Status != entities.EstimateStatusDraft || rec.Actuals != nil || rec.Financials != nil {
		t.Fatalf("unexpected draft: %+v", rec)
	}
	if rec.TotalValue != rec.Results.TotalCost || rec.Materials.OpenCellSets != rec.Results.OpenCellSets {
		t.Fatalf("snapshot mismatch")
	}

	s := testState()
	s.CustomerProfile.Name = " "
	if _, err := NewDraft("est-2", s, estimator.Calculate(s), now); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSnapshotReloadRoundTrip(t *testing.T) {
	rec := draft(t)
	if got := Recalculate(rec); got != rec.Results {
		t.Fatalf("reloaded results differ:\n got %+v\nwant %+v", got, rec.Results)
	}
}

func TestSnapshotDoesNotAliasState(t *testing.T) {
	s := testState()
	rec, err := NewDraft("est-1", s, estimator.Calculate(s), now)
	if err != nil {
		t.Fatal(err)
	}
	s.Inventory[0].Quantity = 99
	s.AdditionalAreas[0].Length = 99
	if rec.Materials.Inventory[0].Quantity != 4 || rec.Inputs.AdditionalAreas[0].Length != 6 {
		t.Fatalf("record shares slices with calculator state")
	}
}

func TestConvertToWorkOrder(t *testing.T) {
	rec := workOrder(t)
	if rec.Status != entities.EstimateStatusWorkOrder || rec.ExecutionStatus != entities.ExecutionNotStarted {
		t.Fatalf("unexpected record: %s/%s", rec.Status, rec.ExecutionStatus)
	}

	t.Run("requires saved customer", func(t *testing.T) {
		s := testState()
		s.CustomerProfile.ID = ""
		d, err := NewDraft("est-9", s, estimator.Calculate(s), now)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ConvertToWorkOrder(d, s, estimator.Calculate(s), now); !errors.Is(err, ErrPrecondition) {
			t.Fatalf("expected ErrPrecondition, got %v", err)
		}
	})
}

func TestScheduleIsNotAStatusChange(t *testing.T) {
	rec := workOrder(t)
	if StageOf(rec) != StageWorkOrderUnscheduled {
		t.Fatalf("stage = %s", StageOf(rec))
	}
	out, err := Schedule(rec, "2026-04-01", now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != entities.EstimateStatusWorkOrder || StageOf(out) != StageWorkOrderScheduled {
		t.Fatalf("unexpected %s / %s", out.Status, StageOf(out))
	}
	if _, err := Schedule(rec, "next tuesday", now); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := Schedule(draft(t), "2026-04-01", now); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
}

func TestStartJob_Idempotent(t *testing.T) {
	rec, changed, err := StartJob(workOrder(t), now)
	if err != nil || !changed || rec.ExecutionStatus != entities.ExecutionInProgress {
		t.Fatalf("start: %v %v %s", err, changed, rec.ExecutionStatus)
	}
	again, changed, err := StartJob(rec, now.Add(time.Hour))
	if err != nil || changed || !reflect.DeepEqual(again, rec) {
		t.Fatalf("second start should be a no-op: %v %v", err, changed)
	}

	done := completed(t, entities.Actuals{CompletedBy: "crew", OpenCellSets: 1})
	out, changed, err := StartJob(done, now)
	if err != nil || changed || out.ExecutionStatus != entities.ExecutionCompleted {
		t.Fatalf("starting a completed job must not reset it: %v %v %s", err, changed, out.ExecutionStatus)
	}
}

// Scenario B
func TestCompleteJob_WithoutStartIsRejected(t *testing.T) {
	rec := workOrder(t)
	_, err := CompleteJob(rec, entities.Actuals{CompletedBy: "crew", OpenCellSets: 1}, now)
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
	if rec.ExecutionStatus != entities.ExecutionNotStarted || rec.Actuals != nil {
		t.Fatalf("record changed: %s", rec.ExecutionStatus)
	}
}

func TestCompleteJob_ResubmitStaysCompleted(t *testing.T) {
	rec := completed(t, entities.Actuals{CompletedBy: "crew", OpenCellSets: 1, LaborHours: 10})
	if rec.Actuals == nil || rec.Actuals.CompletionDate == "" {
		t.Fatalf("actuals not recorded")
	}
	out, err := CompleteJob(rec, entities.Actuals{CompletedBy: "crew", OpenCellSets: 1.2, LaborHours: 11}, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.ExecutionStatus != entities.ExecutionCompleted || out.Actuals.OpenCellSets != 1.2 {
		t.Fatalf("unexpected resubmit: %+v", out.Actuals)
	}
	if rec.Actuals.OpenCellSets != 1 {
		t.Fatalf("input record mutated")
	}
}

func TestCompleteJob_Validation(t *testing.T) {
	rec, _, _ := StartJob(workOrder(t), now)
	for name, a := range map[string]entities.Actuals{
		"no crew member":   {OpenCellSets: 1},
		"negative sets":    {CompletedBy: "crew", ClosedCellSets: -1},
		"nan hours":        {CompletedBy: "crew", LaborHours: math.NaN()},
		"negative inv qty": {CompletedBy: "crew", Inventory: []entities.InventoryItem{{Name: "Tape", Quantity: -2}}},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := CompleteJob(rec, a, now); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestInvoice_FallsBackToPlan(t *testing.T) {
	rec := workOrder(t)
	inv, err := Invoice(rec, InvoiceDetails{}, 0.05, now)
	if err != nil {
		t.Fatal(err)
	}
	if inv.Status != entities.EstimateStatusInvoiced || inv.Financials == nil {
		t.Fatalf("unexpected invoice: %+v", inv)
	}
	f := inv.Financials
	nearlyEqual(t, "revenue", f.Revenue, rec.TotalValue)
	nearlyEqual(t, "chemicalCost", f.ChemicalCost, rec.Materials.OpenCellSets*2000+rec.Materials.ClosedCellSets*2600)
	nearlyEqual(t, "laborCost", f.LaborCost, 20*85)
	nearlyEqual(t, "inventoryCost", f.InventoryCost, 50)
	nearlyEqual(t, "netProfit", f.NetProfit, f.Revenue-f.TotalCOGS)
	if inv.InvoiceNumber == "" || inv.InvoiceDate != "2026-03-14" || len(inv.Discrepancies) != 0 {
		t.Fatalf("invoice fields: %q %q %v", inv.InvoiceNumber, inv.InvoiceDate, inv.Discrepancies)
	}
}

// Scenario C
func TestReconcile_DiscrepancyIsAdvisory(t *testing.T) {
	planned := workOrder(t).Materials.OpenCellSets
	rec := completed(t, entities.Actuals{
		CompletedBy:    "crew",
		OpenCellSets:   planned * 1.10,
		ClosedCellSets: 0,
		LaborHours:     20,
		Inventory:      []entities.InventoryItem{{ID: "tape", Name: "Tape", Quantity: 3}},
	})

	inv, err := Invoice(rec, InvoiceDetails{InvoiceNumber: "INV-1001"}, 0.05, now)
	if err != nil {
		t.Fatalf("invoicing must not be blocked: %v", err)
	}
	f := inv.Financials
	nearlyEqual(t, "chemicalCost", f.ChemicalCost, planned*1.10*2000)
	nearlyEqual(t, "inventoryCost", f.InventoryCost, 3*12.5)
	nearlyEqual(t, "totalCOGS", f.TotalCOGS, f.ChemicalCost+f.LaborCost+f.InventoryCost)
	nearlyEqual(t, "netProfit", f.NetProfit, f.Revenue-f.TotalCOGS)
	nearlyEqual(t, "margin", f.Margin, f.NetProfit/f.Revenue)

	if len(inv.Discrepancies) != 1 || inv.Discrepancies[0].Material != "Open Cell Sets" {
		t.Fatalf("expected an open cell discrepancy, got %+v", inv.Discrepancies)
	}
	nearlyEqual(t, "variance", inv.Discrepancies[0].Variance, planned*1.10-planned)
}

func TestReconcile_ZeroRevenue(t *testing.T) {
	rec := workOrder(t)
	rec.TotalValue = 0
	f, _, err := Reconcile(rec, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "margin", f.Margin, 0)
	nearlyEqual(t, "netProfit", f.NetProfit, -f.TotalCOGS)
}

func TestReconcile_UsesSnapshotCosts(t *testing.T) {
	rec := completed(t, entities.Actuals{CompletedBy: "crew", OpenCellSets: 2})
	before, _, _ := Reconcile(rec, 0)
	// a later catalog change never reaches the record's cost snapshot
	rec2 := rec
	rec2.Materials.Inventory = []entities.InventoryItem{{ID: "tape", UnitCost: 999}}
	after, _, _ := Reconcile(rec2, 0)
	nearlyEqual(t, "chemicalCost", after.ChemicalCost, before.ChemicalCost)
}

// Scenario D
func TestPaidFinancialsAreLocked(t *testing.T) {
	inv, err := Invoice(completed(t, entities.Actuals{CompletedBy: "crew", OpenCellSets: 1}), InvoiceDetails{}, 0.05, now)
	if err != nil {
		t.Fatal(err)
	}
	paid, err := RecordPayment(inv, now)
	if err != nil {
		t.Fatal(err)
	}
	if paid.Status != entities.EstimateStatusPaid || paid.PaidDate == "" {
		t.Fatalf("unexpected paid record: %+v", paid)
	}
	snapshot := *paid.Financials

	if _, _, err := Reconcile(paid, 0.05); !errors.Is(err, ErrFinancialsLocked) {
		t.Fatalf("reconcile: expected ErrFinancialsLocked, got %v", err)
	}
	if _, err := RefreshFinancials(paid, 0.05, now); !errors.Is(err, ErrFinancialsLocked) {
		t.Fatalf("refresh: expected ErrFinancialsLocked, got %v", err)
	}
	s := testState()
	if _, err := UpdateInputs(paid, s, estimator.Calculate(s), now); !errors.Is(err, ErrFinancialsLocked) {
		t.Fatalf("update: expected ErrFinancialsLocked, got %v", err)
	}
	if *paid.Financials != snapshot {
		t.Fatalf("financials changed")
	}
	if _, err := RecordPayment(paid, now); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("double payment: expected ErrPrecondition, got %v", err)
	}
}

func TestRefreshFinancials_AfterResubmit(t *testing.T) {
	rec := completed(t, entities.Actuals{CompletedBy: "crew", OpenCellSets: 1})
	inv, err := Invoice(rec, InvoiceDetails{}, 0.05, now)
	if err != nil {
		t.Fatal(err)
	}
	inv, err = CompleteJob(inv, entities.Actuals{CompletedBy: "crew", OpenCellSets: 2}, now)
	if err != nil {
		t.Fatal(err)
	}
	out, err := RefreshFinancials(inv, 0.05, now)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "chemicalCost", out.Financials.ChemicalCost, 4000)
	if out.Status != entities.EstimateStatusInvoiced {
		t.Fatalf("status regressed to %s", out.Status)
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	rec := workOrder(t)
	arch, err := Archive(rec, now)
	if err != nil {
		t.Fatal(err)
	}
	if StageOf(arch) != StageArchived || NextAction(arch) != "unarchive" {
		t.Fatalf("stage = %s", StageOf(arch))
	}
	if _, err := Archive(arch, now); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
	back, err := Unarchive(arch, now)
	if err != nil {
		t.Fatal(err)
	}
	if back.Status != entities.EstimateStatusWorkOrder || back.ArchivedFrom != "" {
		t.Fatalf("unarchive restored %s", back.Status)
	}
	if !reflect.DeepEqual(back.Materials, rec.Materials) || back.Results != rec.Results {
		t.Fatalf("archival altered historical data")
	}
}

func TestFailedTransitionsLeaveRecordUnchanged(t *testing.T) {
	records := map[string]entities.EstimateRecord{
		"draft":      draft(t),
		"work order": workOrder(t),
	}
	s := testState()
	r := estimator.Calculate(s)
	for name, rec := range records {
		before := rec
		beforeCopy := rec
		attempts := []func() (entities.EstimateRecord, error){
			func() (entities.EstimateRecord, error) {
				return CompleteJob(rec, entities.Actuals{CompletedBy: "crew"}, now)
			},
			func() (entities.EstimateRecord, error) { return RecordPayment(rec, now) },
			func() (entities.EstimateRecord, error) { return Unarchive(rec, now) },
			func() (entities.EstimateRecord, error) { return RefreshFinancials(rec, 0.05, now) },
		}
		if rec.Status == entities.EstimateStatusDraft {
			attempts = append(attempts,
				func() (entities.EstimateRecord, error) { return Invoice(rec, InvoiceDetails{}, 0.05, now) },
				func() (entities.EstimateRecord, error) { return Schedule(rec, "2026-05-01", now) },
			)
		} else {
			attempts = append(attempts,
				func() (entities.EstimateRecord, error) { return ConvertToWorkOrder(rec, s, r, now) },
			)
		}
		for i, attempt := range attempts {
			out, err := attempt()
			if err == nil {
				t.Fatalf("%s: attempt %d unexpectedly succeeded", name, i)
			}
			if out.Status != before.Status || out.ExecutionStatus != before.ExecutionStatus {
				t.Fatalf("%s: attempt %d returned a changed record", name, i)
			}
			if !reflect.DeepEqual(rec, beforeCopy) {
				t.Fatalf("%s: attempt %d mutated the input", name, i)
			}
		}
	}
}

func TestStageAndNextAction(t *testing.T) {
	rec := workOrder(t)
	rec.ScheduledDate = "2026-04-01"
	cases := []struct {
		mutate func(*entities.EstimateRecord)
		stage  Stage
		action string
	}{
		{func(r *entities.EstimateRecord) { r.Status = entities.EstimateStatusDraft }, StageDraft, "convert"},
		{func(r *entities.EstimateRecord) {}, StageWorkOrderScheduled, "start"},
		{func(r *entities.EstimateRecord) { r.ExecutionStatus = entities.ExecutionInProgress }, StageInProgress, "complete"},
		{func(r *entities.EstimateRecord) { r.ExecutionStatus = entities.ExecutionCompleted }, StageCompleted, "invoice"},
		{func(r *entities.EstimateRecord) { r.Status = entities.EstimateStatusInvoiced }, StageInvoiced, "record_payment"},
		{func(r *entities.EstimateRecord) { r.Status = entities.EstimateStatusPaid }, StagePaid, ""},
	}
	for _, c := range cases {
		r := rec
		c.mutate(&r)
		if got := StageOf(r); got != c.stage {
			t.Fatalf("stage = %s, want %s", got, c.stage)
		}
		if got := NextAction(r); got != c.action {
			t.Fatalf("action for %s = %q, want %q", c.stage, got, c.action)
		}
	}
}

func TestMerge_NeverRegresses(t *testing.T) {
	office := workOrder(t)
	office.Version = 3
	office, _ = Invoice(office, InvoiceDetails{}, 0.05, now)
	office.Version = 4

	crew := workOrder(t)
	crew.Version = 5
	crew, _, _ = StartJob(crew, now)
	crew, _ = CompleteJob(crew, entities.Actuals{CompletedBy: "crew", OpenCellSets: 1}, now)

	merged, conflict := Merge(office, crew)
	if !conflict {
		t.Fatalf("expected a conflict")
	}
	if merged.Status != entities.EstimateStatusInvoiced || merged.Financials == nil {
		t.Fatalf("status regressed to %s", merged.Status)
	}
	if merged.ExecutionStatus != entities.ExecutionCompleted || merged.Actuals == nil {
		t.Fatalf("execution regressed to %s", merged.ExecutionStatus)
	}
	if merged.Version != 5 {
		t.Fatalf("version = %d, want 5", merged.Version)
	}

	stale := workOrder(t)
	stale.Version = 9
	merged, _ = Merge(stale, crew)
	if merged.ExecutionStatus != entities.ExecutionCompleted {
		t.Fatalf("stale newer record reset execution to %s", merged.ExecutionStatus)
	}
}

func TestMerge_IdenticalRecordsNoConflict(t *testing.T) {
	rec := workOrder(t)
	merged, conflict := Merge(rec, rec)
	if conflict || !reflect.DeepEqual(merged, rec) {
		t.Fatalf("unexpected merge result, conflict=%v", conflict)
	}
}

func TestReconcile_IgnoresSubmittedUnitCost(t *testing.T) {
	rec := completed(t, entities.Actuals{
		CompletedBy: "crew",
		Inventory: []entities.InventoryItem{
			{ID: "tape", Name: "Tape", Quantity: 4, UnitCost: 999},
			{ID: "extra", Name: "Primer", Quantity: 2, UnitCost: 7},
		},
	})
	f, _, err := Reconcile(rec, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	// planned tape cost wins; the unplanned primer keeps the submitted cost
	nearlyEqual(t, "inventoryCost", f.InventoryCost, 4*12.5+2*7)
}

func paidRecord(t *testing.T) entities.EstimateRecord {
	t.Helper()
	inv, err := Invoice(completed(t, entities.Actuals{CompletedBy: "crew", OpenCellSets: 1}), InvoiceDetails{}, 0.05, now)
	if err != nil {
		t.Fatal(err)
	}
	paid, err := RecordPayment(inv, now)
	if err != nil {
		t.Fatal(err)
	}
	return paid
}

func TestMerge_PaidFinancialsSurviveSync(t *testing.T) {
	local := paidRecord(t)
	local.Version = 5
	want := *local.Financials

	remote := local
	remote.Financials = &entities.FinancialSnapshot{NetProfit: -999}
	remote.PaidDate = "2020-01-01"
	remote.Notes = "edited in the sheet"

	for _, v := range []int64{5, 6} {
		remote.Version = v
		merged, conflict := Merge(local, remote)
		if !conflict {
			t.Fatalf("v%d: expected a conflict", v)
		}
		if merged.Financials == nil || *merged.Financials != want {
			t.Fatalf("v%d: financials replaced: %+v", v, merged.Financials)
		}
		if merged.PaidDate != local.PaidDate {
			t.Fatalf("v%d: paid date = %q", v, merged.PaidDate)
		}
		if merged.Notes != "edited in the sheet" {
			t.Fatalf("v%d: ordinary fields must follow the remote, got %q", v, merged.Notes)
		}
	}
}

func TestMerge_ArchivedPaidIsNotRegressed(t *testing.T) {
	local, err := Archive(paidRecord(t), now)
	if err != nil {
		t.Fatal(err)
	}
	local.Version = 5
	remote := workOrder(t)
	remote.Version = 6

	merged, conflict := Merge(local, remote)
	if !conflict {
		t.Fatalf("expected a conflict")
	}
	if merged.Status != entities.EstimateStatusArchived || merged.ArchivedFrom != entities.EstimateStatusPaid {
		t.Fatalf("status = %s archivedFrom = %q", merged.Status, merged.ArchivedFrom)
	}
	if merged.Financials == nil || *merged.Financials != *local.Financials {
		t.Fatalf("financials lost: %+v", merged.Financials)
	}
	if merged.Version != 6 {
		t.Fatalf("version = %d, want 6", merged.Version)
	}
	if StageOf(merged) != StageArchived {
		t.Fatalf("stage = %s", StageOf(merged))
	}
}

func TestMerge_ExplicitUnarchiveWins(t *testing.T) {
	local, _ := Archive(workOrder(t), now)
	local.Version = 3
	remote, _ := Unarchive(local, now)
	remote.Version = 4

	merged, _ := Merge(local, remote)
	if merged.Status != entities.EstimateStatusWorkOrder || merged.ArchivedFrom != "" {
		t.Fatalf("status = %s archivedFrom = %q", merged.Status, merged.ArchivedFrom)
	}

	// a newer archive on the remote side hides a live local record
	live := workOrder(t)
	live.Version = 4
	hidden, _ := Archive(workOrder(t), now)
	hidden.Version = 5
	merged, _ = Merge(live, hidden)
	if merged.Status != entities.EstimateStatusArchived || merged.ArchivedFrom != entities.EstimateStatusWorkOrder {
		t.Fatalf("status = %s archivedFrom = %q", merged.Status, merged.ArchivedFrom)
	}
}
