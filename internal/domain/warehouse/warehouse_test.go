package warehouse

import (
	"errors"
	"fmt"
	"testing"

	"foampro/internal/domain/entities"
)

func seqID() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("log-%d", n)
	}
}

func testCatalog() Catalog {
	return NewCatalog([]entities.WarehouseItem{
		{ID: OpenCellStockID, Name: "Open Cell Foam", Quantity: 5, Unit: "sets"},
		{ID: ClosedCellStockID, Name: "Closed Cell Foam", Quantity: 2, Unit: "sets"},
		{ID: "tape", Name: "Tape", Quantity: 10, Unit: "roll", UnitCost: 12.5, MinLevel: 4},
		{ID: "plastic", Name: "Plastic Sheeting", Quantity: 1, Unit: "roll", UnitCost: 40, MinLevel: 2},
	})
}

func TestNewCatalog_AddsChemicalLines(t *testing.T) {
	c := NewCatalog(nil)
	if _, ok := c.Get(OpenCellStockID); !ok {
		t.Fatalf("open cell line missing")
	}
	if _, ok := c.Get(ClosedCellStockID); !ok {
		t.Fatalf("closed cell line missing")
	}
}

func TestSelect_CopiesAndDecouples(t *testing.T) {
	c := testCatalog()
	line, err := Select(c, "tape", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Name != "Tape" || line.UnitCost != 12.5 || line.Quantity != 3 || line.WarehouseItemID != "tape" {
		t.Fatalf("unexpected line: %+v", line)
	}

	c.Items["tape"] = entities.WarehouseItem{ID: "tape", Name: "Tape", UnitCost: 99}
	if line.UnitCost != 12.5 {
		t.Fatalf("line followed catalog price change")
	}

	if _, err := Select(c, "nope", 1); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := Select(c, "tape", -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestConsume_DeductsDeltaOnly(t *testing.T) {
	c := testCatalog()
	ref := JobRef{JobID: "job-1", CustomerName: "Acme", LoggedBy: "crew", Date: "2026-01-01"}
	first := Usage{OpenCellSets: 1.5, ClosedCellSets: 0.5, Inventory: []entities.InventoryItem{{ID: "x", WarehouseItemID: "tape", Quantity: 2}}}

	res := Consume(c, Usage{}, first, ref, seqID())
	if got := res.Catalog.OpenCellSets(); got != 3.5 {
		t.Fatalf("open cell stock = %v, want 3.5", got)
	}
	if got := res.Catalog.ClosedCellSets(); got != 1.5 {
		t.Fatalf("closed cell stock = %v, want 1.5", got)
	}
	if got := res.Catalog.Items["tape"].Quantity; got != 8 {
		t.Fatalf("tape stock = %v, want 8", got)
	}
	if len(res.Log) != 3 || len(res.Changed) != 3 {
		t.Fatalf("expected 3 log entries and 3 changed items, got %d/%d", len(res.Log), len(res.Changed))
	}
	if c.OpenCellSets() != 5 {
		t.Fatalf("input catalog was mutated")
	}

	t.Run("resubmitting the same actuals changes nothing", func(t *testing.T) {
		again := Consume(res.Catalog, first, first, ref, seqID())
		if len(again.Log) != 0 || again.Catalog.OpenCellSets() != 3.5 {
			t.Fatalf("double deduction: %+v", again.Log)
		}
	})

	t.Run("edited actuals deduct the difference", func(t *testing.T) {
		edited := first
		edited.OpenCellSets = 2
		again := Consume(res.Catalog, first, edited, ref, seqID())
		if got := again.Catalog.OpenCellSets(); got != 3 {
			t.Fatalf("open cell stock = %v, want 3", got)
		}
		if len(again.Log) != 1 || again.Log[0].Quantity != 0.5 || again.Log[0].JobID != "job-1" {
			t.Fatalf("unexpected log: %+v", again.Log)
		}
	})
}

func TestConsume_AllowsNegativeStock(t *testing.T) {
	c := testCatalog()
	res := Consume(c, Usage{}, Usage{ClosedCellSets: 3}, JobRef{JobID: "j"}, seqID())
	short := Shortages(res.Catalog)
	if len(short) != 1 || short[0].ID != ClosedCellStockID || short[0].Quantity != -1 {
		t.Fatalf("unexpected shortages: %+v", short)
	}
}

func TestConsume_SkipsUnlinkedLines(t *testing.T) {
	c := testCatalog()
	res := Consume(c, Usage{}, Usage{Inventory: []entities.InventoryItem{{ID: "custom", Name: "Misc", Quantity: 3}}}, JobRef{}, seqID())
	if len(res.Log) != 0 {
		t.Fatalf("unexpected log: %+v", res.Log)
	}
}

func TestLowStock(t *testing.T) {
	low := LowStock(testCatalog().List())
	if len(low) != 1 || low[0].ID != "plastic" {
		t.Fatalf("unexpected low stock: %+v", low)
	}
}

func TestPlanPurchase_RoundsUpAfterNetting(t *testing.T) {
	c := testCatalog()
	m := entities.Materials{
		OpenCellSets:   6.2,
		ClosedCellSets: 1.1,
		Inventory: []entities.InventoryItem{
			{ID: "a", WarehouseItemID: "plastic", Quantity: 2.5},
			{ID: "b", WarehouseItemID: "tape", Quantity: 4},
		},
	}
	lines := PlanPurchase(m, c, entities.ChemicalCosts{OpenCell: 2000, ClosedCell: 2600})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %+v", lines)
	}
	if lines[0].Type != entities.PurchaseLineOpenCell || lines[0].Quantity != 2 || lines[0].Total != 4000 {
		t.Fatalf("unexpected open cell line: %+v", lines[0])
	}
	if lines[1].InventoryID != "plastic" || lines[1].Quantity != 2 || lines[1].Total != 80 {
		t.Fatalf("unexpected plastic line: %+v", lines[1])
	}
	if OrderTotal(lines) != 4080 {
		t.Fatalf("total = %v, want 4080", OrderTotal(lines))
	}
}

func TestReceive_OnlyOnce(t *testing.T) {
	c := testCatalog()
	po := entities.PurchaseOrder{
		ID:     "po-1",
		Status: entities.PurchaseOrderOrdered,
		Items: []entities.PurchaseOrderLine{
			{Type: entities.PurchaseLineOpenCell, Quantity: 4},
			{Type: entities.PurchaseLineInventory, InventoryID: "tape", Quantity: 6},
			{Type: entities.PurchaseLineInventory, Description: "gloves", Quantity: 1},
		},
	}
	out, received, changed, err := Receive(c, po)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OpenCellSets() != 9 || out.Items["tape"].Quantity != 16 {
		t.Fatalf("unexpected stock: oc=%v tape=%v", out.OpenCellSets(), out.Items["tape"].Quantity)
	}
	if received.Status != entities.PurchaseOrderReceived || len(changed) != 2 {
		t.Fatalf("unexpected result: %+v %+v", received, changed)
	}
	if _, _, _, err := Receive(out, received); !errors.Is(err, ErrAlreadyReceived) {
		t.Fatalf("expected ErrAlreadyReceived, got %v", err)
	}
}

func TestEquipment(t *testing.T) {
	gun := entities.EquipmentItem{ID: "g1", Name: "Graco Fusion Gun", Status: entities.EquipmentAvailable}
	seen := entities.LastSeen{JobID: "job-1", CustomerName: "Acme", CrewMember: "Sam", Date: "2026-01-01"}

	out, err := CheckOut(gun, seen)
	if err != nil || out.Status != entities.EquipmentInUse || out.LastSeen.JobID != "job-1" {
		t.Fatalf("checkout: %+v %v", out, err)
	}
	if again, err := CheckOut(out, seen); err != nil || again.Status != entities.EquipmentInUse {
		t.Fatalf("checkout for the same job should be a no-op: %v", err)
	}
	if _, err := CheckOut(out, entities.LastSeen{JobID: "job-2"}); !errors.Is(err, ErrEquipmentUnavailable) {
		t.Fatalf("expected ErrEquipmentUnavailable, got %v", err)
	}

	back := Return(out, seen)
	if back.Status != entities.EquipmentAvailable || back.LastSeen == nil {
		t.Fatalf("return: %+v", back)
	}

	lost, err := SetStatus(back, entities.EquipmentLost)
	if err != nil || lost.Status != entities.EquipmentLost {
		t.Fatalf("set status: %+v %v", lost, err)
	}
	if _, err := CheckOut(lost, seen); !errors.Is(err, ErrEquipmentUnavailable) {
		t.Fatalf("lost tool checked out")
	}
	if _, err := SetStatus(back, "Borrowed"); !errors.Is(err, ErrInvalidEquipmentStatus) {
		t.Fatalf("expected ErrInvalidEquipmentStatus, got %v", err)
	}
}
