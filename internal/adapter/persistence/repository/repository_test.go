package repository

import (
	"context"
	"errors"
	"testing"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records the last request and returns canned responses.
type fakeDynamo struct {
	lastPut   *dynamodb.PutItemInput
	putErr    error
	getItem   map[string]types.AttributeValue
	pages     [][]map[string]types.AttributeValue
	lastQuery *dynamodb.QueryInput
	batches   int
	leftover  int
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) page(i int) ([]map[string]types.AttributeValue, map[string]types.AttributeValue) {
	if i >= len(f.pages) {
		return nil, nil
	}
	var next map[string]types.AttributeValue
	if i+1 < len(f.pages) {
		next = map[string]types.AttributeValue{"page": &types.AttributeValueMemberN{Value: "1"}}
	}
	return f.pages[i], next
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQuery = in
	i := 0
	if in.ExclusiveStartKey != nil {
		i = 1
	}
	items, next := f.page(i)
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: next}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	i := 0
	if in.ExclusiveStartKey != nil {
		i = 1
	}
	items, next := f.page(i)
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: next}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.batches++
	out := &dynamodb.BatchWriteItemOutput{}
	if f.leftover > 0 {
		f.leftover--
		for table, reqs := range in.RequestItems {
			out.UnprocessedItems = map[string][]types.WriteRequest{table: reqs[:1]}
		}
	}
	return out, nil
}

func TestEstimateDynamoRepository_Update(t *testing.T) {
	ctx := context.Background()
	rec := entities.EstimateRecord{ID: "est-1", CustomerID: "cust-1", Status: entities.EstimateStatusWorkOrder, Version: 3}

	t.Run("conditional write on version", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewEstimateDynamoRepository(fake, "estimates-test")
		out, err := repo.Update(ctx, rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Version != 4 {
			t.Fatalf("version = %d, want 4", out.Version)
		}
		in := fake.lastPut
		if aws.ToString(in.TableName) != "estimates-test" || aws.ToString(in.ConditionExpression) != "#version = :expected" {
			t.Fatalf("unexpected put: %s %s", aws.ToString(in.TableName), aws.ToString(in.ConditionExpression))
		}
		if v := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value; v != "3" {
			t.Fatalf("expected version = %s", v)
		}
		if v := in.Item["version"].(*types.AttributeValueMemberN).Value; v != "4" {
			t.Fatalf("stored version = %s", v)
		}
		if v := in.Item["customerId"].(*types.AttributeValueMemberS).Value; v != "cust-1" {
			t.Fatalf("customerId = %s", v)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		fake := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{Message: aws.String("nope")}}
		repo := NewEstimateDynamoRepository(fake, "")
		if _, err := repo.Update(ctx, rec); !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})
}

func TestEstimateDynamoRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDynamo{}
	repo := NewEstimateDynamoRepository(fake, "")
	rate := 70.0
	rec := entities.EstimateRecord{
		ID:              "est-1",
		Status:          entities.EstimateStatusInvoiced,
		ExecutionStatus: entities.ExecutionCompleted,
		Actuals:         &entities.Actuals{OpenCellSets: 1.5, CompletedBy: "sam"},
		Expenses:        entities.EstimateExpenses{ManHours: 12, LaborRate: &rate},
		Financials:      &entities.FinancialSnapshot{Revenue: 5000, NetProfit: 1200},
		Materials:       entities.Materials{OpenCellSets: 1.25, Inventory: []entities.InventoryItem{{ID: "tape", Quantity: 2}}},
	}
	if _, err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	if aws.ToString(fake.lastPut.ConditionExpression) != "attribute_not_exists(#id)" {
		t.Fatalf("create must not overwrite")
	}

	fake.getItem = fake.lastPut.Item
	got, err := repo.GetByID(ctx, "est-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Version != 1 || got.Actuals == nil || got.Actuals.OpenCellSets != 1.5 || *got.Expenses.LaborRate != 70 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Financials.NetProfit != 1200 || got.Materials.Inventory[0].ID != "tape" {
		t.Fatalf("nested fields lost: %+v", got)
	}

	fake.getItem = nil
	if got, err := repo.GetByID(ctx, "missing"); err != nil || got.ID != "" {
		t.Fatalf("missing record: %+v %v", got, err)
	}
}

func TestEstimateDynamoRepository_ListPages(t *testing.T) {
	ctx := context.Background()
	a, _ := marshalItem(toEstimateItem(entities.EstimateRecord{ID: "b", Date: "2026-01-02", CustomerID: "c1"}))
	b, _ := marshalItem(toEstimateItem(entities.EstimateRecord{ID: "a", Date: "2026-01-01", CustomerID: "c1"}))
	fake := &fakeDynamo{pages: [][]map[string]types.AttributeValue{{a}, {b}}}
	repo := NewEstimateDynamoRepository(fake, "")

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "a" {
		t.Fatalf("unexpected list: %+v", got)
	}

	if _, err := repo.ListByCustomerID(ctx, "c1"); err != nil {
		t.Fatal(err)
	}
	if aws.ToString(fake.lastQuery.IndexName) != estimatesCustomerIDIndex {
		t.Fatalf("index = %s", aws.ToString(fake.lastQuery.IndexName))
	}
}

func TestWarehouseDynamoRepository_PutItemsRetriesUnprocessed(t *testing.T) {
	fake := &fakeDynamo{leftover: 1}
	repo := NewWarehouseDynamoRepository(fake, "")
	items := make([]entities.WarehouseItem, 30)
	for i := range items {
		items[i] = entities.WarehouseItem{ID: string(rune('a' + i%26)), Name: "x"}
	}
	if err := repo.PutItems(context.Background(), items); err != nil {
		t.Fatal(err)
	}
	// 25 + 5, plus one retry for the unprocessed item
	if fake.batches != 3 {
		t.Fatalf("batches = %d, want 3", fake.batches)
	}
}

func TestPurchaseOrderDynamoRepository_UpdateOnlyWhileOrdered(t *testing.T) {
	fake := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}
	repo := NewPurchaseOrderDynamoRepository(fake, "")
	_, err := repo.Update(context.Background(), entities.PurchaseOrder{ID: "po-1", Status: entities.PurchaseOrderReceived})
	if !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestEstimateMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEstimateMemoryRepository()

	created, err := repo.Create(ctx, entities.EstimateRecord{ID: "est-1", CustomerID: "c1", Status: entities.EstimateStatusDraft})
	if err != nil || created.Version != 1 {
		t.Fatalf("create: %+v %v", created, err)
	}
	if _, err := repo.Create(ctx, created); !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("duplicate create: %v", err)
	}

	office, _ := repo.GetByID(ctx, "est-1")
	crew, _ := repo.GetByID(ctx, "est-1")

	office.Status = entities.EstimateStatusWorkOrder
	updated, err := repo.Update(ctx, office)
	if err != nil || updated.Version != 2 {
		t.Fatalf("update: %+v %v", updated, err)
	}

	crew.Notes = "stale edit"
	if _, err := repo.Update(ctx, crew); !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("stale update: expected ErrVersionConflict, got %v", err)
	}

	got, _ := repo.GetByID(ctx, "est-1")
	if got.Status != entities.EstimateStatusWorkOrder || got.Notes != "" {
		t.Fatalf("stale write leaked: %+v", got)
	}

	byCustomer, _ := repo.ListByCustomerID(ctx, "c1")
	if len(byCustomer) != 1 {
		t.Fatalf("by customer = %d", len(byCustomer))
	}
	if missing, _ := repo.GetByID(ctx, "nope"); missing.ID != "" {
		t.Fatalf("expected zero record")
	}
}

func TestEstimateMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewEstimateMemoryRepository()
	_, _ = repo.Create(ctx, entities.EstimateRecord{ID: "e", Materials: entities.Materials{Inventory: []entities.InventoryItem{{ID: "tape", Quantity: 1}}}})

	got, _ := repo.GetByID(ctx, "e")
	got.Materials.Inventory[0].Quantity = 50

	again, _ := repo.GetByID(ctx, "e")
	if again.Materials.Inventory[0].Quantity != 1 {
		t.Fatalf("caller mutated stored record")
	}
}

func TestPurchaseOrderMemoryRepository_ReceiveOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewPurchaseOrderMemoryRepository()
	po := entities.PurchaseOrder{ID: "po-1", Status: entities.PurchaseOrderOrdered}
	if _, err := repo.Create(ctx, po); err != nil {
		t.Fatal(err)
	}
	po.Status = entities.PurchaseOrderReceived
	if _, err := repo.Update(ctx, po); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Update(ctx, po); !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestCustomerDynamoRepository_Update(t *testing.T) {
	ctx := context.Background()
	conflict := &types.ConditionalCheckFailedException{Message: aws.String("nope")}

	t.Run("conditional write on version", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewCustomerDynamoRepository(fake, "customers-test")
		out, err := repo.Update(ctx, entities.CustomerProfile{ID: "c1", Name: "Ann", Version: 2})
		if err != nil || out.Version != 3 {
			t.Fatalf("unexpected update: %+v %v", out, err)
		}
		in := fake.lastPut
		if aws.ToString(in.ConditionExpression) != "#version = :expected" {
			t.Fatalf("condition = %s", aws.ToString(in.ConditionExpression))
		}
		if v := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value; v != "2" {
			t.Fatalf("expected version = %s", v)
		}
	})

	t.Run("unversioned item", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewCustomerDynamoRepository(fake, "")
		if _, err := repo.Update(ctx, entities.CustomerProfile{ID: "c1", Name: "Ann"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := fake.lastPut
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND attribute_not_exists(#version)" || len(in.ExpressionAttributeValues) != 0 {
			t.Fatalf("unexpected put: %s %v", aws.ToString(in.ConditionExpression), in.ExpressionAttributeValues)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		stored, _ := marshalItem(entities.CustomerProfile{ID: "c1", Name: "Ann", Version: 5})
		repo := NewCustomerDynamoRepository(&fakeDynamo{putErr: conflict, getItem: stored}, "")
		if _, err := repo.Update(ctx, entities.CustomerProfile{ID: "c1", Version: 4}); !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		repo := NewCustomerDynamoRepository(&fakeDynamo{putErr: conflict}, "")
		out, err := repo.Update(ctx, entities.CustomerProfile{ID: "ghost", Version: 1})
		if err != nil || out.ID != "" {
			t.Fatalf("expected zero value, got %+v %v", out, err)
		}
	})
}

func TestCustomerMemoryRepository_Versioned(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerMemoryRepository()
	c, _ := repo.Create(ctx, entities.CustomerProfile{ID: "c1", Name: "Ann"})
	if c.Version != 1 {
		t.Fatalf("created version = %d", c.Version)
	}
	c.Logs = []entities.CommunicationLogEntry{{ID: "l1", Content: "call"}}
	saved, err := repo.Update(ctx, c)
	if err != nil || saved.Version != 2 {
		t.Fatalf("unexpected update: %+v %v", saved, err)
	}
	if _, err := repo.Update(ctx, c); !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	stored, _ := repo.GetByID(ctx, "c1")
	if len(stored.Logs) != 1 || stored.Version != 2 {
		t.Fatalf("unexpected stored: %+v", stored)
	}
	if out, err := repo.Update(ctx, entities.CustomerProfile{ID: "ghost"}); err != nil || out.ID != "" {
		t.Fatalf("expected zero value, got %+v %v", out, err)
	}
}

func TestTableName(t *testing.T) {
	t.Setenv("CUSTOMERS_TABLE", "from-env")
	if got := tableName("configured", "CUSTOMERS_TABLE", "def"); got != "configured" {
		t.Fatalf("got %s", got)
	}
	if got := tableName("", "CUSTOMERS_TABLE", "def"); got != "from-env" {
		t.Fatalf("got %s", got)
	}
	if got := tableName("", "UNSET_TABLE_VAR", "def"); got != "def" {
		t.Fatalf("got %s", got)
	}
}
