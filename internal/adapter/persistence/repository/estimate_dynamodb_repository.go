package repository

import (
	"context"
	"fmt"
	"strconv"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesCustomerIDIndex  = "customerId-index"
)

// estimateItem keeps the attributes the table is keyed and indexed on next
// to the full record.
type estimateItem struct {
	ID         string                  `json:"id"`
	CustomerID string                  `json:"customerId,omitempty"`
	Status     string                  `json:"status"`
	Version    int64                   `json:"version"`
	UpdatedAt  string                  `json:"updatedAt,omitempty"`
	Record     entities.EstimateRecord `json:"record"`
}

// EstimateDynamoRepository persists estimate records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customerId-index (PK: customerId)
//
// Updates are conditional on the stored version so two actors editing the
// same job cannot overwrite each other.
type EstimateDynamoRepository struct {
	table dynamoTable[estimateItem]
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(api DynamoAPI, table string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		table: dynamoTable[estimateItem]{api: api, name: tableName(table, "ESTIMATES_TABLE", defaultEstimatesTableName)},
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, rec entities.EstimateRecord) (entities.EstimateRecord, error) {
	rec.Version = 1
	if err := r.table.create(ctx, toEstimateItem(rec)); err != nil {
		if isConditionFailed(err) {
			return entities.EstimateRecord{}, fmt.Errorf("%w: estimate %s already exists", interfaces.ErrVersionConflict, rec.ID)
		}
		return entities.EstimateRecord{}, err
	}
	return rec, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	it, found, err := r.table.get(ctx, id)
	if err != nil || !found {
		return entities.EstimateRecord{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) Update(ctx context.Context, rec entities.EstimateRecord) (entities.EstimateRecord, error) {
	expected := rec.Version
	rec.Version = expected + 1
	err := r.table.put(ctx, toEstimateItem(rec),
		"#version = :expected",
		map[string]string{"#version": "version"},
		map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	)
	if err != nil {
		if isConditionFailed(err) {
			return entities.EstimateRecord{}, fmt.Errorf("%w: estimate %s version %d", interfaces.ErrVersionConflict, rec.ID, expected)
		}
		return entities.EstimateRecord{}, err
	}
	return rec, nil
}

func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.EstimateRecord, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	return fromEstimateItems(items), nil
}

func (r *EstimateDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.EstimateRecord, error) {
	items, err := r.table.query(ctx, estimatesCustomerIDIndex, "customerId", customerID)
	if err != nil {
		return nil, err
	}
	return fromEstimateItems(items), nil
}

func toEstimateItem(rec entities.EstimateRecord) estimateItem {
	return estimateItem{
		ID:         rec.ID,
		CustomerID: rec.CustomerID,
		Status:     string(rec.Status),
		Version:    rec.Version,
		UpdatedAt:  rec.UpdatedAt,
		Record:     rec,
	}
}

func fromEstimateItem(it estimateItem) entities.EstimateRecord {
	rec := it.Record
	rec.ID = it.ID
	rec.Version = it.Version
	return rec
}

func fromEstimateItems(items []estimateItem) []entities.EstimateRecord {
	out := make([]entities.EstimateRecord, 0, len(items))
	for _, it := range items {
		out = append(out, fromEstimateItem(it))
	}
	sortByKey(out, func(r entities.EstimateRecord) string { return r.Date + r.ID })
	return out
}
