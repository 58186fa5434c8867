package repository

import (
	"context"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase/interfaces"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsEstimateIDIndex  = "estimateId-index"
)

// BillingPaymentDynamoRepository persists BillingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimateId-index (PK: estimateId)
type BillingPaymentDynamoRepository struct {
	table dynamoTable[entities.BillingPayment]
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentDynamoRepository)(nil)

func NewBillingPaymentDynamoRepository(api DynamoAPI, table string) *BillingPaymentDynamoRepository {
	return &BillingPaymentDynamoRepository{
		table: dynamoTable[entities.BillingPayment]{api: api, name: tableName(table, "PAYMENTS_TABLE", defaultPaymentsTableName)},
	}
}

func (r *BillingPaymentDynamoRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	if err := r.table.create(ctx, p); err != nil {
		return entities.BillingPayment{}, err
	}
	return p, nil
}

func (r *BillingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	p, _, err := r.table.get(ctx, id)
	return p, err
}

func (r *BillingPaymentDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.BillingPayment, error) {
	out, err := r.table.query(ctx, paymentsEstimateIDIndex, "estimateId", estimateID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.BillingPayment{}
	}
	return out, nil
}
