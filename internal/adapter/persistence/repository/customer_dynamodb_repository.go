package repository

import (
	"context"
	"fmt"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase/interfaces"
)

const defaultCustomersTableName = "customers"

// CustomerDynamoRepository persists CRM customers (PK: id).
type CustomerDynamoRepository struct {
	table dynamoTable[entities.CustomerProfile]
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(api DynamoAPI, table string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		table: dynamoTable[entities.CustomerProfile]{api: api, name: tableName(table, "CUSTOMERS_TABLE", defaultCustomersTableName)},
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error) {
	c.Version = 1
	if err := r.table.create(ctx, c); err != nil {
		if isConditionFailed(err) {
			return entities.CustomerProfile{}, fmt.Errorf("%w: customer %s already exists", interfaces.ErrVersionConflict, c.ID)
		}
		return entities.CustomerProfile{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.CustomerProfile, error) {
	c, _, err := r.table.get(ctx, id)
	return c, err
}

// Update writes c when the stored version still equals c.Version. It returns a
// zero value when the customer does not exist.
func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error) {
	expected := c.Version
	c.Version = expected + 1
	if err := r.table.replaceVersion(ctx, c, expected); err != nil {
		if !isConditionFailed(err) {
			return entities.CustomerProfile{}, err
		}
		_, exists, getErr := r.table.get(ctx, c.ID)
		if getErr != nil {
			return entities.CustomerProfile{}, getErr
		}
		if !exists {
			return entities.CustomerProfile{}, nil
		}
		return entities.CustomerProfile{}, fmt.Errorf("%w: customer %s version %d", interfaces.ErrVersionConflict, c.ID, expected)
	}
	return c, nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.CustomerProfile, error) {
	out, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	sortByKey(out, func(c entities.CustomerProfile) string { return c.Name + c.ID })
	return out, nil
}
