package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase/interfaces"
)

// EstimateMemoryRepository is the in-memory IEstimateRepository. Records are
// deep-copied on the way in and out so callers never share slices with the
// store.
type EstimateMemoryRepository struct {
	store *memoryStore[entities.EstimateRecord]
}

var _ interfaces.IEstimateRepository = (*EstimateMemoryRepository)(nil)

func NewEstimateMemoryRepository() *EstimateMemoryRepository {
	return &EstimateMemoryRepository{store: newMemoryStore[entities.EstimateRecord]()}
}

func cloneRecord(rec entities.EstimateRecord) (entities.EstimateRecord, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	var out entities.EstimateRecord
	err = json.Unmarshal(b, &out)
	return out, err
}

func (r *EstimateMemoryRepository) Create(_ context.Context, rec entities.EstimateRecord) (entities.EstimateRecord, error) {
	rec.Version = 1
	stored, err := cloneRecord(rec)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if !r.store.insert(rec.ID, stored) {
		return entities.EstimateRecord{}, fmt.Errorf("%w: estimate %s already exists", interfaces.ErrVersionConflict, rec.ID)
	}
	return rec, nil
}

func (r *EstimateMemoryRepository) GetByID(_ context.Context, id string) (entities.EstimateRecord, error) {
	rec, ok := r.store.get(id)
	if !ok {
		return entities.EstimateRecord{}, nil
	}
	return cloneRecord(rec)
}

func (r *EstimateMemoryRepository) Update(_ context.Context, rec entities.EstimateRecord) (entities.EstimateRecord, error) {
	expected := rec.Version
	rec.Version = expected + 1
	stored, err := cloneRecord(rec)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	ok := r.store.swap(rec.ID, stored, func(cur entities.EstimateRecord, exists bool) bool {
		return exists && cur.Version == expected
	})
	if !ok {
		return entities.EstimateRecord{}, fmt.Errorf("%w: estimate %s version %d", interfaces.ErrVersionConflict, rec.ID, expected)
	}
	return rec, nil
}

func (r *EstimateMemoryRepository) List(_ context.Context) ([]entities.EstimateRecord, error) {
	return r.list(nil)
}

func (r *EstimateMemoryRepository) ListByCustomerID(_ context.Context, customerID string) ([]entities.EstimateRecord, error) {
	return r.list(func(rec entities.EstimateRecord) bool { return rec.CustomerID == customerID })
}

func (r *EstimateMemoryRepository) list(filter func(entities.EstimateRecord) bool) ([]entities.EstimateRecord, error) {
	recs := r.store.all(filter)
	out := make([]entities.EstimateRecord, 0, len(recs))
	for _, rec := range recs {
		c, err := cloneRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	sortByKey(out, func(r entities.EstimateRecord) string { return r.Date + r.ID })
	return out, nil
}
