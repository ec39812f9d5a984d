package persistence

import (
	"context"
	"sync"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/payroll/modules/payroll/domain/aggregates/employee"
)

// InMemoryEmployeeRepository keeps the registry for the lifetime of the
// process. Records are held in insertion order; a code index backs the
// uniqueness checks. Codes match case-sensitively.
type InMemoryEmployeeRepository struct {
	mu      sync.RWMutex
	records []employee.Record
	byCode  map[string]int
}

func NewEmployeeRepository() employee.Repository {
	return &InMemoryEmployeeRepository{byCode: make(map[string]int)}
}

func (r *InMemoryEmployeeRepository) Create(_ context.Context, rec employee.Record) (employee.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byCode[rec.Code()]; taken {
		return nil, gerrors.Wrap(employee.ErrDuplicateCode, rec.Code())
	}

	stored := rec.WithRecordID(uuid.New())
	r.byCode[stored.Code()] = len(r.records)
	r.records = append(r.records, stored)
	return stored, nil
}

func (r *InMemoryEmployeeRepository) GetAll(_ context.Context) ([]employee.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *InMemoryEmployeeRepository) GetByCode(_ context.Context, code string) (employee.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byCode[code]
	if !ok {
		return nil, employee.ErrNotFound
	}
	return r.records[i], nil
}

func (r *InMemoryEmployeeRepository) Exists(_ context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byCode[code]
	return ok, nil
}

func (r *InMemoryEmployeeRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.records)), nil
}
