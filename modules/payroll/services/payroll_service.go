package services

import (
	"context"

	"github.com/iota-uz/payroll/modules/payroll/domain/aggregates/employee"
	"github.com/iota-uz/payroll/pkg/eventbus"
)

type PayrollService struct {
	repo      employee.Repository
	publisher eventbus.EventBus
}

func NewPayrollService(repo employee.Repository, publisher eventbus.EventBus) *PayrollService {
	return &PayrollService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *PayrollService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *PayrollService) GetAll(ctx context.Context) ([]employee.Record, error) {
	return s.repo.GetAll(ctx)
}

func (s *PayrollService) GetByCode(ctx context.Context, code string) (employee.Record, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *PayrollService) Exists(ctx context.Context, code string) (bool, error) {
	return s.repo.Exists(ctx, code)
}

func (s *PayrollService) CreateFullTime(ctx context.Context, data *employee.CreateFullTimeDTO) (employee.Record, error) {
	return s.create(ctx, data.ToEntity())
}

func (s *PayrollService) CreatePartTime(ctx context.Context, data *employee.CreatePartTimeDTO) (employee.Record, error) {
	return s.create(ctx, data.ToEntity())
}

func (s *PayrollService) CreateContractual(ctx context.Context, data *employee.CreateContractualDTO) (employee.Record, error) {
	return s.create(ctx, data.ToEntity())
}

func (s *PayrollService) create(ctx context.Context, rec employee.Record) (employee.Record, error) {
	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(employee.NewCreatedEvent(created))
	return created, nil
}
