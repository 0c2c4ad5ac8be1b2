package services

import (
	"context"
	"time"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/employee"
	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/salaryslip"
	"github.com/peopledesk/peopledesk/pkg/crud"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
)

type EmployeeAPI interface {
	FetchAll(ctx context.Context) ([]employee.Employee, error)
}

type EmployeeService struct {
	store    *crud.Store[employee.Employee]
	fetchAll *crud.Operation[struct{}, []employee.Employee]
}

func NewEmployeeService(endpoints EmployeeAPI, publisher eventbus.EventBus) *EmployeeService {
	st := crud.NewStore[employee.Employee]("employees")
	s := &EmployeeService{store: st}
	s.fetchAll = crud.NewFetchAll(st, func(ctx context.Context, _ struct{}) ([]employee.Employee, error) {
		return endpoints.FetchAll(ctx)
	}).WithBus(publisher)
	return s
}

func (s *EmployeeService) Store() *crud.Store[employee.Employee] { return s.store }

func (s *EmployeeService) Fetch(ctx context.Context) error {
	_, err := s.fetchAll.Dispatch(ctx, struct{}{})
	return err
}

// Celebrations buckets the directory's birthdays and anniversaries
// around now for the dashboard widget.
func (s *EmployeeService) Celebrations(now time.Time) employee.Buckets {
	return employee.Celebrations(now, s.store.Items())
}

type SalarySlipAPI interface {
	FetchAll(ctx context.Context) ([]salaryslip.Slip, error)
}

type SalarySlipService struct {
	store    *crud.Store[salaryslip.Slip]
	fetchAll *crud.Operation[struct{}, []salaryslip.Slip]
}

func NewSalarySlipService(endpoints SalarySlipAPI, publisher eventbus.EventBus) *SalarySlipService {
	st := crud.NewStore[salaryslip.Slip]("salarySlips")
	s := &SalarySlipService{store: st}
	s.fetchAll = crud.NewFetchAll(st, func(ctx context.Context, _ struct{}) ([]salaryslip.Slip, error) {
		return endpoints.FetchAll(ctx)
	}).WithBus(publisher)
	return s
}

func (s *SalarySlipService) Store() *crud.Store[salaryslip.Slip] { return s.store }

func (s *SalarySlipService) Fetch(ctx context.Context) error {
	_, err := s.fetchAll.Dispatch(ctx, struct{}{})
	return err
}
