package api

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/employee"
	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/salaryslip"
	"github.com/peopledesk/peopledesk/pkg/transport"
)

type EmployeeEndpoints struct {
	client *transport.Client
}

func NewEmployeeEndpoints(client *transport.Client) *EmployeeEndpoints {
	return &EmployeeEndpoints{client: client}
}

func (e *EmployeeEndpoints) FetchAll(ctx context.Context) ([]employee.Employee, error) {
	resp, err := transport.Get[[]employee.Employee](ctx, e.client, "/employees", transport.DataField())
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

type SalarySlipEndpoints struct {
	client *transport.Client
}

func NewSalarySlipEndpoints(client *transport.Client) *SalarySlipEndpoints {
	return &SalarySlipEndpoints{client: client}
}

// FetchAll returns the caller's payslips wrapped in a "salarySlips" field.
func (e *SalarySlipEndpoints) FetchAll(ctx context.Context) ([]salaryslip.Slip, error) {
	resp, err := transport.Get[[]salaryslip.Slip](ctx, e.client, "/salary-slips", transport.Named("salarySlips"))
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
