package api

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/advancesalary"
	"github.com/peopledesk/peopledesk/pkg/transport"
)

type AdvanceSalaryEndpoints struct {
	client *transport.Client
}

func NewAdvanceSalaryEndpoints(client *transport.Client) *AdvanceSalaryEndpoints {
	return &AdvanceSalaryEndpoints{client: client}
}

// FetchAll returns the caller's requests, newest first, wrapped in a
// "requests" field.
func (e *AdvanceSalaryEndpoints) FetchAll(ctx context.Context) ([]advancesalary.Request, error) {
	resp, err := transport.Get[[]advancesalary.Request](ctx, e.client, "/advance-salary", transport.Named("requests"))
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (e *AdvanceSalaryEndpoints) Create(ctx context.Context, data *advancesalary.CreateDTO) (advancesalary.Request, error) {
	resp, err := transport.Post[advancesalary.Request](ctx, e.client, "/advance-salary", data, transport.Named("request"))
	if err != nil {
		return advancesalary.Request{}, err
	}
	return resp.Data, nil
}

func (e *AdvanceSalaryEndpoints) Cancel(ctx context.Context, id string) (string, error) {
	_, err := transport.Delete[struct{}](ctx, e.client, "/advance-salary/"+id, transport.Bare())
	if err != nil {
		return "", err
	}
	return id, nil
}
