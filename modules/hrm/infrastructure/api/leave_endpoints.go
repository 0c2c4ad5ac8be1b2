package api

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/leave"
	"github.com/peopledesk/peopledesk/pkg/transport"
)

type LeaveEndpoints struct {
	client *transport.Client
}

func NewLeaveEndpoints(client *transport.Client) *LeaveEndpoints {
	return &LeaveEndpoints{client: client}
}

func (e *LeaveEndpoints) FetchAll(ctx context.Context) ([]leave.Request, error) {
	resp, err := transport.Get[[]leave.Request](ctx, e.client, "/leave", transport.DataField())
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (e *LeaveEndpoints) Create(ctx context.Context, data *leave.CreateDTO) (leave.Request, error) {
	resp, err := transport.Post[leave.Request](ctx, e.client, "/leave", data, transport.DataField())
	if err != nil {
		return leave.Request{}, err
	}
	return resp.Data, nil
}

func (e *LeaveEndpoints) SetStatus(ctx context.Context, id, status string) (leave.Request, error) {
	body := map[string]string{"status": status}
	resp, err := transport.Put[leave.Request](ctx, e.client, "/leave/"+id+"/status", body, transport.DataField())
	if err != nil {
		return leave.Request{}, err
	}
	return resp.Data, nil
}
