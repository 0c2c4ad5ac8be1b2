// Package api is the REST boundary of the help desk module.
package api

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/helpdesk/domain/aggregates/ticket"
	"github.com/peopledesk/peopledesk/pkg/transport"
)

type TicketEndpoints struct {
	client *transport.Client
}

func NewTicketEndpoints(client *transport.Client) *TicketEndpoints {
	return &TicketEndpoints{client: client}
}

// FetchAll wraps its payload in a "tickets" field.
func (e *TicketEndpoints) FetchAll(ctx context.Context) ([]ticket.Ticket, error) {
	resp, err := transport.Get[[]ticket.Ticket](ctx, e.client, "/helpdesk/tickets", transport.Named("tickets"))
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (e *TicketEndpoints) Create(ctx context.Context, data *ticket.CreateDTO) (ticket.Ticket, error) {
	resp, err := transport.Post[ticket.Ticket](ctx, e.client, "/helpdesk/tickets", data, transport.DataField())
	if err != nil {
		return ticket.Ticket{}, err
	}
	return resp.Data, nil
}

func (e *TicketEndpoints) SetStatus(ctx context.Context, id, status string) (ticket.Ticket, error) {
	body := map[string]string{"status": status}
	resp, err := transport.Put[ticket.Ticket](ctx, e.client, "/helpdesk/tickets/"+id+"/status", body, transport.DataField())
	if err != nil {
		return ticket.Ticket{}, err
	}
	return resp.Data, nil
}
