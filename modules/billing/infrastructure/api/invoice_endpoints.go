// Package api is the REST boundary of the billing module.
package api

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/billing/domain/aggregates/invoice"
	"github.com/peopledesk/peopledesk/pkg/transport"
)

type InvoiceEndpoints struct {
	client *transport.Client
}

func NewInvoiceEndpoints(client *transport.Client) *InvoiceEndpoints {
	return &InvoiceEndpoints{client: client}
}

// FetchAll wraps its payload in an "invoices" field.
func (e *InvoiceEndpoints) FetchAll(ctx context.Context) ([]invoice.Invoice, error) {
	resp, err := transport.Get[[]invoice.Invoice](ctx, e.client, "/invoices", transport.Named("invoices"))
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (e *InvoiceEndpoints) Create(ctx context.Context, data *invoice.CreateDTO) (invoice.Invoice, error) {
	resp, err := transport.Post[invoice.Invoice](ctx, e.client, "/invoices", data, transport.DataField())
	if err != nil {
		return invoice.Invoice{}, err
	}
	return resp.Data, nil
}

func (e *InvoiceEndpoints) RecordPayment(ctx context.Context, id string, data *invoice.PaymentDTO) (invoice.Invoice, error) {
	resp, err := transport.Post[invoice.Invoice](ctx, e.client, "/invoices/"+id+"/payments", data, transport.DataField())
	if err != nil {
		return invoice.Invoice{}, err
	}
	return resp.Data, nil
}

func (e *InvoiceEndpoints) Delete(ctx context.Context, id string) (string, error) {
	_, err := transport.Delete[struct{}](ctx, e.client, "/invoices/"+id, transport.Bare())
	if err != nil {
		return "", err
	}
	return id, nil
}
