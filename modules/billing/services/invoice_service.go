package services

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/billing/domain/aggregates/invoice"
	"github.com/peopledesk/peopledesk/pkg/crud"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/forms"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type InvoiceAPI interface {
	FetchAll(ctx context.Context) ([]invoice.Invoice, error)
	Create(ctx context.Context, data *invoice.CreateDTO) (invoice.Invoice, error)
	RecordPayment(ctx context.Context, id string, data *invoice.PaymentDTO) (invoice.Invoice, error)
	Delete(ctx context.Context, id string) (string, error)
}

type InvoiceService struct {
	store  *crud.Store[invoice.Invoice]
	dialog *forms.Dialog[*invoice.CreateDTO]

	fetchAll *crud.Operation[struct{}, []invoice.Invoice]
	create   *crud.Operation[*invoice.CreateDTO, invoice.Invoice]
	payment  *crud.Operation[paymentArgs, invoice.Invoice]
	remove   *crud.Operation[string, string]
}

type paymentArgs struct {
	ID   string
	Data *invoice.PaymentDTO
}

func NewInvoiceService(endpoints InvoiceAPI, publisher eventbus.EventBus) *InvoiceService {
	st := crud.NewStore[invoice.Invoice]("invoices")
	s := &InvoiceService{store: st}

	s.fetchAll = crud.NewFetchAll(st, func(ctx context.Context, _ struct{}) ([]invoice.Invoice, error) {
		return endpoints.FetchAll(ctx)
	}).WithBus(publisher)

	s.create = crud.NewCreate(st, endpoints.Create).
		WithSuccess("Invoice created").
		WithBus(publisher)

	s.payment = crud.NewUpdate(st, func(ctx context.Context, args paymentArgs) (invoice.Invoice, error) {
		return endpoints.RecordPayment(ctx, args.ID, args.Data)
	}).
		Named("invoices.recordPayment").
		WithActionKey(func(args paymentArgs) string { return "payment:" + args.ID }).
		WithSuccess("Payment recorded").
		WithBus(publisher)

	s.remove = crud.NewDelete(st, endpoints.Delete).
		WithActionKey(func(id string) string { return "delete:" + id }).
		WithSuccess("Invoice deleted").
		WithBus(publisher)

	s.dialog = forms.NewDialog[*invoice.CreateDTO](func(ctx context.Context) {
		_ = s.Fetch(ctx)
	})
	return s
}

func (s *InvoiceService) Store() *crud.Store[invoice.Invoice]      { return s.store }
func (s *InvoiceService) Dialog() *forms.Dialog[*invoice.CreateDTO] { return s.dialog }

func (s *InvoiceService) Fetch(ctx context.Context) error {
	_, err := s.fetchAll.Dispatch(ctx, struct{}{})
	return err
}

func (s *InvoiceService) SubmitCreate(ctx context.Context) error {
	return s.dialog.Submit(ctx, func(ctx context.Context, draft *invoice.CreateDTO) error {
		_, err := s.create.Dispatch(ctx, draft)
		return err
	})
}

// RecordPayment validates the payment draft, dispatches it and refetches.
func (s *InvoiceService) RecordPayment(ctx context.Context, id string, data *invoice.PaymentDTO) error {
	if fieldErrors, ok := data.Ok(ctx); !ok {
		return serrors.NewError(serrors.CodeValidation, firstMessage(fieldErrors))
	}
	if _, err := s.payment.Dispatch(ctx, paymentArgs{ID: id, Data: data}); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	if _, err := s.remove.Dispatch(ctx, id); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

func firstMessage(errs serrors.ValidationErrors) string {
	for _, msg := range errs {
		return msg
	}
	return "validation failed"
}
