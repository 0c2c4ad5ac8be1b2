package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk/modules/billing/domain/aggregates/invoice"
	"github.com/peopledesk/peopledesk/modules/billing/services"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/forms"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type invoiceAPIStub struct {
	invoices []invoice.Invoice
	payments []string
}

func (s *invoiceAPIStub) FetchAll(_ context.Context) ([]invoice.Invoice, error) {
	if len(s.invoices) == 0 {
		return nil, serrors.NewError(serrors.CodeEmptyResult, "No invoices found")
	}
	return s.invoices, nil
}

func (s *invoiceAPIStub) Create(_ context.Context, data *invoice.CreateDTO) (invoice.Invoice, error) {
	inv := invoice.Invoice{
		ID:           fmt.Sprintf("inv-%d", len(s.invoices)+1),
		Number:       data.Number,
		CustomerName: data.CustomerName,
		Status:       invoice.StatusDraft,
	}
	s.invoices = append(s.invoices, inv)
	return inv, nil
}

func (s *invoiceAPIStub) RecordPayment(_ context.Context, id string, data *invoice.PaymentDTO) (invoice.Invoice, error) {
	s.payments = append(s.payments, id)
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices[i].AmountPaid = s.invoices[i].AmountPaid.Add(decimal.NewFromFloat(data.Amount))
			return s.invoices[i], nil
		}
	}
	return invoice.Invoice{}, serrors.NewError(serrors.CodeEmptyResult, "no invoice found")
}

func (s *invoiceAPIStub) Delete(_ context.Context, id string) (string, error) {
	for i, inv := range s.invoices {
		if inv.ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			break
		}
	}
	return id, nil
}

func newBus() eventbus.EventBus {
	return eventbus.NewEventPublisher(logrus.New())
}

func TestInvoiceService_EmptyListIsNotAnError(t *testing.T) {
	svc := services.NewInvoiceService(&invoiceAPIStub{}, newBus())
	require.NoError(t, svc.Fetch(context.Background()))
	require.Equal(t, 0, svc.Store().Len())
	require.NoError(t, svc.Store().Err())
}

func TestInvoiceService_CreateRequiresLineItems(t *testing.T) {
	stub := &invoiceAPIStub{}
	svc := services.NewInvoiceService(stub, newBus())

	svc.Dialog().OpenForCreate(&invoice.CreateDTO{
		Number:       "INV-1",
		CustomerName: "Acme",
		DueDate:      "2100-01-01",
	})

	err := svc.SubmitCreate(context.Background())
	require.ErrorIs(t, err, forms.ErrValidationFailed)
	require.Empty(t, stub.invoices)
	require.Contains(t, svc.Dialog().FieldErrors(), "Items")
}

func TestInvoiceService_CreateAndPay(t *testing.T) {
	stub := &invoiceAPIStub{}
	svc := services.NewInvoiceService(stub, newBus())

	svc.Dialog().OpenForCreate(&invoice.CreateDTO{
		Number:       "INV-1",
		CustomerName: "Acme",
		DueDate:      "2100-01-01",
		Items: []invoice.LineItemDTO{
			{Description: "Consulting", Quantity: 4, Rate: 25},
		},
	})
	require.NoError(t, svc.SubmitCreate(context.Background()))
	require.Equal(t, 1, svc.Store().Len())
	require.Equal(t, forms.ModeClosed, svc.Dialog().Mode())

	require.NoError(t, svc.RecordPayment(context.Background(), "inv-1", &invoice.PaymentDTO{Amount: 50}))
	inv, ok := svc.Store().Find("inv-1")
	require.True(t, ok)
	require.True(t, inv.AmountPaid.Equal(decimal.NewFromInt(50)))

	err := svc.RecordPayment(context.Background(), "inv-1", &invoice.PaymentDTO{Amount: 0})
	require.Error(t, err)
	require.Equal(t, serrors.CodeValidation, serrors.Code(err))
	require.Equal(t, []string{"inv-1"}, stub.payments)
}

func TestInvoiceService_Delete(t *testing.T) {
	stub := &invoiceAPIStub{invoices: []invoice.Invoice{{ID: "inv-1"}, {ID: "inv-2"}}}
	svc := services.NewInvoiceService(stub, newBus())
	require.NoError(t, svc.Fetch(context.Background()))

	require.NoError(t, svc.Delete(context.Background(), "inv-1"))
	require.Equal(t, 1, svc.Store().Len())
	_, ok := svc.Store().Find("inv-1")
	require.False(t, ok)
}
