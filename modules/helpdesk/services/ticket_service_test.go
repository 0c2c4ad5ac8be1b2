package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk/modules/helpdesk/domain/aggregates/ticket"
	"github.com/peopledesk/peopledesk/modules/helpdesk/services"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/forms"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type ticketAPIStub struct {
	tickets []ticket.Ticket
	updates []string
}

func (s *ticketAPIStub) FetchAll(_ context.Context) ([]ticket.Ticket, error) {
	return s.tickets, nil
}

func (s *ticketAPIStub) Create(_ context.Context, data *ticket.CreateDTO) (ticket.Ticket, error) {
	tk := ticket.Ticket{
		ID:          fmt.Sprintf("t-%d", len(s.tickets)+1),
		Subject:     data.Subject,
		Description: data.Description,
		Priority:    data.Priority,
		Status:      ticket.StatusOpen,
	}
	s.tickets = append([]ticket.Ticket{tk}, s.tickets...)
	return tk, nil
}

func (s *ticketAPIStub) SetStatus(_ context.Context, id, status string) (ticket.Ticket, error) {
	s.updates = append(s.updates, id+":"+status)
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			s.tickets[i].Status = status
			return s.tickets[i], nil
		}
	}
	return ticket.Ticket{}, serrors.NewError(serrors.CodeEmptyResult, "no ticket found")
}

func newBus() eventbus.EventBus {
	return eventbus.NewEventPublisher(logrus.New())
}

func TestTicketService_InvalidPriorityBlocksCreate(t *testing.T) {
	stub := &ticketAPIStub{}
	svc := services.NewTicketService(stub, newBus())

	svc.Dialog().OpenForCreate(&ticket.CreateDTO{
		Subject:     "Laptop broken",
		Description: "The screen flickers and then goes black",
		Priority:    "critical",
	})

	err := svc.SubmitCreate(context.Background())
	require.ErrorIs(t, err, forms.ErrValidationFailed)
	require.Empty(t, stub.tickets)
	require.Contains(t, svc.Dialog().FieldErrors(), "Priority")
}

func TestTicketService_CreateLandsOnTop(t *testing.T) {
	stub := &ticketAPIStub{tickets: []ticket.Ticket{
		{ID: "t-old", Subject: "Old ticket", Status: ticket.StatusResolved},
	}}
	svc := services.NewTicketService(stub, newBus())
	require.NoError(t, svc.Fetch(context.Background()))

	svc.Dialog().OpenForCreate(&ticket.CreateDTO{
		Subject:     "Laptop broken",
		Description: "The screen flickers and then goes black",
		Priority:    ticket.PriorityHigh,
	})
	require.NoError(t, svc.SubmitCreate(context.Background()))

	items := svc.Store().Items()
	require.Len(t, items, 2)
	require.Equal(t, "Laptop broken", items[0].Subject)
	require.Equal(t, ticket.StatusOpen, items[0].Status)
}

func TestTicketService_TransitionGuard(t *testing.T) {
	stub := &ticketAPIStub{tickets: []ticket.Ticket{
		{ID: "t-1", Subject: "VPN down", Status: ticket.StatusOpen},
		{ID: "t-2", Subject: "Done", Status: ticket.StatusClosed},
	}}
	svc := services.NewTicketService(stub, newBus())
	require.NoError(t, svc.Fetch(context.Background()))

	require.NoError(t, svc.SetStatus(context.Background(), "t-1", ticket.StatusInProgress))
	tk, _ := svc.Store().Find("t-1")
	require.Equal(t, ticket.StatusInProgress, tk.Status)

	err := svc.SetStatus(context.Background(), "t-2", ticket.StatusInProgress)
	require.Error(t, err)
	require.Equal(t, serrors.CodeValidation, serrors.Code(err))
	require.Equal(t, []string{"t-1:in_progress"}, stub.updates)

	err = svc.SetStatus(context.Background(), "missing", ticket.StatusClosed)
	require.Equal(t, serrors.CodeEmptyResult, serrors.Code(err))
}

func TestValidTransition(t *testing.T) {
	require.True(t, ticket.ValidTransition(ticket.StatusOpen, ticket.StatusResolved))
	require.True(t, ticket.ValidTransition(ticket.StatusResolved, ticket.StatusOpen))
	require.False(t, ticket.ValidTransition(ticket.StatusClosed, ticket.StatusOpen))
	require.False(t, ticket.ValidTransition(ticket.StatusOpen, ticket.StatusOpen))
}
