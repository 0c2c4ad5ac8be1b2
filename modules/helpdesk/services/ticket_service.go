package services

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/helpdesk/domain/aggregates/ticket"
	"github.com/peopledesk/peopledesk/pkg/crud"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/forms"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type TicketAPI interface {
	FetchAll(ctx context.Context) ([]ticket.Ticket, error)
	Create(ctx context.Context, data *ticket.CreateDTO) (ticket.Ticket, error)
	SetStatus(ctx context.Context, id, status string) (ticket.Ticket, error)
}

type TicketService struct {
	store  *crud.Store[ticket.Ticket]
	dialog *forms.Dialog[*ticket.CreateDTO]

	fetchAll  *crud.Operation[struct{}, []ticket.Ticket]
	create    *crud.Operation[*ticket.CreateDTO, ticket.Ticket]
	setStatus *crud.Operation[statusChange, ticket.Ticket]
}

type statusChange struct {
	ID     string
	Status string
}

func NewTicketService(endpoints TicketAPI, publisher eventbus.EventBus) *TicketService {
	st := crud.NewStore[ticket.Ticket]("tickets")
	s := &TicketService{store: st}

	s.fetchAll = crud.NewFetchAll(st, func(ctx context.Context, _ struct{}) ([]ticket.Ticket, error) {
		return endpoints.FetchAll(ctx)
	}).WithBus(publisher)

	s.create = crud.NewCreateNewestFirst(st, endpoints.Create).
		WithSuccess("Ticket raised").
		WithBus(publisher)

	s.setStatus = crud.NewUpdate(st, func(ctx context.Context, change statusChange) (ticket.Ticket, error) {
		return endpoints.SetStatus(ctx, change.ID, change.Status)
	}).
		Named("tickets.setStatus").
		WithActionKey(func(change statusChange) string { return "status:" + change.ID }).
		WithBus(publisher)

	s.dialog = forms.NewDialog[*ticket.CreateDTO](func(ctx context.Context) {
		_ = s.Fetch(ctx)
	})
	return s
}

func (s *TicketService) Store() *crud.Store[ticket.Ticket]       { return s.store }
func (s *TicketService) Dialog() *forms.Dialog[*ticket.CreateDTO] { return s.dialog }

func (s *TicketService) Fetch(ctx context.Context) error {
	_, err := s.fetchAll.Dispatch(ctx, struct{}{})
	return err
}

func (s *TicketService) SubmitCreate(ctx context.Context) error {
	return s.dialog.Submit(ctx, func(ctx context.Context, draft *ticket.CreateDTO) error {
		_, err := s.create.Dispatch(ctx, draft)
		return err
	})
}

// SetStatus enforces the board's transition rules locally before the
// backend sees the change.
func (s *TicketService) SetStatus(ctx context.Context, id, status string) error {
	current, ok := s.store.Find(id)
	if !ok {
		return serrors.NewError(serrors.CodeEmptyResult, "no ticket found")
	}
	if !ticket.ValidTransition(current.Status, status) {
		return serrors.NewError(serrors.CodeValidation, "invalid status transition")
	}
	if _, err := s.setStatus.Dispatch(ctx, statusChange{ID: id, Status: status}); err != nil {
		return err
	}
	return s.Fetch(ctx)
}
