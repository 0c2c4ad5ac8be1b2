package services

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/event"
	"github.com/peopledesk/peopledesk/pkg/crud"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/forms"
)

type EventAPI interface {
	FetchAll(ctx context.Context) ([]event.Event, error)
	Create(ctx context.Context, data *event.CreateDTO) (event.Event, error)
	Cancel(ctx context.Context, id string) (event.Event, error)
}

type EventService struct {
	store  *crud.Store[event.Event]
	dialog *forms.Dialog[*event.CreateDTO]

	fetchAll *crud.Operation[struct{}, []event.Event]
	create   *crud.Operation[*event.CreateDTO, event.Event]
	cancel   *crud.Operation[string, event.Event]
}

func NewEventService(endpoints EventAPI, publisher eventbus.EventBus) *EventService {
	st := crud.NewStore[event.Event]("events")
	s := &EventService{store: st}

	s.fetchAll = crud.NewFetchAll(st, func(ctx context.Context, _ struct{}) ([]event.Event, error) {
		return endpoints.FetchAll(ctx)
	}).WithBus(publisher)

	s.create = crud.NewCreate(st, endpoints.Create).
		WithSuccess("Event created").
		WithBus(publisher)

	s.cancel = crud.NewUpdate(st, endpoints.Cancel).
		Named("events.cancel").
		WithActionKey(func(id string) string { return "cancel:" + id }).
		WithSuccess("Event cancelled").
		WithBus(publisher)

	s.dialog = forms.NewDialog[*event.CreateDTO](func(ctx context.Context) {
		_ = s.Fetch(ctx)
	})
	return s
}

func (s *EventService) Store() *crud.Store[event.Event]        { return s.store }
func (s *EventService) Dialog() *forms.Dialog[*event.CreateDTO] { return s.dialog }

func (s *EventService) Fetch(ctx context.Context) error {
	_, err := s.fetchAll.Dispatch(ctx, struct{}{})
	return err
}

func (s *EventService) SubmitCreate(ctx context.Context) error {
	return s.dialog.Submit(ctx, func(ctx context.Context, draft *event.CreateDTO) error {
		_, err := s.create.Dispatch(ctx, draft)
		return err
	})
}

func (s *EventService) Cancel(ctx context.Context, id string) error {
	if _, err := s.cancel.Dispatch(ctx, id); err != nil {
		return err
	}
	return s.Fetch(ctx)
}
