package services

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/holiday"
	"github.com/peopledesk/peopledesk/pkg/crud"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/forms"
)

type HolidayAPI interface {
	FetchAll(ctx context.Context) ([]holiday.Holiday, error)
	Create(ctx context.Context, data *holiday.CreateDTO) (holiday.Holiday, error)
}

type HolidayService struct {
	store  *crud.Store[holiday.Holiday]
	dialog *forms.Dialog[*holiday.CreateDTO]

	fetchAll *crud.Operation[struct{}, []holiday.Holiday]
	create   *crud.Operation[*holiday.CreateDTO, holiday.Holiday]
}

func NewHolidayService(endpoints HolidayAPI, publisher eventbus.EventBus) *HolidayService {
	st := crud.NewStore[holiday.Holiday]("holidays")
	s := &HolidayService{store: st}

	s.fetchAll = crud.NewFetchAll(st, func(ctx context.Context, _ struct{}) ([]holiday.Holiday, error) {
		return endpoints.FetchAll(ctx)
	}).WithBus(publisher)

	s.create = crud.NewCreate(st, endpoints.Create).
		WithSuccess("Holiday added").
		WithBus(publisher)

	s.dialog = forms.NewDialog[*holiday.CreateDTO](func(ctx context.Context) {
		_ = s.Fetch(ctx)
	})
	return s
}

func (s *HolidayService) Store() *crud.Store[holiday.Holiday]      { return s.store }
func (s *HolidayService) Dialog() *forms.Dialog[*holiday.CreateDTO] { return s.dialog }

func (s *HolidayService) Fetch(ctx context.Context) error {
	_, err := s.fetchAll.Dispatch(ctx, struct{}{})
	return err
}

func (s *HolidayService) SubmitCreate(ctx context.Context) error {
	return s.dialog.Submit(ctx, func(ctx context.Context, draft *holiday.CreateDTO) error {
		_, err := s.create.Dispatch(ctx, draft)
		return err
	})
}
