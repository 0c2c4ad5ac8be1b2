package services

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/advancesalary"
	"github.com/peopledesk/peopledesk/pkg/crud"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/forms"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type AdvanceSalaryAPI interface {
	FetchAll(ctx context.Context) ([]advancesalary.Request, error)
	Create(ctx context.Context, data *advancesalary.CreateDTO) (advancesalary.Request, error)
	Cancel(ctx context.Context, id string) (string, error)
}

// AdvanceSalaryService keeps the caller's requests newest first; a freshly
// created request appears at the top of the list before the refetch lands.
type AdvanceSalaryService struct {
	store  *crud.Store[advancesalary.Request]
	dialog *forms.Dialog[*advancesalary.CreateDTO]

	fetchAll *crud.Operation[struct{}, []advancesalary.Request]
	create   *crud.Operation[*advancesalary.CreateDTO, advancesalary.Request]
	cancel   *crud.Operation[string, string]
}

func NewAdvanceSalaryService(endpoints AdvanceSalaryAPI, publisher eventbus.EventBus) *AdvanceSalaryService {
	st := crud.NewStore[advancesalary.Request]("advanceSalary")
	s := &AdvanceSalaryService{store: st}

	s.fetchAll = crud.NewFetchAll(st, func(ctx context.Context, _ struct{}) ([]advancesalary.Request, error) {
		return endpoints.FetchAll(ctx)
	}).WithBus(publisher)

	s.create = crud.NewCreateNewestFirst(st, endpoints.Create).
		WithSuccess("Advance salary request submitted").
		WithBus(publisher)

	s.cancel = crud.NewDelete(st, endpoints.Cancel).
		Named("advanceSalary.cancel").
		WithActionKey(func(id string) string { return "cancel:" + id }).
		WithSuccess("Request cancelled").
		WithBus(publisher)

	s.dialog = forms.NewDialog[*advancesalary.CreateDTO](func(ctx context.Context) {
		_ = s.Fetch(ctx)
	})
	return s
}

func (s *AdvanceSalaryService) Store() *crud.Store[advancesalary.Request] { return s.store }

func (s *AdvanceSalaryService) Dialog() *forms.Dialog[*advancesalary.CreateDTO] { return s.dialog }

func (s *AdvanceSalaryService) Fetch(ctx context.Context) error {
	_, err := s.fetchAll.Dispatch(ctx, struct{}{})
	return err
}

func (s *AdvanceSalaryService) SubmitRequest(ctx context.Context) error {
	return s.dialog.Submit(ctx, func(ctx context.Context, draft *advancesalary.CreateDTO) error {
		_, err := s.create.Dispatch(ctx, draft)
		return err
	})
}

// Cancel withdraws a pending request. Decided requests cannot be
// withdrawn; the guard runs locally so the backend never sees the call.
func (s *AdvanceSalaryService) Cancel(ctx context.Context, id string) error {
	req, ok := s.store.Find(id)
	if !ok {
		return serrors.NewError(serrors.CodeEmptyResult, "no request found")
	}
	if !req.Cancellable() {
		return serrors.NewError(serrors.CodeValidation, "only pending requests can be cancelled")
	}
	if _, err := s.cancel.Dispatch(ctx, id); err != nil {
		return err
	}
	return s.Fetch(ctx)
}
