package services

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/handbook"
	"github.com/peopledesk/peopledesk/pkg/crud"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/forms"
)

type HandbookAPI interface {
	FetchAll(ctx context.Context) ([]handbook.Document, error)
	Upload(ctx context.Context, data *handbook.UploadDTO) (handbook.Document, error)
	Delete(ctx context.Context, id string) (string, error)
}

type HandbookService struct {
	store  *crud.Store[handbook.Document]
	dialog *forms.Dialog[*handbook.UploadDTO]

	fetchAll *crud.Operation[struct{}, []handbook.Document]
	upload   *crud.Operation[*handbook.UploadDTO, handbook.Document]
	remove   *crud.Operation[string, string]
}

func NewHandbookService(endpoints HandbookAPI, publisher eventbus.EventBus) *HandbookService {
	st := crud.NewStore[handbook.Document]("handbook")
	s := &HandbookService{store: st}

	s.fetchAll = crud.NewFetchAll(st, func(ctx context.Context, _ struct{}) ([]handbook.Document, error) {
		return endpoints.FetchAll(ctx)
	}).WithBus(publisher)

	s.upload = crud.NewCreate(st, endpoints.Upload).
		Named("handbook.upload").
		WithSuccess("Document uploaded").
		WithBus(publisher)

	s.remove = crud.NewDelete(st, endpoints.Delete).
		WithActionKey(func(id string) string { return "delete:" + id }).
		WithSuccess("Document removed").
		WithBus(publisher)

	s.dialog = forms.NewDialog[*handbook.UploadDTO](func(ctx context.Context) {
		_ = s.Fetch(ctx)
	})
	return s
}

func (s *HandbookService) Store() *crud.Store[handbook.Document]     { return s.store }
func (s *HandbookService) Dialog() *forms.Dialog[*handbook.UploadDTO] { return s.dialog }

func (s *HandbookService) Fetch(ctx context.Context) error {
	_, err := s.fetchAll.Dispatch(ctx, struct{}{})
	return err
}

// SubmitUpload validates the draft, including the attached file, before
// anything reaches the backend.
func (s *HandbookService) SubmitUpload(ctx context.Context) error {
	return s.dialog.Submit(ctx, func(ctx context.Context, draft *handbook.UploadDTO) error {
		_, err := s.upload.Dispatch(ctx, draft)
		return err
	})
}

func (s *HandbookService) Delete(ctx context.Context, id string) error {
	if _, err := s.remove.Dispatch(ctx, id); err != nil {
		return err
	}
	return s.Fetch(ctx)
}
