package services

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/announcement"
	"github.com/peopledesk/peopledesk/pkg/crud"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/forms"
)

type AnnouncementAPI interface {
	FetchAll(ctx context.Context) ([]announcement.Announcement, error)
	Create(ctx context.Context, data *announcement.CreateDTO) (announcement.Announcement, error)
}

// AnnouncementService keeps the feed newest first; a fresh announcement
// lands on top before the refetch confirms the order.
type AnnouncementService struct {
	store  *crud.Store[announcement.Announcement]
	dialog *forms.Dialog[*announcement.CreateDTO]

	fetchAll *crud.Operation[struct{}, []announcement.Announcement]
	create   *crud.Operation[*announcement.CreateDTO, announcement.Announcement]
}

func NewAnnouncementService(endpoints AnnouncementAPI, publisher eventbus.EventBus) *AnnouncementService {
	st := crud.NewStore[announcement.Announcement]("announcements")
	s := &AnnouncementService{store: st}

	s.fetchAll = crud.NewFetchAll(st, func(ctx context.Context, _ struct{}) ([]announcement.Announcement, error) {
		return endpoints.FetchAll(ctx)
	}).WithBus(publisher)

	s.create = crud.NewCreateNewestFirst(st, endpoints.Create).
		WithSuccess("Announcement published").
		WithBus(publisher)

	s.dialog = forms.NewDialog[*announcement.CreateDTO](func(ctx context.Context) {
		_ = s.Fetch(ctx)
	})
	return s
}

func (s *AnnouncementService) Store() *crud.Store[announcement.Announcement] { return s.store }

func (s *AnnouncementService) Dialog() *forms.Dialog[*announcement.CreateDTO] { return s.dialog }

func (s *AnnouncementService) Fetch(ctx context.Context) error {
	_, err := s.fetchAll.Dispatch(ctx, struct{}{})
	return err
}

func (s *AnnouncementService) SubmitCreate(ctx context.Context) error {
	return s.dialog.Submit(ctx, func(ctx context.Context, draft *announcement.CreateDTO) error {
		_, err := s.create.Dispatch(ctx, draft)
		return err
	})
}
