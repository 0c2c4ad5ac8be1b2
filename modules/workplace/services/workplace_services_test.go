package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/announcement"
	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/event"
	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/handbook"
	"github.com/peopledesk/peopledesk/modules/workplace/services"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/forms"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

func newBus() eventbus.EventBus {
	return eventbus.NewEventPublisher(logrus.New())
}

type eventAPIStub struct {
	events  []event.Event
	creates int
	fetches int
}

func (s *eventAPIStub) FetchAll(_ context.Context) ([]event.Event, error) {
	s.fetches++
	if len(s.events) == 0 {
		return nil, serrors.NewError(serrors.CodeRequestFailed, "No events found")
	}
	return s.events, nil
}

func (s *eventAPIStub) Create(_ context.Context, data *event.CreateDTO) (event.Event, error) {
	s.creates++
	ev := event.Event{
		ID:        fmt.Sprintf("e-%d", len(s.events)+1),
		Title:     data.Title,
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Status:    event.StatusPending,
	}
	s.events = append(s.events, ev)
	return ev, nil
}

func (s *eventAPIStub) Cancel(_ context.Context, id string) (event.Event, error) {
	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i].Status = event.StatusCancelled
			return s.events[i], nil
		}
	}
	return event.Event{}, serrors.NewError(serrors.CodeEmptyResult, "no event found")
}

// A prose-only "No events found" body must land as an empty board, not an
// error, even without the structured code.
func TestEventService_LegacyEmptyMessageSuppressed(t *testing.T) {
	svc := services.NewEventService(&eventAPIStub{}, newBus())

	require.NoError(t, svc.Fetch(context.Background()))
	require.Equal(t, 0, svc.Store().Len())
	require.NoError(t, svc.Store().Err())
}

func TestEventService_InvalidDraftBlocksDispatch(t *testing.T) {
	stub := &eventAPIStub{}
	svc := services.NewEventService(stub, newBus())

	start := time.Now().Add(24 * time.Hour)
	svc.Dialog().OpenForCreate(&event.CreateDTO{
		Title:       "Town hall",
		Description: "short",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	})

	err := svc.SubmitCreate(context.Background())
	require.ErrorIs(t, err, forms.ErrValidationFailed)
	require.Equal(t, 0, stub.creates)
	require.Equal(t, forms.ModeCreate, svc.Dialog().Mode())
}

func TestEventService_CreateClosesDialogAndRefetches(t *testing.T) {
	stub := &eventAPIStub{}
	svc := services.NewEventService(stub, newBus())

	start := time.Now().Add(24 * time.Hour)
	svc.Dialog().OpenForCreate(&event.CreateDTO{
		Title:       "Town hall",
		Description: "Quarterly all-hands meeting",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	})

	require.NoError(t, svc.SubmitCreate(context.Background()))
	require.Equal(t, 1, stub.creates)
	require.Equal(t, 1, stub.fetches)
	require.Equal(t, forms.ModeClosed, svc.Dialog().Mode())
	require.Equal(t, "Event created", svc.Store().SuccessMessage())
}

func TestEventService_CancelPatchesAndRefetches(t *testing.T) {
	stub := &eventAPIStub{events: []event.Event{
		{ID: "e-1", Title: "Offsite", Status: event.StatusPending},
	}}
	svc := services.NewEventService(stub, newBus())
	require.NoError(t, svc.Fetch(context.Background()))

	require.NoError(t, svc.Cancel(context.Background(), "e-1"))
	ev, ok := svc.Store().Find("e-1")
	require.True(t, ok)
	require.Equal(t, event.StatusCancelled, ev.Status)
	require.False(t, svc.Store().ActionLoading("cancel:e-1"))
}

type announcementAPIStub struct {
	items []announcement.Announcement
}

func (s *announcementAPIStub) FetchAll(_ context.Context) ([]announcement.Announcement, error) {
	return s.items, nil
}

func (s *announcementAPIStub) Create(_ context.Context, data *announcement.CreateDTO) (announcement.Announcement, error) {
	item := announcement.Announcement{
		ID:        fmt.Sprintf("an-%d", len(s.items)+1),
		Title:     data.Title,
		Body:      data.Body,
		CreatedAt: time.Now(),
	}
	s.items = append([]announcement.Announcement{item}, s.items...)
	return item, nil
}

func TestAnnouncementService_NewestFirst(t *testing.T) {
	stub := &announcementAPIStub{items: []announcement.Announcement{
		{ID: "an-old", Title: "Old news"},
	}}
	svc := services.NewAnnouncementService(stub, newBus())
	require.NoError(t, svc.Fetch(context.Background()))

	svc.Dialog().OpenForCreate(&announcement.CreateDTO{
		Title: "Office move",
		Body:  "We are moving to the new building next month",
	})
	require.NoError(t, svc.SubmitCreate(context.Background()))

	items := svc.Store().Items()
	require.Len(t, items, 2)
	require.Equal(t, "Office move", items[0].Title)
}

type handbookAPIStub struct {
	docs    []handbook.Document
	uploads int
}

func (s *handbookAPIStub) FetchAll(_ context.Context) ([]handbook.Document, error) {
	return s.docs, nil
}

func (s *handbookAPIStub) Upload(_ context.Context, data *handbook.UploadDTO) (handbook.Document, error) {
	s.uploads++
	doc := handbook.Document{
		ID:       fmt.Sprintf("d-%d", len(s.docs)+1),
		Title:    data.Title,
		FileName: data.FileName,
	}
	s.docs = append(s.docs, doc)
	return doc, nil
}

func (s *handbookAPIStub) Delete(_ context.Context, id string) (string, error) {
	for i, doc := range s.docs {
		if doc.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			break
		}
	}
	return id, nil
}

func TestHandbookService_MissingFileBlocksUpload(t *testing.T) {
	stub := &handbookAPIStub{}
	svc := services.NewHandbookService(stub, newBus())

	svc.Dialog().OpenForCreate(&handbook.UploadDTO{
		Title:       "Leave policy",
		Description: "Updated leave policy for 2026",
	})

	err := svc.SubmitUpload(context.Background())
	require.ErrorIs(t, err, forms.ErrValidationFailed)
	require.Equal(t, 0, stub.uploads)
	require.Contains(t, svc.Dialog().FieldErrors(), "FileName")
}

func TestHandbookService_UploadAndDelete(t *testing.T) {
	stub := &handbookAPIStub{}
	svc := services.NewHandbookService(stub, newBus())

	svc.Dialog().OpenForCreate(&handbook.UploadDTO{
		Title:       "Leave policy",
		Description: "Updated leave policy for 2026",
		FileName:    "leave-policy.pdf",
	})
	require.NoError(t, svc.SubmitUpload(context.Background()))
	require.Equal(t, 1, svc.Store().Len())

	doc := svc.Store().Items()[0]
	require.NoError(t, svc.Delete(context.Background(), doc.ID))
	require.Equal(t, 0, svc.Store().Len())
}
