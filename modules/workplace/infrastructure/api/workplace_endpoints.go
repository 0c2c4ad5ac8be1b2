// Package api is the REST boundary of the workplace module. Envelopes
// vary per route; each endpoint pins down the shape its backend actually
// returns.
package api

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/announcement"
	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/event"
	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/handbook"
	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/holiday"
	"github.com/peopledesk/peopledesk/pkg/transport"
)

type EventEndpoints struct {
	client *transport.Client
}

func NewEventEndpoints(client *transport.Client) *EventEndpoints {
	return &EventEndpoints{client: client}
}

// FetchAll wraps its payload in an "events" field.
func (e *EventEndpoints) FetchAll(ctx context.Context) ([]event.Event, error) {
	resp, err := transport.Get[[]event.Event](ctx, e.client, "/events", transport.Named("events"))
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (e *EventEndpoints) Create(ctx context.Context, data *event.CreateDTO) (event.Event, error) {
	resp, err := transport.Post[event.Event](ctx, e.client, "/events", data, transport.DataField())
	if err != nil {
		return event.Event{}, err
	}
	return resp.Data, nil
}

func (e *EventEndpoints) Cancel(ctx context.Context, id string) (event.Event, error) {
	resp, err := transport.Put[event.Event](ctx, e.client, "/events/"+id+"/cancel", nil, transport.DataField())
	if err != nil {
		return event.Event{}, err
	}
	return resp.Data, nil
}

type HolidayEndpoints struct {
	client *transport.Client
}

func NewHolidayEndpoints(client *transport.Client) *HolidayEndpoints {
	return &HolidayEndpoints{client: client}
}

func (e *HolidayEndpoints) FetchAll(ctx context.Context) ([]holiday.Holiday, error) {
	resp, err := transport.Get[[]holiday.Holiday](ctx, e.client, "/holidays", transport.DataField())
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (e *HolidayEndpoints) Create(ctx context.Context, data *holiday.CreateDTO) (holiday.Holiday, error) {
	resp, err := transport.Post[holiday.Holiday](ctx, e.client, "/holidays", data, transport.DataField())
	if err != nil {
		return holiday.Holiday{}, err
	}
	return resp.Data, nil
}

type AnnouncementEndpoints struct {
	client *transport.Client
}

func NewAnnouncementEndpoints(client *transport.Client) *AnnouncementEndpoints {
	return &AnnouncementEndpoints{client: client}
}

// FetchAll returns announcements bare, newest first.
func (e *AnnouncementEndpoints) FetchAll(ctx context.Context) ([]announcement.Announcement, error) {
	resp, err := transport.Get[[]announcement.Announcement](ctx, e.client, "/announcements", transport.Bare())
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (e *AnnouncementEndpoints) Create(ctx context.Context, data *announcement.CreateDTO) (announcement.Announcement, error) {
	resp, err := transport.Post[announcement.Announcement](ctx, e.client, "/announcements", data, transport.Bare())
	if err != nil {
		return announcement.Announcement{}, err
	}
	return resp.Data, nil
}

type HandbookEndpoints struct {
	client *transport.Client
}

func NewHandbookEndpoints(client *transport.Client) *HandbookEndpoints {
	return &HandbookEndpoints{client: client}
}

// FetchAll wraps its payload in a "documents" field.
func (e *HandbookEndpoints) FetchAll(ctx context.Context) ([]handbook.Document, error) {
	resp, err := transport.Get[[]handbook.Document](ctx, e.client, "/handbook", transport.Named("documents"))
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (e *HandbookEndpoints) Upload(ctx context.Context, data *handbook.UploadDTO) (handbook.Document, error) {
	resp, err := transport.Post[handbook.Document](ctx, e.client, "/handbook", data, transport.Named("document"))
	if err != nil {
		return handbook.Document{}, err
	}
	return resp.Data, nil
}

func (e *HandbookEndpoints) Delete(ctx context.Context, id string) (string, error) {
	_, err := transport.Delete[struct{}](ctx, e.client, "/handbook/"+id, transport.Bare())
	if err != nil {
		return "", err
	}
	return id, nil
}
