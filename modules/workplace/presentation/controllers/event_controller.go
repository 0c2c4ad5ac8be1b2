package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/event"
	"github.com/peopledesk/peopledesk/modules/workplace/services"
	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/httpapi"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type EventController struct {
	app *application.Application
}

func NewEventController(app *application.Application) *EventController {
	return &EventController{app: app}
}

func (c *EventController) Key() string {
	return "/events"
}

func (c *EventController) Register(r *mux.Router) {
	r.HandleFunc("/events", c.list).Methods(http.MethodGet)
	r.HandleFunc("/events", c.create).Methods(http.MethodPost)
	r.HandleFunc("/events/{id}/cancel", c.cancel).Methods(http.MethodPost)
}

type eventRow struct {
	event.Event
	Display event.DisplayStatus `json:"display"`
}

func (c *EventController) list(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.EventService](c.app)
	if err := svc.Fetch(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}

	now := time.Now()
	items := svc.Store().Items()
	rows := make([]eventRow, 0, len(items))
	for _, ev := range items {
		rows = append(rows, eventRow{Event: ev, Display: ev.Display(now)})
	}
	_ = httpapi.WriteData(w, http.StatusOK, rows)
}

func (c *EventController) create(w http.ResponseWriter, r *http.Request) {
	draft := &event.CreateDTO{}
	if err := json.NewDecoder(r.Body).Decode(draft); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, serrors.CodeValidation, "malformed request body", nil)
		return
	}

	svc := application.Use[*services.EventService](c.app)
	svc.Dialog().OpenForCreate(draft)
	if err := svc.SubmitCreate(r.Context()); err != nil {
		if serrors.Code(err) == serrors.CodeValidation {
			_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, serrors.CodeValidation, "validation failed", svc.Dialog().FieldErrors())
			svc.Dialog().Close()
			return
		}
		_ = httpapi.WriteServiceError(w, err)
		svc.Dialog().Close()
		return
	}
	_ = httpapi.WriteData(w, http.StatusCreated, svc.Store().Items())
}

func (c *EventController) cancel(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.EventService](c.app)
	if err := svc.Cancel(r.Context(), mux.Vars(r)["id"]); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}
