package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/peopledesk/peopledesk/modules/helpdesk/domain/aggregates/ticket"
	"github.com/peopledesk/peopledesk/modules/helpdesk/services"
	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/httpapi"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type TicketController struct {
	app *application.Application
}

func NewTicketController(app *application.Application) *TicketController {
	return &TicketController{app: app}
}

func (c *TicketController) Key() string {
	return "/helpdesk"
}

func (c *TicketController) Register(r *mux.Router) {
	r.HandleFunc("/helpdesk/tickets", c.list).Methods(http.MethodGet)
	r.HandleFunc("/helpdesk/tickets", c.create).Methods(http.MethodPost)
	r.HandleFunc("/helpdesk/tickets/{id}/status", c.setStatus).Methods(http.MethodPut)
}

func (c *TicketController) list(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.TicketService](c.app)
	if err := svc.Fetch(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}

func (c *TicketController) create(w http.ResponseWriter, r *http.Request) {
	draft := &ticket.CreateDTO{}
	if err := json.NewDecoder(r.Body).Decode(draft); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, serrors.CodeValidation, "malformed request body", nil)
		return
	}

	svc := application.Use[*services.TicketService](c.app)
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

func (c *TicketController) setStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		_ = httpapi.WriteError(w, http.StatusBadRequest, serrors.CodeValidation, "status is required", nil)
		return
	}

	svc := application.Use[*services.TicketService](c.app)
	if err := svc.SetStatus(r.Context(), mux.Vars(r)["id"], body.Status); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}
