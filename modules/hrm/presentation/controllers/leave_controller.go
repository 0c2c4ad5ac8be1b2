package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/leave"
	"github.com/peopledesk/peopledesk/modules/hrm/services"
	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/httpapi"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type LeaveController struct {
	app *application.Application
}

func NewLeaveController(app *application.Application) *LeaveController {
	return &LeaveController{app: app}
}

func (c *LeaveController) Key() string {
	return "/leave"
}

func (c *LeaveController) Register(r *mux.Router) {
	r.HandleFunc("/leave", c.list).Methods(http.MethodGet)
	r.HandleFunc("/leave", c.create).Methods(http.MethodPost)
	r.HandleFunc("/leave/{id}/approve", c.approve).Methods(http.MethodPost)
	r.HandleFunc("/leave/{id}/reject", c.reject).Methods(http.MethodPost)
}

func (c *LeaveController) list(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.LeaveService](c.app)
	if err := svc.Fetch(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}

// create runs the dialog lifecycle in one request: open with the posted
// draft, validate, dispatch, close on success.
func (c *LeaveController) create(w http.ResponseWriter, r *http.Request) {
	draft := &leave.CreateDTO{}
	if err := json.NewDecoder(r.Body).Decode(draft); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, serrors.CodeValidation, "malformed request body", nil)
		return
	}

	svc := application.Use[*services.LeaveService](c.app)
	svc.Dialog().OpenForCreate(draft)
	if err := svc.SubmitRequest(r.Context()); err != nil {
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

func (c *LeaveController) approve(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, (*services.LeaveService).Approve)
}

func (c *LeaveController) reject(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, (*services.LeaveService).Reject)
}

func (c *LeaveController) decide(w http.ResponseWriter, r *http.Request, decide func(*services.LeaveService, context.Context, string) error) {
	id := mux.Vars(r)["id"]
	svc := application.Use[*services.LeaveService](c.app)
	if err := decide(svc, r.Context(), id); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}
