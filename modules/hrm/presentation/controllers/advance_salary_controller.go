package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/advancesalary"
	"github.com/peopledesk/peopledesk/modules/hrm/services"
	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/httpapi"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type AdvanceSalaryController struct {
	app *application.Application
}

func NewAdvanceSalaryController(app *application.Application) *AdvanceSalaryController {
	return &AdvanceSalaryController{app: app}
}

func (c *AdvanceSalaryController) Key() string {
	return "/advance-salary"
}

func (c *AdvanceSalaryController) Register(r *mux.Router) {
	r.HandleFunc("/advance-salary", c.list).Methods(http.MethodGet)
	r.HandleFunc("/advance-salary", c.create).Methods(http.MethodPost)
	r.HandleFunc("/advance-salary/{id}/cancel", c.cancel).Methods(http.MethodPost)
}

func (c *AdvanceSalaryController) list(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.AdvanceSalaryService](c.app)
	if err := svc.Fetch(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}

func (c *AdvanceSalaryController) create(w http.ResponseWriter, r *http.Request) {
	draft := &advancesalary.CreateDTO{}
	if err := json.NewDecoder(r.Body).Decode(draft); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, serrors.CodeValidation, "malformed request body", nil)
		return
	}

	svc := application.Use[*services.AdvanceSalaryService](c.app)
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

func (c *AdvanceSalaryController) cancel(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.AdvanceSalaryService](c.app)
	if err := svc.Cancel(r.Context(), mux.Vars(r)["id"]); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}
