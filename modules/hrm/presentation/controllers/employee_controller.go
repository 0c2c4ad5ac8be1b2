package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/peopledesk/peopledesk/modules/hrm/services"
	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/httpapi"
)

type EmployeeController struct {
	app *application.Application
}

func NewEmployeeController(app *application.Application) *EmployeeController {
	return &EmployeeController{app: app}
}

func (c *EmployeeController) Key() string {
	return "/employees"
}

func (c *EmployeeController) Register(r *mux.Router) {
	r.HandleFunc("/employees", c.list).Methods(http.MethodGet)
	r.HandleFunc("/dashboard/celebrations", c.celebrations).Methods(http.MethodGet)
	r.HandleFunc("/salary-slips", c.salarySlips).Methods(http.MethodGet)
}

func (c *EmployeeController) list(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.EmployeeService](c.app)
	if err := svc.Fetch(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}

func (c *EmployeeController) celebrations(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.EmployeeService](c.app)
	if err := svc.Fetch(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Celebrations(time.Now()))
}

func (c *EmployeeController) salarySlips(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.SalarySlipService](c.app)
	if err := svc.Fetch(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}
