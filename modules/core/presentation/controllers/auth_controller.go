package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/peopledesk/peopledesk/modules/core/domain/auth"
	"github.com/peopledesk/peopledesk/modules/core/services"
	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/httpapi"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type AuthController struct {
	app *application.Application
}

func NewAuthController(app *application.Application) *AuthController {
	return &AuthController{app: app}
}

func (c *AuthController) Key() string {
	return "/auth"
}

func (c *AuthController) Register(r *mux.Router) {
	r.HandleFunc("/auth/login", c.login).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", c.logout).Methods(http.MethodPost)
	r.HandleFunc("/auth/session", c.currentSession).Methods(http.MethodGet)
	r.HandleFunc("/auth/navigation", c.navigation).Methods(http.MethodGet)
}

func (c *AuthController) login(w http.ResponseWriter, r *http.Request) {
	dto := &auth.LoginDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, serrors.CodeValidation, "malformed request body", nil)
		return
	}
	if fieldErrors, ok := dto.Ok(r.Context()); !ok {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, serrors.CodeValidation, "validation failed", fieldErrors)
		return
	}

	employee, err := application.Use[*services.AuthService](c.app).Login(r.Context(), dto)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusUnauthorized, serrors.Code(err), serrors.Message(err), nil)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, employee)
}

func (c *AuthController) logout(w http.ResponseWriter, r *http.Request) {
	if err := application.Use[*services.AuthService](c.app).Logout(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *AuthController) currentSession(w http.ResponseWriter, r *http.Request) {
	employee, ok := c.app.Session().CurrentUser()
	if !ok {
		_ = httpapi.WriteError(w, http.StatusUnauthorized, serrors.CodeUnauthorized, "not logged in", nil)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, employee)
}

// navigation returns the sidebar for the session role, pruned by the same
// capability table that gates the routes.
func (c *AuthController) navigation(w http.ResponseWriter, r *http.Request) {
	employee, ok := c.app.Session().CurrentUser()
	if !ok {
		_ = httpapi.WriteError(w, http.StatusUnauthorized, serrors.CodeUnauthorized, "not logged in", nil)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, c.app.NavItems(employee.Type))
}
