package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/announcement"
	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/handbook"
	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/holiday"
	"github.com/peopledesk/peopledesk/modules/workplace/services"
	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/httpapi"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

// WorkplaceController serves the holiday calendar, the announcement feed
// and the handbook library.
type WorkplaceController struct {
	app *application.Application
}

func NewWorkplaceController(app *application.Application) *WorkplaceController {
	return &WorkplaceController{app: app}
}

func (c *WorkplaceController) Key() string {
	return "/workplace"
}

func (c *WorkplaceController) Register(r *mux.Router) {
	r.HandleFunc("/holidays", c.listHolidays).Methods(http.MethodGet)
	r.HandleFunc("/holidays", c.createHoliday).Methods(http.MethodPost)
	r.HandleFunc("/announcements", c.listAnnouncements).Methods(http.MethodGet)
	r.HandleFunc("/announcements", c.createAnnouncement).Methods(http.MethodPost)
	r.HandleFunc("/handbook", c.listHandbook).Methods(http.MethodGet)
	r.HandleFunc("/handbook", c.uploadHandbook).Methods(http.MethodPost)
	r.HandleFunc("/handbook/{id}", c.deleteHandbook).Methods(http.MethodDelete)
}

func (c *WorkplaceController) listHolidays(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.HolidayService](c.app)
	if err := svc.Fetch(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}

func (c *WorkplaceController) createHoliday(w http.ResponseWriter, r *http.Request) {
	draft := &holiday.CreateDTO{}
	if err := json.NewDecoder(r.Body).Decode(draft); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, serrors.CodeValidation, "malformed request body", nil)
		return
	}
	svc := application.Use[*services.HolidayService](c.app)
	svc.Dialog().OpenForCreate(draft)
	if err := svc.SubmitCreate(r.Context()); err != nil {
		c.writeDialogError(w, err, svc.Dialog().FieldErrors())
		svc.Dialog().Close()
		return
	}
	_ = httpapi.WriteData(w, http.StatusCreated, svc.Store().Items())
}

func (c *WorkplaceController) listAnnouncements(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.AnnouncementService](c.app)
	if err := svc.Fetch(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}

func (c *WorkplaceController) createAnnouncement(w http.ResponseWriter, r *http.Request) {
	draft := &announcement.CreateDTO{}
	if err := json.NewDecoder(r.Body).Decode(draft); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, serrors.CodeValidation, "malformed request body", nil)
		return
	}
	svc := application.Use[*services.AnnouncementService](c.app)
	svc.Dialog().OpenForCreate(draft)
	if err := svc.SubmitCreate(r.Context()); err != nil {
		c.writeDialogError(w, err, svc.Dialog().FieldErrors())
		svc.Dialog().Close()
		return
	}
	_ = httpapi.WriteData(w, http.StatusCreated, svc.Store().Items())
}

func (c *WorkplaceController) listHandbook(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.HandbookService](c.app)
	if err := svc.Fetch(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}

func (c *WorkplaceController) uploadHandbook(w http.ResponseWriter, r *http.Request) {
	draft := &handbook.UploadDTO{}
	if err := json.NewDecoder(r.Body).Decode(draft); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, serrors.CodeValidation, "malformed request body", nil)
		return
	}
	svc := application.Use[*services.HandbookService](c.app)
	svc.Dialog().OpenForCreate(draft)
	if err := svc.SubmitUpload(r.Context()); err != nil {
		c.writeDialogError(w, err, svc.Dialog().FieldErrors())
		svc.Dialog().Close()
		return
	}
	_ = httpapi.WriteData(w, http.StatusCreated, svc.Store().Items())
}

func (c *WorkplaceController) deleteHandbook(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.HandbookService](c.app)
	if err := svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}

func (c *WorkplaceController) writeDialogError(w http.ResponseWriter, err error, fieldErrors serrors.ValidationErrors) {
	if serrors.Code(err) == serrors.CodeValidation {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, serrors.CodeValidation, "validation failed", fieldErrors)
		return
	}
	_ = httpapi.WriteServiceError(w, err)
}
