package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/attendance"
	"github.com/peopledesk/peopledesk/modules/hrm/presentation/viewmodels"
	"github.com/peopledesk/peopledesk/modules/hrm/services"
	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/constants"
	"github.com/peopledesk/peopledesk/pkg/httpapi"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type AttendanceController struct {
	app *application.Application
}

func NewAttendanceController(app *application.Application) *AttendanceController {
	return &AttendanceController{app: app}
}

func (c *AttendanceController) Key() string {
	return "/attendance"
}

func (c *AttendanceController) Register(r *mux.Router) {
	r.HandleFunc("/attendance", c.board).Methods(http.MethodGet)
	r.HandleFunc("/attendance/clock-in", c.mark(func(s *services.AttendanceService) markFn { return s.ClockIn })).Methods(http.MethodPost)
	r.HandleFunc("/attendance/clock-out", c.mark(func(s *services.AttendanceService) markFn { return s.ClockOut })).Methods(http.MethodPost)
	r.HandleFunc("/attendance/break/start", c.mark(func(s *services.AttendanceService) markFn { return s.StartBreak })).Methods(http.MethodPost)
	r.HandleFunc("/attendance/break/end", c.mark(func(s *services.AttendanceService) markFn { return s.EndBreak })).Methods(http.MethodPost)
}

// board refetches the day's records plus the directory and leave list the
// classification depends on, then renders the joined rows.
func (c *AttendanceController) board(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	attendanceSvc := application.Use[*services.AttendanceService](c.app)
	employeeSvc := application.Use[*services.EmployeeService](c.app)
	leaveSvc := application.Use[*services.LeaveService](c.app)

	if err := employeeSvc.Fetch(ctx); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	if err := attendanceSvc.Fetch(ctx); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	if err := leaveSvc.Fetch(ctx); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}

	now := time.Now()
	today := now.Format(constants.DateFormat)
	rows := viewmodels.BuildBoard(now, employeeSvc.Store().Items(), attendanceSvc.Store().Items(), func(employeeID string) attendance.LeaveMark {
		return leaveSvc.TodayMark(employeeID, today)
	})
	_ = httpapi.WriteData(w, http.StatusOK, rows)
}

type markFn = func(ctx context.Context, employeeID string) error

func (c *AttendanceController) mark(pick func(*services.AttendanceService) markFn) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			EmployeeID string `json:"employeeId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.EmployeeID == "" {
			_ = httpapi.WriteError(w, http.StatusBadRequest, serrors.CodeValidation, "employeeId is required", nil)
			return
		}

		svc := application.Use[*services.AttendanceService](c.app)
		if err := pick(svc)(r.Context(), body.EmployeeID); err != nil {
			_ = httpapi.WriteServiceError(w, err)
			return
		}
		_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
	}
}
