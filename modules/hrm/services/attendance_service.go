package services

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/attendance"
	"github.com/peopledesk/peopledesk/pkg/crud"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
)

// AttendanceAPI is the slice of the attendance endpoints the service
// consumes; tests substitute it with a stub.
type AttendanceAPI interface {
	FetchToday(ctx context.Context) ([]attendance.Attendance, error)
	ClockIn(ctx context.Context, employeeID string) (attendance.Attendance, error)
	ClockOut(ctx context.Context, employeeID string) (attendance.Attendance, error)
	StartBreak(ctx context.Context, employeeID string) (attendance.Attendance, error)
	EndBreak(ctx context.Context, employeeID string) (attendance.Attendance, error)
}

// AttendanceService owns the day board collection. Every mark action is
// keyed per employee, so one spinner never blocks the rest of the board,
// and is followed by a refetch so the board reflects server state.
type AttendanceService struct {
	store *crud.Store[attendance.Attendance]

	fetchAll   *crud.Operation[struct{}, []attendance.Attendance]
	clockIn    *crud.Operation[string, attendance.Attendance]
	clockOut   *crud.Operation[string, attendance.Attendance]
	startBreak *crud.Operation[string, attendance.Attendance]
	endBreak   *crud.Operation[string, attendance.Attendance]
}

func NewAttendanceService(endpoints AttendanceAPI, publisher eventbus.EventBus) *AttendanceService {
	st := crud.NewStore[attendance.Attendance]("attendance")
	s := &AttendanceService{store: st}

	s.fetchAll = crud.NewFetchAll(st, func(ctx context.Context, _ struct{}) ([]attendance.Attendance, error) {
		return endpoints.FetchToday(ctx)
	}).WithBus(publisher)

	s.clockIn = crud.NewUpdate(st, endpoints.ClockIn).
		Named("attendance.clockIn").
		WithActionKey(func(id string) string { return "clock-in:" + id }).
		WithSuccess("Clocked in").
		WithBus(publisher)
	s.clockOut = crud.NewUpdate(st, endpoints.ClockOut).
		Named("attendance.clockOut").
		WithActionKey(func(id string) string { return "clock-out:" + id }).
		WithSuccess("Clocked out").
		WithBus(publisher)
	s.startBreak = crud.NewUpdate(st, endpoints.StartBreak).
		Named("attendance.startBreak").
		WithActionKey(func(id string) string { return "break-start:" + id }).
		WithBus(publisher)
	s.endBreak = crud.NewUpdate(st, endpoints.EndBreak).
		Named("attendance.endBreak").
		WithActionKey(func(id string) string { return "break-end:" + id }).
		WithBus(publisher)

	return s
}

func (s *AttendanceService) Store() *crud.Store[attendance.Attendance] { return s.store }

func (s *AttendanceService) Fetch(ctx context.Context) error {
	_, err := s.fetchAll.Dispatch(ctx, struct{}{})
	return err
}

func (s *AttendanceService) ClockIn(ctx context.Context, employeeID string) error {
	return s.mark(ctx, s.clockIn, employeeID)
}

func (s *AttendanceService) ClockOut(ctx context.Context, employeeID string) error {
	return s.mark(ctx, s.clockOut, employeeID)
}

func (s *AttendanceService) StartBreak(ctx context.Context, employeeID string) error {
	return s.mark(ctx, s.startBreak, employeeID)
}

func (s *AttendanceService) EndBreak(ctx context.Context, employeeID string) error {
	return s.mark(ctx, s.endBreak, employeeID)
}

func (s *AttendanceService) mark(ctx context.Context, op *crud.Operation[string, attendance.Attendance], employeeID string) error {
	if _, err := op.Dispatch(ctx, employeeID); err != nil {
		return err
	}
	return s.Fetch(ctx)
}
