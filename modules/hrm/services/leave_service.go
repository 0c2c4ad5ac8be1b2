package services

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/attendance"
	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/leave"
	"github.com/peopledesk/peopledesk/pkg/crud"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/forms"
)

type LeaveAPI interface {
	FetchAll(ctx context.Context) ([]leave.Request, error)
	Create(ctx context.Context, data *leave.CreateDTO) (leave.Request, error)
	SetStatus(ctx context.Context, id, status string) (leave.Request, error)
}

type LeaveService struct {
	store  *crud.Store[leave.Request]
	dialog *forms.Dialog[*leave.CreateDTO]

	fetchAll  *crud.Operation[struct{}, []leave.Request]
	create    *crud.Operation[*leave.CreateDTO, leave.Request]
	setStatus *crud.Operation[statusChange, leave.Request]
}

type statusChange struct {
	ID     string
	Status string
}

func NewLeaveService(endpoints LeaveAPI, publisher eventbus.EventBus) *LeaveService {
	st := crud.NewStore[leave.Request]("leave")
	s := &LeaveService{store: st}

	s.fetchAll = crud.NewFetchAll(st, func(ctx context.Context, _ struct{}) ([]leave.Request, error) {
		return endpoints.FetchAll(ctx)
	}).WithBus(publisher)

	s.create = crud.NewCreate(st, endpoints.Create).
		WithSuccess("Leave request submitted").
		WithBus(publisher)

	s.setStatus = crud.NewUpdate(st, func(ctx context.Context, change statusChange) (leave.Request, error) {
		return endpoints.SetStatus(ctx, change.ID, change.Status)
	}).
		Named("leave.setStatus").
		WithActionKey(func(change statusChange) string { return change.Status + ":" + change.ID }).
		WithBus(publisher)

	s.dialog = forms.NewDialog[*leave.CreateDTO](func(ctx context.Context) {
		_ = s.Fetch(ctx)
	})
	return s
}

func (s *LeaveService) Store() *crud.Store[leave.Request]     { return s.store }
func (s *LeaveService) Dialog() *forms.Dialog[*leave.CreateDTO] { return s.dialog }

func (s *LeaveService) Fetch(ctx context.Context) error {
	_, err := s.fetchAll.Dispatch(ctx, struct{}{})
	return err
}

// SubmitRequest validates the dialog draft and dispatches the create. On
// success the dialog closes and the collection is refetched.
func (s *LeaveService) SubmitRequest(ctx context.Context) error {
	return s.dialog.Submit(ctx, func(ctx context.Context, draft *leave.CreateDTO) error {
		_, err := s.create.Dispatch(ctx, draft)
		return err
	})
}

func (s *LeaveService) Approve(ctx context.Context, id string) error {
	return s.decide(ctx, id, leave.StatusApproved)
}

func (s *LeaveService) Reject(ctx context.Context, id string) error {
	return s.decide(ctx, id, leave.StatusRejected)
}

func (s *LeaveService) decide(ctx context.Context, id, status string) error {
	if _, err := s.setStatus.Dispatch(ctx, statusChange{ID: id, Status: status}); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

// TodayMark reduces the employee's leave requests into the mark the
// attendance classifier consumes. An approved request covering today wins
// over a pending one.
func (s *LeaveService) TodayMark(employeeID, today string) attendance.LeaveMark {
	mark := attendance.LeaveNone
	for _, req := range s.store.Items() {
		if req.EmployeeID != employeeID || !req.CoversToday(today) {
			continue
		}
		switch req.Status {
		case leave.StatusApproved:
			return attendance.LeaveApproved
		case leave.StatusPending:
			mark = attendance.LeaveRequested
		}
	}
	return mark
}
