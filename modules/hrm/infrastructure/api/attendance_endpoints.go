// Package api is the REST boundary of the HRM module. The backend grew
// endpoint by endpoint and its response envelopes are not uniform; each
// endpoint here pins down the shape its route actually uses so callers
// only ever see normalized payloads.
package api

import (
	"context"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/attendance"
	"github.com/peopledesk/peopledesk/pkg/transport"
)

type AttendanceEndpoints struct {
	client *transport.Client
}

func NewAttendanceEndpoints(client *transport.Client) *AttendanceEndpoints {
	return &AttendanceEndpoints{client: client}
}

// FetchToday returns every employee's record for the current day. The
// route wraps its payload in an "attendance" field.
func (e *AttendanceEndpoints) FetchToday(ctx context.Context) ([]attendance.Attendance, error) {
	resp, err := transport.Get[[]attendance.Attendance](ctx, e.client, "/attendance/today", transport.Named("attendance"))
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (e *AttendanceEndpoints) ClockIn(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	return e.mark(ctx, "/attendance/clock-in", employeeID)
}

func (e *AttendanceEndpoints) ClockOut(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	return e.mark(ctx, "/attendance/clock-out", employeeID)
}

func (e *AttendanceEndpoints) StartBreak(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	return e.mark(ctx, "/attendance/break/start", employeeID)
}

func (e *AttendanceEndpoints) EndBreak(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	return e.mark(ctx, "/attendance/break/end", employeeID)
}

func (e *AttendanceEndpoints) mark(ctx context.Context, path, employeeID string) (attendance.Attendance, error) {
	body := map[string]string{"employeeId": employeeID}
	resp, err := transport.Post[attendance.Attendance](ctx, e.client, path, body, transport.Bare())
	if err != nil {
		return attendance.Attendance{}, err
	}
	return resp.Data, nil
}
