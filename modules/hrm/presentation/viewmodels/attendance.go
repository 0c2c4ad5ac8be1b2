// Package viewmodels shapes domain records into the JSON the UI renders.
package viewmodels

import (
	"fmt"
	"time"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/attendance"
	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/employee"
)

// BoardRow is one employee's line on the attendance board.
type BoardRow struct {
	EmployeeID string            `json:"employeeId"`
	Name       string            `json:"name"`
	JobRole    string            `json:"jobRole,omitempty"`
	Status     attendance.Status `json:"status"`
	ClockIn    *time.Time        `json:"clockIn,omitempty"`
	ClockOut   *time.Time        `json:"clockOut,omitempty"`
	Elapsed    string            `json:"elapsed"`
}

// LeaveMarker resolves today's leave situation for one employee.
type LeaveMarker func(employeeID string) attendance.LeaveMark

// BuildBoard joins the directory with the day's attendance records. Every
// employee gets a row; employees without a record show as absent (or on
// leave, per the marker).
func BuildBoard(now time.Time, staff []employee.Employee, records []attendance.Attendance, leaveFor LeaveMarker) []BoardRow {
	byEmployee := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec
	}

	rows := make([]BoardRow, 0, len(staff))
	for _, emp := range staff {
		row := BoardRow{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			JobRole:    emp.JobRole,
		}
		var rec *attendance.Attendance
		if found, ok := byEmployee[emp.ID]; ok {
			rec = &found
			row.ClockIn = found.ClockIn
			row.ClockOut = found.ClockOut
			row.Elapsed = FormatElapsed(found.Worked(now))
		} else {
			row.Elapsed = FormatElapsed(0)
		}
		row.Status = attendance.Classify(emp.Active, rec, leaveFor(emp.ID))
		rows = append(rows, row)
	}
	return rows
}

// FormatElapsed renders a duration as HH:MM:SS for the live timer.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	seconds := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
