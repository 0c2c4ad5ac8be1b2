// Package attendance models one employee-day attendance record and the
// presence classification derived from it.
package attendance

import "time"

// Attendance is one employee's record for one working day, exactly as the
// backend returns it. Nil timestamps mean the event has not happened yet.
type Attendance struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employeeId"`
	EmployeeName string     `json:"employeeName"`
	Date         string     `json:"date"`
	ClockIn      *time.Time `json:"clockIn,omitempty"`
	ClockOut     *time.Time `json:"clockOut,omitempty"`
	BreakStart   *time.Time `json:"breakStart,omitempty"`
	BreakEnd     *time.Time `json:"breakEnd,omitempty"`
}

func (a Attendance) EntityID() string { return a.ID }

// OnBreak reports an open break: started and not yet ended.
func (a Attendance) OnBreak() bool {
	return a.BreakStart != nil && a.BreakEnd == nil
}

// Worked returns the time worked so far, breaks excluded. An open interval
// (no clock-out, or an open break) is measured up to now.
func (a Attendance) Worked(now time.Time) time.Duration {
	if a.ClockIn == nil {
		return 0
	}
	end := now
	if a.ClockOut != nil {
		end = *a.ClockOut
	}
	worked := end.Sub(*a.ClockIn)

	if a.BreakStart != nil {
		breakEnd := end
		if a.BreakEnd != nil {
			breakEnd = *a.BreakEnd
		}
		worked -= breakEnd.Sub(*a.BreakStart)
	}
	if worked < 0 {
		return 0
	}
	return worked
}
