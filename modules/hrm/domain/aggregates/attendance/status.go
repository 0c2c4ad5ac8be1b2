package attendance

// Status is the presence badge shown per employee on the attendance board.
type Status string

const (
	StatusActive       Status = "Active"
	StatusOnBreak      Status = "On Break"
	StatusClockedOut   Status = "Clocked Out"
	StatusOnLeave      Status = "On Leave"
	StatusLeavePending Status = "Leave Pending"
	StatusAbsent       Status = "Absent"
	StatusInactive     Status = "Inactive"
)

// LeaveMark is today's leave situation for the employee being classified.
type LeaveMark int

const (
	LeaveNone LeaveMark = iota
	LeaveRequested
	LeaveApproved
)

// Classify derives the presence status. Precedence is fixed: an inactive
// employee is Inactive no matter what the record says, leave beats the
// attendance record, and only then does the day's record decide.
func Classify(active bool, record *Attendance, leave LeaveMark) Status {
	if !active {
		return StatusInactive
	}
	switch leave {
	case LeaveApproved:
		return StatusOnLeave
	case LeaveRequested:
		return StatusLeavePending
	}
	if record == nil || record.ClockIn == nil {
		return StatusAbsent
	}
	if record.ClockOut != nil {
		return StatusClockedOut
	}
	if record.OnBreak() {
		return StatusOnBreak
	}
	return StatusActive
}
