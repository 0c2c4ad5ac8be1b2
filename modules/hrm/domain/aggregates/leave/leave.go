// Package leave models leave requests and the draft that creates them.
package leave

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/peopledesk/peopledesk/pkg/constants"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Request struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
}

func (r Request) EntityID() string { return r.ID }

// CoversToday reports whether the request spans the given date. Dates are
// inclusive on both ends.
func (r Request) CoversToday(date string) bool {
	return r.StartDate <= date && date <= r.EndDate
}

type CreateDTO struct {
	StartDate string `json:"startDate" validate:"required,notpast"`
	EndDate   string `json:"endDate" validate:"required,afterfield=StartDate"`
	Reason    string `json:"reason" validate:"required,min=10"`
}

func (d *CreateDTO) Ok(_ context.Context) (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return nil, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), fieldLabel), false
}

func fieldLabel(field string) string {
	switch field {
	case "StartDate":
		return "Start date"
	case "EndDate":
		return "End date"
	default:
		return field
	}
}
