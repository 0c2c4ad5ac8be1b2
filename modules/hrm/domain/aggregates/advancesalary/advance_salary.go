// Package advancesalary models advance salary requests.
package advancesalary

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/peopledesk/peopledesk/pkg/constants"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type Request struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employeeId"`
	Amount      float64 `json:"amount"`
	Reason      string  `json:"reason"`
	Status      string  `json:"status"`
	RequestedAt string  `json:"requestedAt"`
}

func (r Request) EntityID() string { return r.ID }

// Cancellable: only requests still awaiting a decision can be withdrawn.
func (r Request) Cancellable() bool {
	return r.Status == StatusPending
}

type CreateDTO struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Reason string  `json:"reason" validate:"required,min=10"`
}

func (d *CreateDTO) Ok(_ context.Context) (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return nil, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), nil), false
}
