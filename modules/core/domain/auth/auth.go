// Package auth holds the login draft and the session lifecycle events.
package auth

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/peopledesk/peopledesk/pkg/constants"
	"github.com/peopledesk/peopledesk/pkg/serrors"
	"github.com/peopledesk/peopledesk/pkg/session"
)

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (d *LoginDTO) Ok(_ context.Context) (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return nil, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), nil), false
}

type UserLoggedInEvent struct {
	Employee session.Employee
}

type UserLoggedOutEvent struct {
	EmployeeID string
}
