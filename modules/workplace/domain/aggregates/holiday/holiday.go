// Package holiday models the company holiday calendar.
package holiday

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/peopledesk/peopledesk/pkg/constants"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type Holiday struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Optional bool   `json:"optional"`
}

func (h Holiday) EntityID() string { return h.ID }

type CreateDTO struct {
	Name     string `json:"name" validate:"required"`
	Date     string `json:"date" validate:"required,notpast"`
	Optional bool   `json:"optional"`
}

func (d *CreateDTO) Ok(_ context.Context) (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return nil, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), nil), false
}
