// Package announcement models company announcements, shown newest first.
package announcement

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/peopledesk/peopledesk/pkg/constants"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Audience  string    `json:"audience,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a Announcement) EntityID() string { return a.ID }

type CreateDTO struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required,min=10"`
	Audience string `json:"audience"`
}

func (d *CreateDTO) Ok(_ context.Context) (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return nil, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), nil), false
}
