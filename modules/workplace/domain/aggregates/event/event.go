// Package event models company events and their lifecycle display state.
package event

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/peopledesk/peopledesk/pkg/constants"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
}

func (e Event) EntityID() string { return e.ID }

// DisplayStatus is the badge shown on the events board. An explicit
// cancelled or completed status wins; otherwise an event whose end has
// passed without being marked completed shows as Expired.
type DisplayStatus string

const (
	DisplayPending   DisplayStatus = "Pending"
	DisplayCompleted DisplayStatus = "Completed"
	DisplayCancelled DisplayStatus = "Cancelled"
	DisplayExpired   DisplayStatus = "Expired"
)

func (e Event) Display(now time.Time) DisplayStatus {
	switch e.Status {
	case StatusCancelled:
		return DisplayCancelled
	case StatusCompleted:
		return DisplayCompleted
	}
	if !e.EndTime.IsZero() && e.EndTime.Before(now) {
		return DisplayExpired
	}
	return DisplayPending
}

type CreateDTO struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required,min=10"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"startTime" validate:"required,notpast"`
	EndTime     time.Time `json:"endTime" validate:"required,afterfield=StartTime"`
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
	case "StartTime":
		return "Start time"
	case "EndTime":
		return "End time"
	default:
		return field
	}
}
