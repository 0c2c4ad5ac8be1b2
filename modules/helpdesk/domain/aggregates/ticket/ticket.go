// Package ticket models help desk tickets.
package ticket

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/peopledesk/peopledesk/pkg/constants"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Ticket struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	RaisedByID  string    `json:"raisedById"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (t Ticket) EntityID() string { return t.ID }

// Open reports whether the ticket still needs attention.
func (t Ticket) Open() bool {
	return t.Status == StatusOpen || t.Status == StatusInProgress
}

type CreateDTO struct {
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required,min=10"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high urgent"`
}

func (d *CreateDTO) Ok(_ context.Context) (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return nil, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), nil), false
}

// ValidTransition rejects status changes the board cannot express, e.g.
// reopening a closed ticket straight to in_progress.
func ValidTransition(from, to string) bool {
	switch from {
	case StatusOpen:
		return to == StatusInProgress || to == StatusResolved || to == StatusClosed
	case StatusInProgress:
		return to == StatusResolved || to == StatusClosed
	case StatusResolved:
		return to == StatusClosed || to == StatusOpen
	default:
		return false
	}
}
