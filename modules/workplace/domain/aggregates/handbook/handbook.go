// Package handbook models uploaded policy documents.
package handbook

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/peopledesk/peopledesk/pkg/constants"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileName    string    `json:"fileName"`
	FileURL     string    `json:"fileUrl,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

func (d Document) EntityID() string { return d.ID }

// UploadDTO requires an attached file: a handbook entry without its
// document is meaningless.
type UploadDTO struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required,min=10"`
	FileName    string `json:"fileName" validate:"required"`
}

func (d *UploadDTO) Ok(_ context.Context) (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return nil, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), labelField), false
}

func labelField(field string) string {
	if field == "FileName" {
		return "File"
	}
	return field
}
