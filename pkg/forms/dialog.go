// Package forms owns the transient state of create/edit dialogs: the form
// draft, its field-scoped validation errors, and the open/validate/submit
// state machine. Drafts never outlive their dialog and never touch a store
// except through the dispatch function handed to Submit.
package forms

import (
	"context"
	"sync"

	"github.com/peopledesk/peopledesk/pkg/serrors"
)

// DTO is a form draft that can validate itself. Implementations follow the
// validator-tag convention: Ok returns field-name → message and a flag.
type DTO interface {
	Ok(ctx context.Context) (serrors.ValidationErrors, bool)
}

type Mode int

const (
	ModeClosed Mode = iota
	ModeCreate
	ModeEdit
)

// ErrValidationFailed is returned by Submit when local validation blocks
// the dispatch. The dialog stays open with FieldErrors populated.
var ErrValidationFailed = serrors.NewError(serrors.CodeValidation, "form has validation errors")

// Dialog drives one entity dialog:
//
//	Closed → OpenForCreate/OpenForEdit → Submit:
//	  invalid → open, field errors set, nothing dispatched
//	  valid   → dispatched; success closes and runs the follow-up,
//	            failure keeps the dialog open with the server error
type Dialog[D DTO] struct {
	mu          sync.Mutex
	mode        Mode
	draft       D
	fieldErrors serrors.ValidationErrors
	serverErr   error
	submitting  bool

	// onSuccess typically re-dispatches the fetch-all operation so the
	// collection reflects server state after a mutation.
	onSuccess func(ctx context.Context)
}

func NewDialog[D DTO](onSuccess func(ctx context.Context)) *Dialog[D] {
	return &Dialog[D]{onSuccess: onSuccess}
}

func (d *Dialog[D]) OpenForCreate(draft D) {
	d.open(ModeCreate, draft)
}

// OpenForEdit opens the dialog with a draft pre-filled from the selected
// entity.
func (d *Dialog[D]) OpenForEdit(draft D) {
	d.open(ModeEdit, draft)
}

func (d *Dialog[D]) open(mode Mode, draft D) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = mode
	d.draft = draft
	d.fieldErrors = nil
	d.serverErr = nil
	d.submitting = false
}

// Close discards the draft and all errors.
func (d *Dialog[D]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	var zero D
	d.mode = ModeClosed
	d.draft = zero
	d.fieldErrors = nil
	d.serverErr = nil
	d.submitting = false
}

// SetDraft replaces the draft, as keystrokes mutate field values.
func (d *Dialog[D]) SetDraft(draft D) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft = draft
}

func (d *Dialog[D]) Draft() D {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft
}

func (d *Dialog[D]) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

func (d *Dialog[D]) Submitting() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.submitting
}

func (d *Dialog[D]) FieldErrors() serrors.ValidationErrors {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fieldErrors
}

func (d *Dialog[D]) ServerErr() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.serverErr
}

// Submit validates the draft and, only when it is clean, runs the dispatch.
// A dispatch is never attempted while local validation errors exist.
func (d *Dialog[D]) Submit(ctx context.Context, dispatch func(ctx context.Context, draft D) error) error {
	d.mu.Lock()
	if d.mode == ModeClosed {
		d.mu.Unlock()
		return serrors.NewError(serrors.CodeValidation, "dialog is not open")
	}
	draft := d.draft
	d.mu.Unlock()

	fieldErrors, ok := draft.Ok(ctx)
	d.mu.Lock()
	d.fieldErrors = fieldErrors
	if !ok {
		d.mu.Unlock()
		return ErrValidationFailed
	}
	d.submitting = true
	d.mu.Unlock()

	err := dispatch(ctx, draft)

	d.mu.Lock()
	d.submitting = false
	if err != nil {
		d.serverErr = err
		d.mu.Unlock()
		return err
	}
	d.mu.Unlock()

	d.Close()
	if d.onSuccess != nil {
		d.onSuccess(ctx)
	}
	return nil
}
