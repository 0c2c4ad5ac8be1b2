package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps a form field name to its error message. An empty map
// means the draft is valid.
type ValidationErrors map[string]string

func (v ValidationErrors) Empty() bool { return len(v) == 0 }

// FieldLabeler resolves a struct field name to the label shown in messages.
// Returning "" falls back to the raw field name.
type FieldLabeler func(field string) string

// ProcessValidatorErrors converts go-playground validation errors into
// field-scoped messages. Messages are deliberately plain: they are rendered
// directly next to form inputs.
func ProcessValidatorErrors(errs validator.ValidationErrors, labeler FieldLabeler) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, err := range errs {
		label := ""
		if labeler != nil {
			label = labeler(err.Field())
		}
		if label == "" {
			label = err.Field()
		}
		out[err.Field()] = messageFor(label, err)
	}
	return out
}

func messageFor(label string, err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		if err.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, err.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, err.Param())
	case "notpast":
		return fmt.Sprintf("%s cannot be in the past", label)
	case "afterfield":
		return fmt.Sprintf("%s must be after %s", label, err.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
