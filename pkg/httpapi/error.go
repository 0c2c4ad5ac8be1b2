package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/peopledesk/peopledesk/pkg/serrors"
)

// ErrorEnvelope standardizes JSON error responses for API namespaces.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}

// DataEnvelope is the uniform success wrapper for JSON endpoints.
type DataEnvelope struct {
	Data any               `json:"data"`
	Meta map[string]string `json:"meta,omitempty"`
}

func WriteData(w http.ResponseWriter, status int, data any) error {
	return WriteJSON(w, status, &DataEnvelope{Data: data})
}

// StatusFor maps a coded error onto an HTTP status.
func StatusFor(err error) int {
	switch serrors.Code(err) {
	case serrors.CodeEmptyResult:
		return http.StatusNotFound
	case serrors.CodeValidation:
		return http.StatusUnprocessableEntity
	case serrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case serrors.CodeForbidden:
		return http.StatusForbidden
	case serrors.CodeTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteServiceError renders a coded error with its mapped status.
func WriteServiceError(w http.ResponseWriter, err error) error {
	code := serrors.Code(err)
	if code == "" {
		code = serrors.CodeRequestFailed
	}
	return WriteError(w, StatusFor(err), code, serrors.Message(err), nil)
}
